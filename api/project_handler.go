package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/adith-pr/portfolio-backend/errs"
	"github.com/adith-pr/portfolio-backend/models"
	"github.com/adith-pr/portfolio-backend/services"
	"github.com/adith-pr/portfolio-backend/views"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  ProjectStore
	slugs     services.SlugAllocator
}

func newProjectHandler(projects ProjectStore) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
		slugs:     services.NewSlugAllocator(projects),
	}
}

// ProjectResponse wraps a single full project record.
type ProjectResponse struct {
	Project *models.Project `json:"project"`
}

// ProjectListResponse wraps a list projection.
type ProjectListResponse struct {
	Projects []models.ProjectSummary `json:"projects"`
	Total    int                     `json:"total,omitempty"`
}

// listProjects returns every project regardless of status for the admin
// dashboard, optionally refined by q/status/sort query parameters.
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.FindAllAdmin()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		projects = views.FilterAdmin(projects, views.AdminQuery{
			Query:  r.URL.Query().Get("q"),
			Status: r.URL.Query().Get("status"),
			Sort:   r.URL.Query().Get("sort"),
		})

		h.responder.WriteJSON(w, ProjectListResponse{
			Projects: projects,
			Total:    len(projects),
		})
	}
}

// getProject returns the full record including all image payloads.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, apiErr := parseProjectID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		project, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, ProjectResponse{Project: project})
	}
}

// createProject validates the multipart submission, allocates a unique
// slug and inserts the record. The slug pre-check races with concurrent
// writers, so a duplicate-key insert triggers one re-allocation.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, apiErr := parseProjectForm(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		slug, err := h.slugs.Allocate(form.slugBase(), nil)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("allocate slug for", "project", err))
			return
		}

		project := &models.Project{
			Title:       form.Title,
			Slug:        slug,
			Description: form.Description,
			Type:        form.Type,
			Status:      form.Status,
			Tags:        datatypes.NewJSONSlice(form.Tags),
			Stack:       datatypes.NewJSONSlice(form.Stack),
			ProjectURL:  form.ProjectURL,
			GithubURL:   form.GithubURL,
			Featured:    form.Featured,
		}
		if form.Cover != nil {
			project.CoverImageB64 = form.Cover
		}
		if form.Mockups != nil {
			project.MockupsB64 = datatypes.NewJSONSlice(form.Mockups)
		}

		if err := h.projects.Add(project); err != nil {
			if !errs.IsDuplicateKey(err) {
				h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
				return
			}

			// A concurrent writer claimed the slug between probe and
			// insert; allocate again and retry once.
			slug, err = h.slugs.Allocate(form.slugBase(), nil)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("allocate slug for", "project", err))
				return
			}
			project.Slug = slug
			if err := h.projects.Add(project); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
				return
			}
		}

		created, err := h.projects.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "project", err))
			return
		}

		// Headers lock on the status write, so the content type goes first.
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, ProjectResponse{Project: created})
	}
}

// updateProject replaces every scalar field from the form. Image columns
// are only written when new files were attached: a fresh cover replaces
// the stored one, fresh mockups replace the whole stored set, and absent
// uploads leave the stored values untouched.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, apiErr := parseProjectID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existing, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		form, apiErr := parseProjectForm(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		// The record's own slug is not a collision, so re-saving an
		// unchanged title keeps the slug stable.
		slug, err := h.slugs.Allocate(form.slugBase(), &projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("allocate slug for", "project", err))
			return
		}

		fields := map[string]any{
			"title":       form.Title,
			"slug":        slug,
			"description": form.Description,
			"type":        form.Type,
			"status":      form.Status,
			"tags":        datatypes.NewJSONSlice(form.Tags),
			"stack":       datatypes.NewJSONSlice(form.Stack),
			"project_url": form.ProjectURL,
			"github_url":  form.GithubURL,
			"featured":    form.Featured,
		}
		if form.Cover != nil {
			fields["cover_image_b64"] = *form.Cover
		}
		if form.Mockups != nil {
			fields["mockups_b64"] = datatypes.NewJSONSlice(form.Mockups)
		}

		if err := h.projects.UpdateFields(projectID, fields); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		updated, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "project", err))
			return
		}

		h.responder.WriteJSON(w, ProjectResponse{Project: updated})
	}
}

// deleteProject hard-deletes a project. Deleting an id that does not exist
// is a 404, consistent with update.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, apiErr := parseProjectID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existing, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if err := h.projects.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"success": true})
	}
}

func parseProjectID(r *http.Request) (uuid.UUID, *errs.ApiErr) {
	idStr := chi.URLParam(r, "projectID")
	if idStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing projectID")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid projectID")
	}
	return id, nil
}
