package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/adith-pr/portfolio-backend/errs"
	"github.com/adith-pr/portfolio-backend/models"
	"github.com/adith-pr/portfolio-backend/views"
)

type publicHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  ProjectStore
}

func newPublicHandler(projects ProjectStore) publicHandler {
	logger := log.With().Str("handlerName", "publicHandler").Logger()

	return publicHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
	}
}

// PublicProject is the detail view served to visitors. Images are rendered
// as data URIs so the frontend can drop them straight into src attributes.
type PublicProject struct {
	ID          uuid.UUID            `json:"id"`
	Title       string               `json:"title"`
	Slug        string               `json:"slug"`
	Description *string              `json:"description"`
	Content     *string              `json:"content"`
	Type        models.ProjectType   `json:"type"`
	Tags        []string             `json:"tags"`
	Stack       []string             `json:"stack"`
	CoverImage  string               `json:"cover_image,omitempty"`
	Mockups     []string             `json:"mockups"`
	ProjectURL  *string              `json:"project_url"`
	GithubURL   *string              `json:"github_url"`
	Featured    bool                 `json:"featured"`
	Status      models.ProjectStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}

// listPublished serves the public project grid: published projects only,
// newest first, no image payloads, optionally refined by q/type/stack.
func (h publicHandler) listPublished() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.FindPublished()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		filtered := views.FilterPublic(projects, views.PublicQuery{
			Query: r.URL.Query().Get("q"),
			Type:  r.URL.Query().Get("type"),
			Stack: r.URL.Query().Get("stack"),
		})

		// Facets come from the whole published snapshot so the filter
		// dropdowns stay stable while a filter is active.
		h.responder.WriteJSON(w, map[string]any{
			"projects": filtered,
			"total":    len(filtered),
			"types":    views.Types(projects),
			"stacks":   views.Stacks(projects),
		})
	}
}

// getBySlug serves the public detail page. Drafts and unknown slugs are
// both plain 404s.
func (h publicHandler) getBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		project, err := h.projects.FindPublishedBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"project": toPublicProject(project),
		})
	}
}

func toPublicProject(p *models.Project) PublicProject {
	view := PublicProject{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Description: p.Description,
		Content:     p.Content,
		Type:        p.Type,
		Tags:        p.Tags,
		Stack:       p.Stack,
		Mockups:     make([]string, 0, len(p.MockupsB64)),
		ProjectURL:  p.ProjectURL,
		GithubURL:   p.GithubURL,
		Featured:    p.Featured,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
	}

	if p.CoverImageB64 != nil {
		view.CoverImage = dataURI(*p.CoverImageB64)
	}
	for _, b64 := range p.MockupsB64 {
		view.Mockups = append(view.Mockups, dataURI(b64))
	}
	return view
}
