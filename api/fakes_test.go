package api

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/adith-pr/portfolio-backend/models"
)

// fakeProjectStore keeps projects in memory and enforces the slug unique
// index the way postgres would, so the allocator retry path is exercised
// for real.
type fakeProjectStore struct {
	projects map[uuid.UUID]*models.Project
	clock    int
	addCalls int
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{projects: map[uuid.UUID]*models.Project{}}
}

func (s *fakeProjectStore) nextTime() time.Time {
	s.clock++
	return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(s.clock) * time.Minute)
}

func (s *fakeProjectStore) seed(p *models.Project) *models.Project {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.nextTime()
		p.UpdatedAt = p.CreatedAt
	}
	s.projects[p.ID] = p
	return p
}

func (s *fakeProjectStore) sortedAll() []*models.Project {
	var all []*models.Project
	for _, p := range s.projects {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all
}

func summarize(p *models.Project, withCover bool) models.ProjectSummary {
	summary := models.ProjectSummary{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Description: p.Description,
		Type:        p.Type,
		Status:      p.Status,
		Tags:        p.Tags,
		Stack:       p.Stack,
		ProjectURL:  p.ProjectURL,
		GithubURL:   p.GithubURL,
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if withCover {
		summary.CoverImageB64 = p.CoverImageB64
	}
	return summary
}

func (s *fakeProjectStore) FindAllAdmin() ([]models.ProjectSummary, error) {
	var out []models.ProjectSummary
	for _, p := range s.sortedAll() {
		out = append(out, summarize(p, true))
	}
	return out, nil
}

func (s *fakeProjectStore) FindPublished() ([]models.ProjectSummary, error) {
	var out []models.ProjectSummary
	for _, p := range s.sortedAll() {
		if p.Status == models.StatusPublished {
			out = append(out, summarize(p, false))
		}
	}
	return out, nil
}

func (s *fakeProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	return s.projects[id], nil
}

func (s *fakeProjectStore) FindPublishedBySlug(slug string) (*models.Project, error) {
	for _, p := range s.projects {
		if p.Slug == slug && p.Status == models.StatusPublished {
			return p, nil
		}
	}
	return nil, nil
}

func (s *fakeProjectStore) FindIDBySlug(slug string) (*uuid.UUID, error) {
	for _, p := range s.projects {
		if p.Slug == slug {
			id := p.ID
			return &id, nil
		}
	}
	return nil, nil
}

func (s *fakeProjectStore) Add(project *models.Project) error {
	s.addCalls++
	if holder, _ := s.FindIDBySlug(project.Slug); holder != nil {
		return errors.New(`duplicate key value violates unique constraint "idx_projects_slug"`)
	}
	s.seed(project)
	return nil
}

func (s *fakeProjectStore) UpdateFields(id uuid.UUID, fields map[string]any) error {
	p, ok := s.projects[id]
	if !ok {
		return nil
	}
	for column, value := range fields {
		switch column {
		case "title":
			p.Title = value.(string)
		case "slug":
			p.Slug = value.(string)
		case "description":
			p.Description = value.(*string)
		case "type":
			p.Type = value.(models.ProjectType)
		case "status":
			p.Status = value.(models.ProjectStatus)
		case "tags":
			p.Tags = value.(datatypes.JSONSlice[string])
		case "stack":
			p.Stack = value.(datatypes.JSONSlice[string])
		case "project_url":
			p.ProjectURL = value.(*string)
		case "github_url":
			p.GithubURL = value.(*string)
		case "featured":
			p.Featured = value.(bool)
		case "cover_image_b64":
			cover := value.(string)
			p.CoverImageB64 = &cover
		case "mockups_b64":
			p.MockupsB64 = value.(datatypes.JSONSlice[string])
		default:
			return fmt.Errorf("fake store: unexpected column %q", column)
		}
	}
	p.UpdatedAt = s.nextTime()
	return nil
}

func (s *fakeProjectStore) Delete(id uuid.UUID) error {
	delete(s.projects, id)
	return nil
}

// staleSlugStore reports a contested slug as free on the first probe, the
// way a concurrent writer claiming it between the allocator's check and
// the insert would look. The underlying store still enforces the unique
// index, so the insert fails and the handler has to re-allocate.
type staleSlugStore struct {
	*fakeProjectStore
	contested string
	probed    bool
}

func (s *staleSlugStore) FindIDBySlug(slug string) (*uuid.UUID, error) {
	if !s.probed && slug == s.contested {
		s.probed = true
		return nil, nil
	}
	return s.fakeProjectStore.FindIDBySlug(slug)
}

type fakeAdminStore struct {
	admins map[uuid.UUID]*models.AdminUser
}

func newFakeAdminStore(admins ...*models.AdminUser) *fakeAdminStore {
	s := &fakeAdminStore{admins: map[uuid.UUID]*models.AdminUser{}}
	for _, a := range admins {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		s.admins[a.ID] = a
	}
	return s
}

func (s *fakeAdminStore) FindByEmail(email string) (*models.AdminUser, error) {
	for _, a := range s.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (s *fakeAdminStore) FindByID(id uuid.UUID) (*models.AdminUser, error) {
	return s.admins[id], nil
}

// newTestRouter wires the real routes and middleware over fake stores.
func newTestRouter(projects ProjectStore, admins *fakeAdminStore) *chi.Mux {
	r := chi.NewRouter()
	handlers := &routeHandlers{
		authHandler:    newAuthHandler(admins, false),
		projectHandler: newProjectHandler(projects),
		publicHandler:  newPublicHandler(projects),
	}
	setupRoutes(r, handlers, newSessionMiddleware(admins))
	return r
}

// multipartFile is an uploaded file in a test submission.
type multipartFile struct {
	field string
	name  string
	data  []byte
}

func multipartRequest(t *testing.T, method, target string, fields map[string]string, files []multipartFile) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("writing field %s: %v", key, err)
		}
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f.field, f.name)
		if err != nil {
			t.Fatalf("creating file part %s: %v", f.field, err)
		}
		if _, err := part.Write(f.data); err != nil {
			t.Fatalf("writing file part %s: %v", f.field, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func withSession(req *http.Request, adminID uuid.UUID) *http.Request {
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: adminID.String()})
	return req
}
