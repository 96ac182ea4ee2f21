package api

import (
	"encoding/base64"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/adith-pr/portfolio-backend/errs"
	"github.com/adith-pr/portfolio-backend/models"
)

// Uploads are buffered fully in memory before being base64-encoded into
// the database, so the multipart window is the effective size ceiling.
const maxUploadMemory = 32 << 20

// projectForm holds the validated, coerced fields of an admin create or
// update submission. Cover and Mockups are nil when no file was attached,
// which on update means "leave the stored images untouched".
type projectForm struct {
	Title         string
	RequestedSlug string
	Description   *string
	ProjectURL    *string
	GithubURL     *string
	Type          models.ProjectType
	Status        models.ProjectStatus
	Featured      bool
	Tags          []string
	Stack         []string
	Cover         *string
	Mockups       []string
}

// parseProjectForm validates and coerces a multipart submission. The title
// gate runs before anything else so an invalid submission never reaches
// the store.
func parseProjectForm(r *http.Request) (*projectForm, *errs.ApiErr) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return nil, errs.NewBadRequestError("malformed multipart form")
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		return nil, errs.NewValidationError("title", "title is required")
	}

	form := &projectForm{
		Title:         title,
		RequestedSlug: strings.TrimSpace(r.FormValue("slug")),
		Description:   optionalText(r.FormValue("description")),
		ProjectURL:    optionalText(r.FormValue("project_url")),
		GithubURL:     optionalText(r.FormValue("github_url")),
		Type:          models.ParseProjectType(r.FormValue("type")),
		Status:        models.ParseProjectStatus(r.FormValue("status")),
		Featured:      r.FormValue("featured") == "true",
		Tags:          models.ParseStringList(r.FormValue("tags")),
		Stack:         models.ParseStringList(r.FormValue("stack")),
	}

	cover, err := encodeFirstFile(r, "cover")
	if err != nil {
		return nil, errs.NewBadRequestError("failed to read cover upload")
	}
	form.Cover = cover

	mockups, err := encodeAllFiles(r, "mockups")
	if err != nil {
		return nil, errs.NewBadRequestError("failed to read mockup uploads")
	}
	form.Mockups = mockups

	return form, nil
}

// slugBase is the text the allocator derives the slug from: the requested
// slug when supplied, the title otherwise.
func (f *projectForm) slugBase() string {
	if f.RequestedSlug != "" {
		return f.RequestedSlug
	}
	return f.Title
}

func optionalText(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func encodeFirstFile(r *http.Request, field string) (*string, error) {
	if r.MultipartForm == nil || len(r.MultipartForm.File[field]) == 0 {
		return nil, nil
	}
	encoded, err := encodeFile(r.MultipartForm.File[field][0])
	if err != nil {
		return nil, err
	}
	return &encoded, nil
}

func encodeAllFiles(r *http.Request, field string) ([]string, error) {
	if r.MultipartForm == nil || len(r.MultipartForm.File[field]) == 0 {
		return nil, nil
	}
	encoded := make([]string, 0, len(r.MultipartForm.File[field]))
	for _, header := range r.MultipartForm.File[field] {
		b64, err := encodeFile(header)
		if err != nil {
			return nil, err
		}
		encoded = append(encoded, b64)
	}
	return encoded, nil
}

func encodeFile(header *multipart.FileHeader) (string, error) {
	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// dataURI renders stored base64 image text the way the browser consumes
// it. Uploads are never sniffed, so the MIME type stays generic.
func dataURI(b64 string) string {
	if b64 == "" {
		return ""
	}
	return "data:image/*;base64," + b64
}
