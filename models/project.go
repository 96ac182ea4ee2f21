package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProjectType categorizes a project for filtering and icon rendering.
type ProjectType string

const (
	TypeWeb     ProjectType = "web"
	TypeMobile  ProjectType = "mobile"
	TypeDesktop ProjectType = "desktop"
	TypeBackend ProjectType = "backend"
	TypeUIUX    ProjectType = "uiux"
	TypeOther   ProjectType = "other"
)

// ProjectStatus controls public visibility.
type ProjectStatus string

const (
	StatusDraft     ProjectStatus = "draft"
	StatusPublished ProjectStatus = "published"
)

// ParseProjectType coerces raw form input to a known type, defaulting to
// web for anything unrecognized. Invalid values are never persisted.
func ParseProjectType(raw string) ProjectType {
	switch t := ProjectType(strings.TrimSpace(raw)); t {
	case TypeWeb, TypeMobile, TypeDesktop, TypeBackend, TypeUIUX, TypeOther:
		return t
	default:
		return TypeWeb
	}
}

// ParseProjectStatus coerces raw form input to a known status, defaulting
// to published for anything unrecognized.
func ParseProjectStatus(raw string) ProjectStatus {
	switch s := ProjectStatus(strings.TrimSpace(raw)); s {
	case StatusDraft, StatusPublished:
		return s
	default:
		return StatusPublished
	}
}

// Project is the full project record. Images are stored in the database as
// base64 text rather than on object storage.
type Project struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string        `json:"title" gorm:"type:text;not null"`
	Slug        string        `json:"slug" gorm:"type:text;not null;uniqueIndex"`
	Description *string       `json:"description" gorm:"type:text"`
	Content     *string       `json:"content" gorm:"type:text"`
	Type        ProjectType   `json:"type" gorm:"type:text;not null;default:web"`
	Status      ProjectStatus `json:"status" gorm:"type:text;not null;default:published"`

	Tags  datatypes.JSONSlice[string] `json:"tags"`
	Stack datatypes.JSONSlice[string] `json:"stack"`

	CoverImageB64 *string                     `json:"cover_image_b64" gorm:"column:cover_image_b64;type:text"`
	MockupsB64    datatypes.JSONSlice[string] `json:"mockups_b64" gorm:"column:mockups_b64"`

	ProjectURL *string `json:"project_url" gorm:"type:text"`
	GithubURL  *string `json:"github_url" gorm:"type:text"`
	Featured   bool    `json:"featured" gorm:"not null;default:false"`

	// Legacy columns from the first schema revision. Read-compatible only,
	// never written.
	CoverImage *string                     `json:"cover_image,omitempty" gorm:"column:cover_image;type:text;->"`
	Images     datatypes.JSONSlice[string] `json:"images,omitempty" gorm:"column:images;->"`
	TechStack  datatypes.JSONSlice[string] `json:"tech_stack,omitempty" gorm:"column:tech_stack;->"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Project) TableName() string { return "projects" }

// ProjectSummary is the list projection of a project: scalar metadata only,
// no content and no mockups. CoverImageB64 is populated for admin lists and
// left empty (and elided from JSON) for public lists.
type ProjectSummary struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Description *string       `json:"description"`
	Type        ProjectType   `json:"type"`
	Status      ProjectStatus `json:"status"`

	Tags  datatypes.JSONSlice[string] `json:"tags"`
	Stack datatypes.JSONSlice[string] `json:"stack"`

	CoverImageB64 *string `json:"cover_image_b64,omitempty" gorm:"column:cover_image_b64"`

	ProjectURL *string `json:"project_url"`
	GithubURL  *string `json:"github_url"`
	Featured   bool    `json:"featured"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ProjectSummary) TableName() string { return "projects" }

// ParseStringList decodes a JSON-encoded array submitted as a form value
// into an ordered list of labels. Entries are trimmed and empties dropped;
// order and duplicates are preserved. Anything that is not a JSON array
// yields an empty list.
func ParseStringList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	var parsed []any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return []string{}
	}

	out := make([]string, 0, len(parsed))
	for _, v := range parsed {
		var s string
		if str, ok := v.(string); ok {
			s = str
		} else {
			s = fmt.Sprintf("%v", v)
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
