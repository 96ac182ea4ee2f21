package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/adith-pr/portfolio-backend/models"
)

// Column lists for list projections. Bulk image payloads are never fetched
// for list views: the public list carries no images at all, the admin list
// carries the cover but never the mockups.
var (
	adminSummaryColumns = []string{
		"id", "title", "slug", "description", "type", "status",
		"tags", "stack", "cover_image_b64",
		"project_url", "github_url", "featured", "created_at", "updated_at",
	}
	publicSummaryColumns = []string{
		"id", "title", "slug", "description", "type", "status",
		"tags", "stack",
		"project_url", "github_url", "featured", "created_at", "updated_at",
	}
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAllAdmin returns every project regardless of status, newest first.
func (r *ProjectRepo) FindAllAdmin() ([]models.ProjectSummary, error) {
	var projects []models.ProjectSummary
	err := r.db.Select(adminSummaryColumns).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// FindPublished returns published projects only, newest first, with image
// payloads elided.
func (r *ProjectRepo) FindPublished() ([]models.ProjectSummary, error) {
	var projects []models.ProjectSummary
	err := r.db.Select(publicSummaryColumns).
		Where("status = ?", models.StatusPublished).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// FindByID returns the full record, or nil if no project matches.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Where("id = ?", id).Take(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindPublishedBySlug returns the full record for a published project, or
// nil if the slug is unknown or the project is a draft.
func (r *ProjectRepo) FindPublishedBySlug(slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.Where("slug = ? AND status = ?", slug, models.StatusPublished).
		Take(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindIDBySlug reports which project, if any, currently holds a slug. Used
// by the slug allocator's uniqueness probe.
func (r *ProjectRepo) FindIDBySlug(slug string) (*uuid.UUID, error) {
	var row struct {
		ID uuid.UUID
	}
	err := r.db.Model(&models.Project{}).
		Select("id").
		Where("slug = ?", slug).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row.ID, nil
}

// Add inserts a new project. The store assigns id and timestamps.
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// UpdateFields applies a partial update by column name. GORM refreshes
// updated_at on every call; image columns are only present in the map when
// new files were uploaded.
func (r *ProjectRepo) UpdateFields(id uuid.UUID, fields map[string]any) error {
	return r.db.Model(&models.Project{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// Delete hard-deletes a project by id.
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&models.Project{}).Error
}
