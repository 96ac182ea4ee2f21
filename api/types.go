package api

import (
	"github.com/google/uuid"

	"github.com/adith-pr/portfolio-backend/models"
)

// ProjectStore is what the project handlers need from the repository
// layer. *database.ProjectRepo satisfies it; tests supply in-memory fakes.
type ProjectStore interface {
	FindAllAdmin() ([]models.ProjectSummary, error)
	FindPublished() ([]models.ProjectSummary, error)
	FindByID(id uuid.UUID) (*models.Project, error)
	FindPublishedBySlug(slug string) (*models.Project, error)
	FindIDBySlug(slug string) (*uuid.UUID, error)
	Add(project *models.Project) error
	UpdateFields(id uuid.UUID, fields map[string]any) error
	Delete(id uuid.UUID) error
}

// AdminStore resolves administrator credentials and sessions.
type AdminStore interface {
	FindByEmail(email string) (*models.AdminUser, error)
	FindByID(id uuid.UUID) (*models.AdminUser, error)
}

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler    authHandler
	projectHandler projectHandler
	publicHandler  publicHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
}
