package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/adith-pr/portfolio-backend/models"
)

type AdminUserRepo struct {
	db *gorm.DB
}

func NewAdminUserRepo(db *gorm.DB) *AdminUserRepo {
	return &AdminUserRepo{db}
}

// FindByEmail looks an administrator up by exact email match, returning
// nil when no account exists.
func (r *AdminUserRepo) FindByEmail(email string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := r.db.Where("email = ?", email).Take(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// FindByID resolves a session cookie value back to an administrator,
// returning nil when the id is unknown.
func (r *AdminUserRepo) FindByID(id uuid.UUID) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := r.db.Where("id = ?", id).Take(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// Add inserts a new administrator account.
func (r *AdminUserRepo) Add(admin *models.AdminUser) error {
	return r.db.Create(admin).Error
}

// UpdatePassword replaces the stored password hash for an email.
func (r *AdminUserRepo) UpdatePassword(email, passwordHash string) error {
	result := r.db.Model(&models.AdminUser{}).
		Where("email = ?", email).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
