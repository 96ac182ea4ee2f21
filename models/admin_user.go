package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is an administrator account. Accounts are provisioned out of
// band with the adminctl tool; there is no signup path through the API.
type AdminUser struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Email        string    `json:"email" gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;type:text;not null"`
	Name         string    `json:"name" gorm:"type:text;not null"`
	CreatedAt    time.Time `json:"created_at"`
}

func (AdminUser) TableName() string { return "admin_users" }
