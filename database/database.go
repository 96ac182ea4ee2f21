package database

import (
	"gorm.io/gorm"
)

// Database bundles one repository per entity over a shared GORM instance.
// It is constructed once in main and injected into the API server, so no
// package-level connection state exists.
type Database struct {
	projectRepo   *ProjectRepo
	adminUserRepo *AdminUserRepo
}

func New(db *gorm.DB) Database {
	return Database{
		projectRepo:   NewProjectRepo(db),
		adminUserRepo: NewAdminUserRepo(db),
	}
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) AdminUserRepo() *AdminUserRepo {
	return d.adminUserRepo
}
