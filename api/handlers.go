package api

import (
	"github.com/adith-pr/portfolio-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, secureCookies bool) *routeHandlers {
	return &routeHandlers{
		authHandler:    newAuthHandler(database.AdminUserRepo(), secureCookies),
		projectHandler: newProjectHandler(database.ProjectRepo()),
		publicHandler:  newPublicHandler(database.ProjectRepo()),
	}
}
