package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the public read surface and the session-guarded admin
// surface.
func setupRoutes(r chi.Router, handlers *routeHandlers, session sessionMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/api/projects", handlers.publicHandler.listPublished())
		r.Get("/api/projects/{slug}", handlers.publicHandler.getBySlug())

		r.Post("/api/admin/login", handlers.authHandler.login())
	})

	// Authenticated admin routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(session.authenticate)

		r.Post("/api/admin/logout", handlers.authHandler.logout())
		r.Get("/api/admin/check", handlers.authHandler.check())

		r.Get("/api/admin/projects", handlers.projectHandler.listProjects())
		r.Post("/api/admin/projects", handlers.projectHandler.createProject())
		r.Get("/api/admin/projects/{projectID}", handlers.projectHandler.getProject())
		r.Put("/api/admin/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/api/admin/projects/{projectID}", handlers.projectHandler.deleteProject())
	})
}
