package api

import (
	"context"

	"github.com/adith-pr/portfolio-backend/models"
)

type keyType string

const adminKey keyType = "admin"

// ctxWithAdmin attaches the authenticated administrator to the context.
func ctxWithAdmin(ctx context.Context, admin *models.AdminUser) context.Context {
	return context.WithValue(ctx, adminKey, admin)
}

// ctxGetAdmin retrieves the authenticated administrator, or nil outside
// the session middleware.
func ctxGetAdmin(ctx context.Context) *models.AdminUser {
	if admin, ok := ctx.Value(adminKey).(*models.AdminUser); ok {
		return admin
	}
	return nil
}
