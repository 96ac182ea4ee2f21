package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/adith-pr/portfolio-backend/errs"
)

type authHandler struct {
	responder     Responder
	logger        zerolog.Logger
	admins        AdminStore
	secureCookies bool
}

func newAuthHandler(admins AdminStore, secureCookies bool) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		admins:        admins,
		secureCookies: secureCookies,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login verifies the credentials and issues the session cookie. Unknown
// email and wrong password are indistinguishable to the caller.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		email := strings.TrimSpace(req.Email)
		if email == "" || req.Password == "" {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		admin, err := h.admins.FindByEmail(email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "admin user", err))
			return
		}
		if admin == nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		http.SetCookie(w, newSessionCookie(admin.ID.String(), h.secureCookies))
		h.responder.WriteJSON(w, map[string]any{"success": true})
	}
}

// logout clears the session cookie.
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, expiredSessionCookie(h.secureCookies))
		h.responder.WriteJSON(w, map[string]any{"success": true})
	}
}

// check reports whether the session middleware admitted the request. It
// only ever runs behind that middleware, so reaching it means yes.
func (h authHandler) check() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		admin := ctxGetAdmin(r.Context())
		h.responder.WriteJSON(w, map[string]any{
			"authenticated": true,
			"name":          admin.Name,
		})
	}
}
