package api

import (
	"net/http"
	"time"
)

const (
	sessionCookieName = "admin_session"
	sessionMaxAge     = 7 * 24 * time.Hour
)

// newSessionCookie builds the admin session cookie. The value is the
// administrator's id; HttpOnly and SameSite=Lax always, Secure only in
// production so local development over plain HTTP keeps working.
func newSessionCookie(value string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(sessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// expiredSessionCookie clears the session on logout.
func expiredSessionCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
