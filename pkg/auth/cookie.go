package auth

import (
	"net/http"
	"time"
)

const sessionCookieName = "admin_sid"

// SessionCookieName returns the admin session cookie name.
func SessionCookieName() string {
	return sessionCookieName
}

// SetSessionCookie attaches the admin session cookie to the response.
// HttpOnly keeps it away from page scripts; the Secure attribute is set
// only in production so local HTTP development still works.
func SetSessionCookie(w http.ResponseWriter, sessionID string, production bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(SessionTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   production,
	})
}

// ClearSessionCookie instructs the browser to drop the admin session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
	})
}
