package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/prefiction/backend/internal/service"
	"github.com/prefiction/backend/pkg/auth"
)

// AdminAuthHandler handles the admin login and logout endpoints.
type AdminAuthHandler struct {
	sessions   *service.SessionService
	password   string
	production bool
}

// NewAdminAuthHandler creates an AdminAuthHandler. password may be
// plaintext or a bcrypt hash; production gates the Secure cookie flag.
func NewAdminAuthHandler(sessions *service.SessionService, password string, production bool) *AdminAuthHandler {
	return &AdminAuthHandler{sessions: sessions, password: password, production: production}
}

type verifyRequest struct {
	Password string `json:"password"`
}

// Verify handles POST /admin/verify. On a matching password it creates a
// session and sets the admin_sid cookie; otherwise it answers 401 without
// setting anything.
func (h *AdminAuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if !auth.CheckPassword(req.Password, h.password) {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	session, err := h.sessions.Create(r.Context())
	if err != nil {
		slog.Error("admin session create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	auth.SetSessionCookie(w, session.ID, h.production)
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Logout handles POST /admin/logout. Idempotent: the session is removed if
// the cookie resolves to one, and the cookie is cleared either way.
func (h *AdminAuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookieName()); err == nil && cookie.Value != "" {
		_ = h.sessions.Destroy(r.Context(), cookie.Value)
	}
	auth.ClearSessionCookie(w)
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
