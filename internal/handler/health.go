package handler

import (
	"context"
	"net/http"
)

// Pinger is the slice of the storage backend the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler answers GET /_health.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a HealthHandler over the given storage backend.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health reports 200 when storage is reachable and 503 otherwise, so a
// request issued while the backend is down fails fast instead of hanging.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, map[string]bool{"ok": false})
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
