package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/prefiction/backend/internal/model"
	"github.com/prefiction/backend/internal/repository"
	"github.com/prefiction/backend/internal/service"
)

// maxContactBody caps the contact request body at 50KB.
const maxContactBody = 50 << 10

// SubmissionHandler handles contact form submission and the admin
// listing/deletion endpoints.
type SubmissionHandler struct {
	submissions service.SubmissionService
}

// NewSubmissionHandler creates a SubmissionHandler with the given service.
func NewSubmissionHandler(submissions service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact.
// name and email are required; company and message are optional.
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		respondError(w, http.StatusBadRequest, "name and email are required")
		return
	}

	sub := &model.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Message: req.Message,
	}

	if err := h.submissions.Submit(r.Context(), sub); err != nil {
		slog.Error("submission insert failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"id":      sub.ID,
		"success": true,
	})
}

// adminListResponse is the JSON response for the admin listing endpoints.
type adminListResponse struct {
	Rows []*model.Submission `json:"rows"`
}

// AdminList handles GET /admin/submissions and its POST mirror. Both
// routes share this handler; the mirror exists because some hosts block
// GET requests to API-shaped paths. Auth is enforced by middleware.
func (h *SubmissionHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	rows, err := h.submissions.List(r.Context())
	if err != nil {
		slog.Error("submission listing failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	// Return [] not null for empty listings
	if rows == nil {
		rows = []*model.Submission{}
	}

	respondJSON(w, http.StatusOK, adminListResponse{Rows: rows})
}

// Delete handles DELETE /admin/submissions/{id}.
func (h *SubmissionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(w, http.StatusBadRequest, "submission id required")
		return
	}

	if err := h.submissions.Delete(r.Context(), id); err != nil {
		if err == repository.ErrNotFound {
			respondError(w, http.StatusNotFound, "submission not found")
			return
		}
		slog.Error("submission delete failed", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"message": "submission deleted",
	})
}
