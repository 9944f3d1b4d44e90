package handler

import (
	"net/http"

	"github.com/prefiction/backend/internal/catalog"
)

// CatalogHandler serves the static marketing catalog to clients that want
// the data without shipping it inline. Filtering mirrors the client-side
// listing behavior.
type CatalogHandler struct{}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Services handles GET /api/catalog/services?q=&category=.
func (h *CatalogHandler) Services(w http.ResponseWriter, r *http.Request) {
	listing := catalog.FilterServices(r.URL.Query().Get("q"), r.URL.Query().Get("category"))
	respondJSON(w, http.StatusOK, listing)
}

// Audiences handles GET /api/catalog/audiences?q=.
func (h *CatalogHandler) Audiences(w http.ResponseWriter, r *http.Request) {
	listing := catalog.FilterAudiences(r.URL.Query().Get("q"))
	respondJSON(w, http.StatusOK, listing)
}

// CaseStudies handles GET /api/catalog/case-studies.
func (h *CatalogHandler) CaseStudies(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"rows": catalog.CaseStudies()})
}
