// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// CategoriesHandler handles category listing requests.
type CategoriesHandler struct {
	deps Dependencies
}

// NewCategoriesHandler creates a new categories handler.
func NewCategoriesHandler(deps Dependencies) *CategoriesHandler {
	return &CategoriesHandler{deps: deps}
}

// categoriesResponse lists the configured category identifiers.
type categoriesResponse struct {
	Categories []string `json:"categories"`
}

// HandleGetCategories handles GET /categories requests.
func (h *CategoriesHandler) HandleGetCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, categoriesResponse{Categories: h.deps.Categories(r.Context())})
}
