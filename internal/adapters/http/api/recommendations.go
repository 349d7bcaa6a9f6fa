// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strings"

	service "github.com/okian/roam/internal/app"
	"github.com/okian/roam/internal/domain/scoring"
)

// RecommendationsHandler handles recommendation requests.
type RecommendationsHandler struct {
	deps Dependencies
}

// NewRecommendationsHandler creates a new recommendations handler.
func NewRecommendationsHandler(deps Dependencies) *RecommendationsHandler {
	return &RecommendationsHandler{deps: deps}
}

// HandleRecommendations handles POST /recommendations/{category} and
// POST /recommendations/for-you requests. The body carries the city
// scope, the scoring context, and optional pagination.
func (h *RecommendationsHandler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	category := strings.TrimPrefix(r.URL.Path, "/recommendations/")
	if category == "" || strings.Contains(category, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	var body recommendRequest
	if err := decodeJSONBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := body.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	req := service.Request{
		CityID:     body.CityID,
		Category:   category,
		Context:    body.Context,
		Pagination: body.Pagination,
	}

	if category == "for-you" {
		items, err := h.deps.ForYou(r.Context(), req)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, topNResponse{Items: items})
		return
	}

	result, err := h.deps.Recommend(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if result.Mode == scoring.ModePaged {
		writeJSON(w, http.StatusOK, result.Page)
		return
	}
	writeJSON(w, http.StatusOK, topNResponse{Items: result.Items})
}
