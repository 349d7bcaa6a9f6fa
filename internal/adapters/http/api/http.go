// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/roam/internal/adapters/catalog"
	service "github.com/okian/roam/internal/app"
	"github.com/okian/roam/internal/domain/model"
	"github.com/okian/roam/internal/domain/scoring"
)

// Dependencies required by HTTP handlers. Using an interface bundle
// keeps the handler layer loosely coupled to implementations in other
// packages.
type Dependencies interface {
	Recommend(ctx context.Context, req service.Request) (service.Result, error)
	ForYou(ctx context.Context, req service.Request) ([]model.ScoredCandidate, error)
	Categories(ctx context.Context) []string
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler          *HealthHandler
	statsHandler           *StatsHandler
	recommendationsHandler *RecommendationsHandler
	categoriesHandler      *CategoriesHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:          NewHealthHandler(),
		statsHandler:           NewStatsHandler(statsProvider),
		recommendationsHandler: NewRecommendationsHandler(deps),
		categoriesHandler:      NewCategoriesHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/categories", MetricsMiddleware(s.categoriesHandler.HandleGetCategories, "categories"))
	mux.HandleFunc("/recommendations/", MetricsMiddleware(s.recommendationsHandler.HandleRecommendations, "recommendations"))
}

// recommendRequest mirrors the OpenAPI schema for POST /recommendations/{category}.
type recommendRequest struct {
	CityID     string                 `json:"city_id"`
	Context    model.ScoringContext   `json:"context"`
	Pagination model.PaginationParams `json:"pagination"`
}

func (r recommendRequest) validate() error {
	if r.CityID == "" {
		return errors.New("missing city_id")
	}
	if r.Pagination.Page < 0 || r.Pagination.PageSize < 0 {
		return errors.New("pagination values must not be negative")
	}
	return nil
}

// topNResponse is the flat list shape used by top-N categories.
type topNResponse struct {
	Items []model.ScoredCandidate `json:"items"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError translates pipeline errors to HTTP statuses:
// unknown category or city map to 404, any other provider failure is a
// 502 since the engine has no fallback data source.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, scoring.ErrUnknownCategory):
		writeError(w, http.StatusNotFound, "unknown_category", err)
	case errors.Is(err, catalog.ErrCityNotFound):
		writeError(w, http.StatusNotFound, "unknown_city", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, statusClientClosedRequest, "request_cancelled", err)
	default:
		writeError(w, http.StatusBadGateway, "upstream_error", err)
	}
}

// statusClientClosedRequest is the de facto status for cancelled requests.
const statusClientClosedRequest = 499
