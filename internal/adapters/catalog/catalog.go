// Package catalog provides the candidate provider consumed by the
// scoring pipeline. The provider owns all catalog-level filtering:
// city scope, operational status, category place-type allowlists, and
// seasonal availability. The engine never re-filters.
package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/okian/roam/internal/domain/model"
	"github.com/okian/roam/internal/domain/scoring"
)

// Provider returns coarse-filtered candidates for one city and
// category. Implementations must apply city, business-status,
// place-type, and seasonal filters before returning.
type Provider interface {
	Candidates(ctx context.Context, cityID string, category scoring.CategoryConfig) ([]model.Candidate, error)
}

// Option applies a configuration option to the MemoryCatalog.
type Option func(*MemoryCatalog)

// WithSeason sets the season used for seasonal-availability filtering.
func WithSeason(season string) Option {
	return func(c *MemoryCatalog) {
		if season != "" {
			c.season = season
		}
	}
}

// MemoryCatalog implements Provider over an in-memory per-city index.
// Reads are lock-free after loading except for the RWMutex guarding
// the city map; candidate slices are treated as immutable.
type MemoryCatalog struct {
	mu     sync.RWMutex
	cities map[string][]model.Candidate
	season string
}

// NewMemoryCatalog creates an empty in-memory catalog.
func NewMemoryCatalog(opts ...Option) *MemoryCatalog {
	c := &MemoryCatalog{
		cities: make(map[string][]model.Candidate),
		season: "all_year",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load replaces the candidate set for a city.
func (c *MemoryCatalog) Load(cityID string, candidates []model.Candidate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cities[cityID] = candidates
}

// Cities returns the loaded city identifiers, unordered.
func (c *MemoryCatalog) Cities() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.cities))
	for id := range c.cities {
		out = append(out, id)
	}
	return out
}

// Count returns the number of candidates loaded for a city.
func (c *MemoryCatalog) Count(cityID string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cities[cityID])
}

// Candidates returns the city's candidates that are operational, pass
// the category's place-type allowlist, and are available this season.
func (c *MemoryCatalog) Candidates(ctx context.Context, cityID string, category scoring.CategoryConfig) ([]model.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("catalog read aborted: %w", err)
	}

	c.mu.RLock()
	all, ok := c.cities[cityID]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCityNotFound, cityID)
	}

	allow := make(map[string]struct{}, len(category.AllowedPlaceTypes))
	for _, t := range category.AllowedPlaceTypes {
		allow[t] = struct{}{}
	}

	out := make([]model.Candidate, 0, len(all))
	for _, cand := range all {
		if cand.BusinessStatus != model.StatusOperational {
			continue
		}
		if !c.seasonallyAvailable(cand) {
			continue
		}
		if len(allow) > 0 && !matchesAllowlist(cand, allow) {
			continue
		}
		out = append(out, cand)
	}
	return out, nil
}

func (c *MemoryCatalog) seasonallyAvailable(cand model.Candidate) bool {
	switch cand.SeasonalAvailability {
	case "", "all_year":
		return true
	default:
		return cand.SeasonalAvailability == c.season
	}
}

func matchesAllowlist(cand model.Candidate, allow map[string]struct{}) bool {
	for _, t := range cand.PlaceTypes {
		if _, ok := allow[t]; ok {
			return true
		}
	}
	return false
}
