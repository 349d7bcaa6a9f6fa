// Package scoring implements the weighted multi-dimension recommendation
// engine: lookup tables, weight profiles, sub-score calculators, and
// the per-category aggregation pass.
package scoring

import (
	"context"
	"fmt"

	"github.com/okian/roam/internal/domain/geo"
	"github.com/okian/roam/internal/domain/model"
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithTables overrides the default lookup tables.
func WithTables(t Tables) Option {
	return func(e *Engine) {
		e.tables = t
	}
}

// WithAdjustmentRules overrides the default weight adjustment rules.
func WithAdjustmentRules(rules []AdjustmentRule) Option {
	return func(e *Engine) {
		if rules != nil {
			e.rules = rules
		}
	}
}

// Engine computes final scores for candidates under one category
// config. Stateless across requests; safe for concurrent use.
type Engine struct {
	tables Tables
	rules  []AdjustmentRule
}

// New creates an Engine with configuration options. The tables are
// validated so a bad override fails at startup, not mid-request.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		tables: DefaultTables(),
		rules:  DefaultAdjustmentRules(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.tables.Validate(); err != nil {
		return nil, fmt.Errorf("engine tables: %w", err)
	}
	return e, nil
}

// Tables exposes the engine's lookup data for callers that need the
// same derivations (e.g. catalog prefilters).
func (e *Engine) Tables() Tables {
	return e.tables
}

// Score computes the weight profile once, resolves the location
// context, and maps every candidate through the category's applicable
// sub-scores. Results are unfiltered and unsorted; ranking is a
// separate stage. Honors ctx only before work starts: once scoring
// begins the pass is cheap enough to run to completion.
func (e *Engine) Score(ctx context.Context, cat CategoryConfig, sc model.ScoringContext, candidates []model.Candidate) ([]model.ScoredCandidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("scoring abandoned: %w", err)
	}

	effective := EffectiveWeights(cat.BaseWeights, e.rules, sc)
	loc := resolveLocation(sc)

	out := make([]model.ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		var total float64
		for _, dim := range cat.Dimensions {
			total += e.subScore(dim, c, sc, loc, cat) * effective[dim]
		}
		out = append(out, model.ScoredCandidate{Candidate: c, Score: total})
	}
	return out, nil
}

func (e *Engine) subScore(dim Dimension, c model.Candidate, sc model.ScoringContext, loc model.LocationContext, cat CategoryConfig) float64 {
	switch dim {
	case DimensionPrestige:
		return PrestigeScore(c)
	case DimensionInterest:
		return InterestScore(c, sc, e.tables)
	case DimensionActivity:
		return ActivityScore(c, sc, e.tables)
	case DimensionPrice:
		return PriceScore(c, sc, e.tables, cat)
	case DimensionLocation:
		return LocationScore(c, loc, cat.Location)
	case DimensionTime:
		return TimeScore(c, sc)
	default:
		return 0
	}
}

// resolveLocation materializes activity clusters from the selected
// activities when the caller asked for cluster-relative scoring but
// did not precompute them. Clusters are ephemeral per request.
func resolveLocation(sc model.ScoringContext) model.LocationContext {
	loc := sc.Location
	if loc.Kind == model.LocationActivityCluster && len(loc.Clusters) == 0 {
		loc.Clusters = geo.BuildClusters(sc.SelectedActivities)
	}
	return loc
}
