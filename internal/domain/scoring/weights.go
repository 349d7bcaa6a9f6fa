package scoring

import (
	"math"

	"github.com/okian/roam/internal/domain/model"
)

// Dimension names one scored aspect of a candidate.
type Dimension string

// Scoring dimensions.
const (
	DimensionPrestige Dimension = "prestige"
	DimensionInterest Dimension = "interest"
	DimensionActivity Dimension = "activity"
	DimensionPrice    Dimension = "price"
	DimensionLocation Dimension = "location"
	DimensionTime     Dimension = "time"
)

// Weights maps dimensions to their contribution fractions. Base tables
// sum to 1.0 per category; effective weights after adjustment may not.
type Weights map[Dimension]float64

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	var s float64
	for _, v := range w {
		s += v
	}
	return s
}

// Clone returns an independent copy.
func (w Weights) Clone() Weights {
	out := make(Weights, len(w))
	for d, v := range w {
		out[d] = v
	}
	return out
}

// Renormalized returns a copy scaled so the weights sum to 1.0.
// The engine does not call this by default: the historical behavior
// lets context adjustments drift the sum, and that drift is preserved.
func (w Weights) Renormalized() Weights {
	total := w.Sum()
	if total == 0 {
		return w.Clone()
	}
	out := make(Weights, len(w))
	for d, v := range w {
		out[d] = v / total
	}
	return out
}

// AdjustmentRule is one declarative context-driven weight shift. Rules
// are folded over the base table in order; deltas are purely additive
// and unclamped.
type AdjustmentRule struct {
	Name    string
	Applies func(model.ScoringContext) bool
	Deltas  map[Dimension]float64
}

// DefaultAdjustmentRules returns the ordered rule list applied to every
// category's base table.
func DefaultAdjustmentRules() []AdjustmentRule {
	return []AdjustmentRule{
		{
			Name: "crowd_popular",
			Applies: func(c model.ScoringContext) bool {
				return c.CrowdPreference == model.CrowdPopular
			},
			Deltas: map[Dimension]float64{
				DimensionPrestige: 0.10,
				DimensionLocation: -0.10,
			},
		},
		{
			Name: "crowd_hidden",
			Applies: func(c model.ScoringContext) bool {
				return c.CrowdPreference == model.CrowdHidden
			},
			Deltas: map[Dimension]float64{
				DimensionPrestige: -0.10,
				DimensionLocation: 0.10,
			},
		},
		{
			Name: "tight_budget",
			Applies: func(c model.ScoringContext) bool {
				return c.Budget == model.BudgetLow
			},
			Deltas: map[Dimension]float64{
				DimensionPrice:    0.10,
				DimensionActivity: -0.05,
				DimensionPrestige: -0.05,
			},
		},
		{
			Name: "energy_declared",
			Applies: func(c model.ScoringContext) bool {
				return c.EnergyLevel != 0
			},
			Deltas: map[Dimension]float64{
				DimensionActivity: 0.05,
				DimensionLocation: -0.05,
			},
		},
		{
			Name: "start_time_declared",
			Applies: func(c model.ScoringContext) bool {
				return c.PreferredStartTime != ""
			},
			Deltas: map[Dimension]float64{
				DimensionTime:     0.05,
				DimensionInterest: -0.05,
			},
		},
	}
}

// EffectiveWeights folds the rule list over the base table in one pass.
// Only dimensions present in the base table receive deltas; a rule
// cannot introduce a dimension the category does not score. The result
// is not renormalized.
func EffectiveWeights(base Weights, rules []AdjustmentRule, ctx model.ScoringContext) Weights {
	out := base.Clone()
	for _, r := range rules {
		if r.Applies == nil || !r.Applies(ctx) {
			continue
		}
		for d, delta := range r.Deltas {
			if _, ok := out[d]; ok {
				out[d] += delta
			}
		}
	}
	return out
}

// sumsToOne reports whether w sums to 1.0 within tolerance.
func (w Weights) sumsToOne() bool {
	return math.Abs(w.Sum()-1.0) <= 1e-9
}
