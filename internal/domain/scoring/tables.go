package scoring

import (
	"fmt"

	"github.com/okian/roam/internal/domain/model"
)

// Tables bundles the static lookup data shared by every category so a
// single versioned copy feeds all of them. Injected into the Engine;
// never mutated after construction.
type Tables struct {
	// Version identifies the lookup-data revision; bump when any map
	// below changes so category configs and tables move together.
	Version string

	// InterestPlaceTypes expands a declared interest tag into the
	// place types that satisfy it.
	InterestPlaceTypes map[string][]string

	// Intensity buckets classify place types by physical demand.
	HighIntensityTypes     []string
	ModerateIntensityTypes []string
	LowIntensityTypes      []string

	// PriceOrdinals maps price levels onto the 1..5 scale used by the
	// price alignment term. UNSPECIFIED is deliberately absent.
	PriceOrdinals map[model.PriceLevel]float64

	// BudgetTargets gives the ideal price ordinal per budget.
	BudgetTargets map[model.Budget]float64

	// BudgetAllowedLevels lists the price levels that earn the direct
	// match bonus per budget.
	BudgetAllowedLevels map[model.Budget][]model.PriceLevel

	// ReviewTierPopularity maps review-count tiers onto a 0.2..1.0
	// popularity value used by crowd alignment.
	ReviewTierPopularity map[model.ReviewCountTier]float64
}

// DefaultTables returns the lookup data every category consumes today.
func DefaultTables() Tables {
	return Tables{
		Version: "2025-08",
		InterestPlaceTypes: map[string][]string{
			"outdoors":      {"park", "national_park", "garden", "beach", "hiking_area"},
			"arts":          {"museum", "art_gallery", "theater"},
			"history":       {"historical_landmark", "monument", "historic_site", "museum"},
			"entertainment": {"tourist_attraction", "amusement_park", "night_club", "casino", "theater"},
			"photography":   {"tourist_attraction", "historical_landmark", "monument", "park", "garden"},
			"food":          {"restaurant", "cafe", "bakery", "food_market"},
		},
		HighIntensityTypes: []string{
			"hiking_area", "amusement_park", "water_park", "zoo", "night_club", "stadium",
		},
		ModerateIntensityTypes: []string{
			"tourist_attraction", "museum", "historical_landmark", "park",
			"garden", "market", "food_market", "shopping_mall", "theater",
		},
		LowIntensityTypes: []string{
			"restaurant", "cafe", "bakery", "art_gallery", "spa", "beach", "monument",
		},
		PriceOrdinals: map[model.PriceLevel]float64{
			model.PriceFree:          1,
			model.PriceInexpensive:   2,
			model.PriceModerate:      3,
			model.PriceExpensive:     4,
			model.PriceVeryExpensive: 5,
		},
		BudgetTargets: map[model.Budget]float64{
			model.BudgetLow:      1.5,
			model.BudgetModerate: 3,
			model.BudgetLuxury:   4.5,
		},
		BudgetAllowedLevels: map[model.Budget][]model.PriceLevel{
			model.BudgetLow:      {model.PriceFree, model.PriceInexpensive},
			model.BudgetModerate: {model.PriceInexpensive, model.PriceModerate, model.PriceExpensive},
			model.BudgetLuxury:   {model.PriceModerate, model.PriceExpensive, model.PriceVeryExpensive},
		},
		ReviewTierPopularity: map[model.ReviewCountTier]float64{
			model.ReviewsLow:      0.2,
			model.ReviewsModerate: 0.5,
			model.ReviewsHigh:     0.8,
			model.ReviewsVeryHigh: 1.0,
		},
	}
}

// Validate checks the lookup data is internally complete.
func (t Tables) Validate() error {
	if t.Version == "" {
		return fmt.Errorf("%w: missing version", ErrInvalidTables)
	}
	if len(t.InterestPlaceTypes) == 0 {
		return fmt.Errorf("%w: empty interest map", ErrInvalidTables)
	}
	for _, lvl := range []model.PriceLevel{
		model.PriceFree, model.PriceInexpensive, model.PriceModerate,
		model.PriceExpensive, model.PriceVeryExpensive,
	} {
		if _, ok := t.PriceOrdinals[lvl]; !ok {
			return fmt.Errorf("%w: missing price ordinal for %s", ErrInvalidTables, lvl)
		}
	}
	for _, b := range []model.Budget{model.BudgetLow, model.BudgetModerate, model.BudgetLuxury} {
		if _, ok := t.BudgetTargets[b]; !ok {
			return fmt.Errorf("%w: missing budget target for %s", ErrInvalidTables, b)
		}
		if len(t.BudgetAllowedLevels[b]) == 0 {
			return fmt.Errorf("%w: missing allowed price levels for %s", ErrInvalidTables, b)
		}
	}
	for _, tier := range []model.ReviewCountTier{
		model.ReviewsLow, model.ReviewsModerate, model.ReviewsHigh, model.ReviewsVeryHigh,
	} {
		p, ok := t.ReviewTierPopularity[tier]
		if !ok {
			return fmt.Errorf("%w: missing popularity for review tier %s", ErrInvalidTables, tier)
		}
		if p < 0.2 || p > 1.0 {
			return fmt.Errorf("%w: popularity for %s outside [0.2,1.0]", ErrInvalidTables, tier)
		}
	}
	return nil
}

// interestTypeSet expands the context's interests into one place-type
// set. Unknown interest tags contribute nothing.
func (t Tables) interestTypeSet(interests []string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tag := range interests {
		for _, pt := range t.InterestPlaceTypes[tag] {
			set[pt] = struct{}{}
		}
	}
	return set
}
