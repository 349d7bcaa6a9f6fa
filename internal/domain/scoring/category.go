package scoring

import "fmt"

// OutputMode selects the result shape a category produces.
type OutputMode string

// Output modes.
const (
	ModePaged OutputMode = "paged"
	ModeTopN  OutputMode = "top_n"
)

// LocationProfile holds the distance breakpoints for location scoring
// against a point reference (city center or current position). Within
// FullCreditMeters the score is 1.0, within MidCreditMeters it is 0.7,
// then it decays linearly to 0 at DecayLimitMeters.
type LocationProfile struct {
	FullCreditMeters float64
	MidCreditMeters  float64
	DecayLimitMeters float64
}

// CategoryConfig is the per-category static configuration consumed by
// the engine. One engine, many configs; categories never fork code.
type CategoryConfig struct {
	ID   string
	Name string

	// BaseWeights must cover exactly Dimensions and sum to 1.0.
	BaseWeights Weights
	Dimensions  []Dimension

	// Threshold drops candidates whose final score is at or below it.
	Threshold float64

	Mode            OutputMode
	TopN            int
	DefaultPageSize int

	// AllowedPlaceTypes is the catalog prefilter; empty means any.
	AllowedPlaceTypes []string

	Location LocationProfile

	// PriceMatchBonus is the flat credit for landing in the budget's
	// allowed price levels; FreePriceScore is the direct score a FREE
	// candidate receives, bypassing the general formula.
	PriceMatchBonus float64
	FreePriceScore  float64
}

// Validate checks internal consistency of one category config.
func (c CategoryConfig) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidCategory)
	}
	if len(c.Dimensions) == 0 {
		return fmt.Errorf("%w: %s has no dimensions", ErrInvalidCategory, c.ID)
	}
	if len(c.BaseWeights) != len(c.Dimensions) {
		return fmt.Errorf("%w: %s weight table does not match dimensions", ErrInvalidCategory, c.ID)
	}
	for _, d := range c.Dimensions {
		if _, ok := c.BaseWeights[d]; !ok {
			return fmt.Errorf("%w: %s missing weight for %s", ErrInvalidCategory, c.ID, d)
		}
	}
	if !c.BaseWeights.sumsToOne() {
		return fmt.Errorf("%w: %s weights sum to %v, want 1.0", ErrInvalidCategory, c.ID, c.BaseWeights.Sum())
	}
	if c.Threshold < 0 {
		return fmt.Errorf("%w: %s negative threshold", ErrInvalidCategory, c.ID)
	}
	switch c.Mode {
	case ModeTopN:
		if c.TopN < 1 {
			return fmt.Errorf("%w: %s top-n mode without N", ErrInvalidCategory, c.ID)
		}
	case ModePaged:
		if c.DefaultPageSize < 1 {
			return fmt.Errorf("%w: %s paged mode without page size", ErrInvalidCategory, c.ID)
		}
	default:
		return fmt.Errorf("%w: %s unknown mode %q", ErrInvalidCategory, c.ID, c.Mode)
	}
	if c.Location.DecayLimitMeters < c.Location.MidCreditMeters ||
		c.Location.MidCreditMeters < c.Location.FullCreditMeters {
		return fmt.Errorf("%w: %s location breakpoints out of order", ErrInvalidCategory, c.ID)
	}
	return nil
}

// Registry resolves category identifiers to their configs.
type Registry map[string]CategoryConfig

// NewRegistry builds a registry after validating every config.
func NewRegistry(configs []CategoryConfig) (Registry, error) {
	r := make(Registry, len(configs))
	for _, c := range configs {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r[c.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", ErrInvalidCategory, c.ID)
		}
		r[c.ID] = c
	}
	return r, nil
}

// Lookup returns the config for id or ErrUnknownCategory.
func (r Registry) Lookup(id string) (CategoryConfig, error) {
	c, ok := r[id]
	if !ok {
		return CategoryConfig{}, fmt.Errorf("%w: %s", ErrUnknownCategory, id)
	}
	return c, nil
}

// IDs returns the registered category identifiers, unordered.
func (r Registry) IDs() []string {
	out := make([]string, 0, len(r))
	for id := range r {
		out = append(out, id)
	}
	return out
}

// DefaultCategories returns the ten built-in category configurations.
// Weight tables are hand-tuned; each sums to 1.0 over its dimensions.
func DefaultCategories() []CategoryConfig {
	all := []Dimension{
		DimensionPrestige, DimensionInterest, DimensionActivity,
		DimensionPrice, DimensionLocation, DimensionTime,
	}
	noTime := []Dimension{
		DimensionPrestige, DimensionInterest, DimensionActivity,
		DimensionPrice, DimensionLocation,
	}

	return []CategoryConfig{
		{
			ID:   "attractions",
			Name: "Attractions",
			BaseWeights: Weights{
				DimensionPrestige: 0.25,
				DimensionInterest: 0.20,
				DimensionActivity: 0.20,
				DimensionPrice:    0.10,
				DimensionLocation: 0.15,
				DimensionTime:     0.10,
			},
			Dimensions:      all,
			Threshold:       0,
			Mode:            ModePaged,
			DefaultPageSize: 20,
			AllowedPlaceTypes: []string{
				"tourist_attraction", "amusement_park", "zoo", "aquarium",
				"water_park", "monument", "historical_landmark", "stadium",
			},
			Location:        LocationProfile{FullCreditMeters: 2000, MidCreditMeters: 5000, DecayLimitMeters: 10000},
			PriceMatchBonus: 0.3,
			FreePriceScore:  1.0,
		},
		{
			ID:   "museums",
			Name: "Museums & Galleries",
			BaseWeights: Weights{
				DimensionPrestige: 0.20,
				DimensionInterest: 0.30,
				DimensionActivity: 0.15,
				DimensionPrice:    0.10,
				DimensionLocation: 0.15,
				DimensionTime:     0.10,
			},
			Dimensions:        all,
			Threshold:         0,
			Mode:              ModePaged,
			DefaultPageSize:   20,
			AllowedPlaceTypes: []string{"museum", "art_gallery"},
			Location:          LocationProfile{FullCreditMeters: 2000, MidCreditMeters: 5000, DecayLimitMeters: 8000},
			PriceMatchBonus:   0.3,
			FreePriceScore:    1.0,
		},
		{
			ID:   "restaurants",
			Name: "Restaurants",
			BaseWeights: Weights{
				DimensionInterest: 0.25,
				DimensionActivity: 0.15,
				DimensionPrice:    0.30,
				DimensionLocation: 0.30,
			},
			Dimensions: []Dimension{
				DimensionInterest, DimensionActivity, DimensionPrice, DimensionLocation,
			},
			Threshold:         0,
			Mode:              ModePaged,
			DefaultPageSize:   20,
			AllowedPlaceTypes: []string{"restaurant", "food_market"},
			Location:          LocationProfile{FullCreditMeters: 800, MidCreditMeters: 2000, DecayLimitMeters: 5000},
			PriceMatchBonus:   0.7,
			FreePriceScore:    0.8,
		},
		{
			ID:   "cafes",
			Name: "Cafes & Bakeries",
			BaseWeights: Weights{
				DimensionInterest: 0.20,
				DimensionActivity: 0.20,
				DimensionPrice:    0.25,
				DimensionLocation: 0.35,
			},
			Dimensions: []Dimension{
				DimensionInterest, DimensionActivity, DimensionPrice, DimensionLocation,
			},
			Threshold:         0,
			Mode:              ModeTopN,
			TopN:              12,
			AllowedPlaceTypes: []string{"cafe", "bakery"},
			Location:          LocationProfile{FullCreditMeters: 800, MidCreditMeters: 1500, DecayLimitMeters: 3000},
			PriceMatchBonus:   0.4,
			FreePriceScore:    0.8,
		},
		{
			ID:   "nightlife",
			Name: "Nightlife",
			BaseWeights: Weights{
				DimensionPrestige: 0.10,
				DimensionInterest: 0.25,
				DimensionActivity: 0.25,
				DimensionPrice:    0.15,
				DimensionLocation: 0.25,
			},
			Dimensions:        noTime,
			Threshold:         0.4,
			Mode:              ModeTopN,
			TopN:              15,
			AllowedPlaceTypes: []string{"night_club", "bar", "casino"},
			Location:          LocationProfile{FullCreditMeters: 1500, MidCreditMeters: 3000, DecayLimitMeters: 6000},
			PriceMatchBonus:   0.4,
			FreePriceScore:    0.8,
		},
		{
			ID:   "parks",
			Name: "Parks & Nature",
			BaseWeights: Weights{
				DimensionPrestige: 0.15,
				DimensionInterest: 0.30,
				DimensionActivity: 0.25,
				DimensionLocation: 0.20,
				DimensionTime:     0.10,
			},
			Dimensions: []Dimension{
				DimensionPrestige, DimensionInterest, DimensionActivity,
				DimensionLocation, DimensionTime,
			},
			Threshold:         0,
			Mode:              ModeTopN,
			TopN:              10,
			AllowedPlaceTypes: []string{"park", "national_park", "garden", "beach", "hiking_area"},
			Location:          LocationProfile{FullCreditMeters: 3000, MidCreditMeters: 6000, DecayLimitMeters: 10000},
			PriceMatchBonus:   0.3,
			FreePriceScore:    1.0,
		},
		{
			ID:   "shopping",
			Name: "Shopping",
			BaseWeights: Weights{
				DimensionInterest: 0.30,
				DimensionActivity: 0.20,
				DimensionPrice:    0.25,
				DimensionLocation: 0.25,
			},
			Dimensions: []Dimension{
				DimensionInterest, DimensionActivity, DimensionPrice, DimensionLocation,
			},
			Threshold:         0,
			Mode:              ModePaged,
			DefaultPageSize:   20,
			AllowedPlaceTypes: []string{"shopping_mall", "market"},
			Location:          LocationProfile{FullCreditMeters: 1000, MidCreditMeters: 2500, DecayLimitMeters: 5000},
			PriceMatchBonus:   0.3,
			FreePriceScore:    0.8,
		},
		{
			ID:   "entertainment",
			Name: "Entertainment",
			BaseWeights: Weights{
				DimensionPrestige: 0.15,
				DimensionInterest: 0.25,
				DimensionActivity: 0.25,
				DimensionPrice:    0.15,
				DimensionLocation: 0.10,
				DimensionTime:     0.10,
			},
			Dimensions:        all,
			Threshold:         0,
			Mode:              ModePaged,
			DefaultPageSize:   20,
			AllowedPlaceTypes: []string{"theater", "amusement_park", "casino", "stadium", "tourist_attraction"},
			Location:          LocationProfile{FullCreditMeters: 2000, MidCreditMeters: 5000, DecayLimitMeters: 10000},
			PriceMatchBonus:   0.3,
			FreePriceScore:    1.0,
		},
		{
			ID:   "historic",
			Name: "Historic Sites",
			BaseWeights: Weights{
				DimensionPrestige: 0.30,
				DimensionInterest: 0.30,
				DimensionActivity: 0.10,
				DimensionLocation: 0.20,
				DimensionTime:     0.10,
			},
			Dimensions: []Dimension{
				DimensionPrestige, DimensionInterest, DimensionActivity,
				DimensionLocation, DimensionTime,
			},
			Threshold:         0,
			Mode:              ModeTopN,
			TopN:              15,
			AllowedPlaceTypes: []string{"historical_landmark", "monument", "historic_site"},
			Location:          LocationProfile{FullCreditMeters: 2000, MidCreditMeters: 5000, DecayLimitMeters: 10000},
			PriceMatchBonus:   0.3,
			FreePriceScore:    1.0,
		},
		{
			ID:   "wellness",
			Name: "Wellness & Spas",
			BaseWeights: Weights{
				DimensionInterest: 0.25,
				DimensionActivity: 0.30,
				DimensionPrice:    0.20,
				DimensionLocation: 0.25,
			},
			Dimensions: []Dimension{
				DimensionInterest, DimensionActivity, DimensionPrice, DimensionLocation,
			},
			Threshold:         0,
			Mode:              ModeTopN,
			TopN:              8,
			AllowedPlaceTypes: []string{"spa"},
			Location:          LocationProfile{FullCreditMeters: 1500, MidCreditMeters: 3000, DecayLimitMeters: 6000},
			PriceMatchBonus:   0.4,
			FreePriceScore:    0.8,
		},
	}
}

// ForYouCategory is the synthetic config scoring the combined
// activities-plus-restaurants feed. TopN mode; balanced weights.
func ForYouCategory() CategoryConfig {
	return CategoryConfig{
		ID:   "for_you",
		Name: "For You",
		BaseWeights: Weights{
			DimensionPrestige: 0.20,
			DimensionInterest: 0.25,
			DimensionActivity: 0.15,
			DimensionPrice:    0.15,
			DimensionLocation: 0.15,
			DimensionTime:     0.10,
		},
		Dimensions: []Dimension{
			DimensionPrestige, DimensionInterest, DimensionActivity,
			DimensionPrice, DimensionLocation, DimensionTime,
		},
		Threshold:       0,
		Mode:            ModeTopN,
		TopN:            20,
		Location:        LocationProfile{FullCreditMeters: 2000, MidCreditMeters: 5000, DecayLimitMeters: 10000},
		PriceMatchBonus: 0.3,
		FreePriceScore:  1.0,
	}
}
