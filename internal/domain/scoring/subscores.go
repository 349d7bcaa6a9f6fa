package scoring

import (
	"math"

	"github.com/okian/roam/internal/domain/geo"
	"github.com/okian/roam/internal/domain/model"
)

// Sub-score calculators. Each is a pure function of (candidate,
// context) returning a value in [0,1], except PriceScore which may
// exceed 1 when the direct match bonus and the alignment term stack;
// that historical behavior is kept on purpose and pinned by tests.

// neutralScore is the fallback when the context lacks the data a
// calculator needs. Missing context is never an error.
const neutralScore = 0.5

// PrestigeScore credits must-see and tourist-attraction flags, plus
// landmark place types and the exceptional-rating/very-high-review
// combination. Capped at 1.
func PrestigeScore(c model.Candidate) float64 {
	var s float64
	if c.MustSee {
		s += 0.6
	}
	if c.TouristAttraction {
		s += 0.3
	}
	if c.HasPlaceType("historical_landmark") || c.HasPlaceType("monument") {
		s += 0.15
	}
	if c.RatingTier == model.RatingExceptional && c.ReviewCountTier == model.ReviewsVeryHigh {
		s += 0.2
	}
	return math.Min(1, s)
}

// InterestScore measures how much of the candidate's type set falls in
// the place types derived from the declared interests, with a rating
// boost for strong matches. No declared interests yields the neutral
// default. Capped at 1.
func InterestScore(c model.Candidate, ctx model.ScoringContext, tables Tables) float64 {
	if len(ctx.Interests) == 0 || len(c.PlaceTypes) == 0 {
		return neutralScore
	}
	wanted := tables.interestTypeSet(ctx.Interests)
	if len(wanted) == 0 {
		return neutralScore
	}

	var matched int
	for _, pt := range c.PlaceTypes {
		if _, ok := wanted[pt]; ok {
			matched++
		}
	}
	if matched == 0 {
		return 0
	}

	s := float64(matched) / float64(len(c.PlaceTypes))
	switch c.RatingTier {
	case model.RatingHigh:
		s += 0.1
	case model.RatingExceptional:
		s += 0.2
	}
	return math.Min(1, s)
}

// ActivityScore sums intensity alignment (max 0.5), review quality
// (max 0.3), and crowd alignment (max 0.2). Each part is bounded so
// the sum stays in [0,1].
func ActivityScore(c model.Candidate, ctx model.ScoringContext, tables Tables) float64 {
	return intensityAlignment(c, ctx.EnergyLevel, tables) +
		reviewQuality(c.RatingTier) +
		crowdAlignment(c.ReviewCountTier, ctx.CrowdPreference, tables)
}

// intensityAlignment scores how the candidate's dominant intensity
// bucket matches the traveler's energy level. The curve is triangular:
// full credit on the matching bucket, partial on adjacent buckets.
func intensityAlignment(c model.Candidate, energy model.EnergyLevel, tables Tables) float64 {
	if energy == 0 {
		return 0.3
	}

	bucket := dominantIntensity(c, tables)
	diff := int(energy) - bucket
	if diff < 0 {
		diff = -diff
	}
	switch diff {
	case 0:
		return 0.5
	case 1:
		return 0.3
	default:
		return 0.1
	}
}

// dominantIntensity classifies the candidate into 1 (low), 2
// (moderate), or 3 (high) by counting place-type membership per
// bucket; ties go to the higher-intensity bucket, no membership at
// all reads as moderate.
func dominantIntensity(c model.Candidate, tables Tables) int {
	count := func(bucket []string) int {
		var n int
		for _, t := range bucket {
			if c.HasPlaceType(t) {
				n++
			}
		}
		return n
	}
	high := count(tables.HighIntensityTypes)
	mod := count(tables.ModerateIntensityTypes)
	low := count(tables.LowIntensityTypes)

	switch {
	case high == 0 && mod == 0 && low == 0:
		return 2
	case high >= mod && high >= low:
		return 3
	case mod >= low:
		return 2
	default:
		return 1
	}
}

func reviewQuality(tier model.RatingTier) float64 {
	switch tier {
	case model.RatingExceptional:
		return 0.3
	case model.RatingHigh:
		return 0.2
	case model.RatingAverage:
		return 0.1
	default:
		return 0
	}
}

func crowdAlignment(tier model.ReviewCountTier, pref model.CrowdPreference, tables Tables) float64 {
	popularity, ok := tables.ReviewTierPopularity[tier]
	if !ok {
		popularity = 0.2
	}
	switch pref {
	case model.CrowdPopular:
		return 0.2 * popularity
	case model.CrowdHidden:
		return 0.2 * (1 - popularity)
	default:
		return 0.15
	}
}

// PriceScore combines a direct match bonus with an ordinal alignment
// term. FREE candidates short-circuit to the category's free-price
// score regardless of other fields; an unspecified price or an absent
// budget yields the neutral default. Deliberately not capped at 1.
func PriceScore(c model.Candidate, ctx model.ScoringContext, tables Tables, cat CategoryConfig) float64 {
	if c.PriceLevel == model.PriceFree {
		return cat.FreePriceScore
	}
	if c.PriceLevel == model.PriceUnspecified || c.PriceLevel == "" || ctx.Budget == "" {
		return neutralScore
	}

	var s float64
	for _, lvl := range tables.BudgetAllowedLevels[ctx.Budget] {
		if c.PriceLevel == lvl {
			s += cat.PriceMatchBonus
			break
		}
	}

	ordinal, ok := tables.PriceOrdinals[c.PriceLevel]
	if !ok {
		return neutralScore
	}
	target, ok := tables.BudgetTargets[ctx.Budget]
	if !ok {
		return neutralScore
	}
	s += math.Max(0, 0.4-0.1*math.Abs(ordinal-target))
	return s
}

// LocationScore rates logistic convenience against the resolved
// location context. Point references use the category's breakpoint
// profile; cluster references use linear falloff inside each cluster
// radius, taking the best cluster. No context yields the neutral
// default.
func LocationScore(c model.Candidate, loc model.LocationContext, profile LocationProfile) float64 {
	switch loc.Kind {
	case model.LocationCityCenter, model.LocationCurrentPosition:
		if loc.Reference == nil {
			return neutralScore
		}
		d := geo.DistanceMeters(c.Location.Lat, c.Location.Lng, loc.Reference.Lat, loc.Reference.Lng)
		return pointDecay(d, profile)
	case model.LocationActivityCluster:
		if len(loc.Clusters) == 0 {
			return neutralScore
		}
		var best float64
		for _, cl := range loc.Clusters {
			if cl.RadiusMeters <= 0 {
				continue
			}
			d := geo.DistanceMeters(c.Location.Lat, c.Location.Lng, cl.Center.Lat, cl.Center.Lng)
			if s := math.Max(0, 1-d/cl.RadiusMeters); s > best {
				best = s
			}
		}
		return best
	default:
		return neutralScore
	}
}

func pointDecay(d float64, p LocationProfile) float64 {
	switch {
	case d <= p.FullCreditMeters:
		return 1
	case d <= p.MidCreditMeters:
		return 0.7
	case d >= p.DecayLimitMeters:
		return 0
	default:
		// Linear decay from 0.7 at the mid breakpoint to 0 at the limit.
		return 0.7 * (p.DecayLimitMeters - d) / (p.DecayLimitMeters - p.MidCreditMeters)
	}
}

// Start-time bucket targets in local hours.
var startTargets = map[model.StartTimeBucket]int{
	model.StartEarly: 8,
	model.StartMid:   10,
	model.StartLate:  12,
}

// TimeScore compares the preferred start bucket to the candidate's
// earliest opening hour, with a long-hours bonus and live closing-time
// penalties during an active trip. Missing time data on either side
// yields the neutral default. Capped into [0,1].
func TimeScore(c model.Candidate, ctx model.ScoringContext) float64 {
	target, ok := startTargets[ctx.PreferredStartTime]
	if !ok || c.OpeningHours == nil || len(c.OpeningHours.Periods) == 0 {
		return neutralScore
	}

	earliest, longest := openingSummary(c.OpeningHours.Periods)
	if earliest < 0 {
		return neutralScore
	}

	mismatch := earliest - target
	if mismatch < 0 {
		mismatch = -mismatch
	}
	var s float64
	switch {
	case mismatch <= 1:
		s = 1.0
	case mismatch <= 2:
		s = 0.9
	case mismatch <= 3:
		s = 0.7
	case mismatch <= 4:
		s = 0.5
	default:
		s = 0.3
	}

	// Opening far earlier than a late starter needs, or later than an
	// early starter wants, costs a little extra.
	if ctx.PreferredStartTime == model.StartLate && earliest <= target-4 {
		s -= 0.05
	}
	if ctx.PreferredStartTime == model.StartEarly && earliest >= target+2 {
		s -= 0.05
	}

	if longest >= 8 {
		s += 0.1
	}

	if ctx.Phase == model.PhaseActive && c.OpeningHours.NextCloseInMinutes != nil {
		switch mins := *c.OpeningHours.NextCloseInMinutes; {
		case mins < 60:
			s *= 0.5
		case mins < 120:
			s *= 0.8
		}
	}

	return math.Max(0, math.Min(1, s))
}

// openingSummary returns the earliest opening hour across valid
// periods and the longest single open window in hours. Returns -1 when
// no period is valid.
func openingSummary(periods []model.OpeningPeriod) (earliest, longest int) {
	earliest = -1
	for _, p := range periods {
		if p.CloseHour <= p.OpenHour || p.OpenHour < 0 || p.CloseHour > 24 {
			continue
		}
		if earliest < 0 || p.OpenHour < earliest {
			earliest = p.OpenHour
		}
		if span := p.CloseHour - p.OpenHour; span > longest {
			longest = span
		}
	}
	return earliest, longest
}
