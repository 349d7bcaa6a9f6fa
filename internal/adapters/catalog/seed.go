package catalog

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/okian/roam/internal/domain/model"
)

// Demo dataset generation. The seeder exists so the service runs end
// to end without a real place catalog behind it; IDs are name-based
// UUIDs so a given (city, seed) pair always produces the same data.

var seedTypePools = [][]string{
	{"tourist_attraction"},
	{"tourist_attraction", "historical_landmark"},
	{"museum"},
	{"museum", "art_gallery"},
	{"restaurant"},
	{"restaurant", "food_market"},
	{"cafe", "bakery"},
	{"night_club", "bar"},
	{"park", "garden"},
	{"park", "hiking_area"},
	{"beach"},
	{"monument", "historic_site"},
	{"shopping_mall"},
	{"market"},
	{"theater"},
	{"amusement_park"},
	{"spa"},
	{"zoo"},
	{"casino", "bar"},
	{"stadium"},
}

var (
	seedRatingTiers = []model.RatingTier{
		model.RatingLow, model.RatingAverage, model.RatingAverage,
		model.RatingHigh, model.RatingHigh, model.RatingExceptional,
	}
	seedReviewTiers = []model.ReviewCountTier{
		model.ReviewsLow, model.ReviewsModerate, model.ReviewsModerate,
		model.ReviewsHigh, model.ReviewsVeryHigh,
	}
	seedPriceLevels = []model.PriceLevel{
		model.PriceFree, model.PriceInexpensive, model.PriceInexpensive,
		model.PriceModerate, model.PriceModerate, model.PriceExpensive,
		model.PriceVeryExpensive, model.PriceUnspecified,
	}
	seedSeasons = []string{"all_year", "all_year", "all_year", "summer", "winter"}
)

// SeedCity generates count demo candidates scattered within roughly
// 8 km of the city center and loads them into the catalog.
func (c *MemoryCatalog) SeedCity(cityID string, center model.GeoPoint, count int, seed int64) {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // demo data, not crypto
	out := make([]model.Candidate, 0, count)

	for i := 0; i < count; i++ {
		types := seedTypePools[rng.Intn(len(seedTypePools))]
		ratingTier := seedRatingTiers[rng.Intn(len(seedRatingTiers))]

		cand := model.Candidate{
			ID:              uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s/%d", cityID, i))).String(),
			Name:            fmt.Sprintf("%s place %03d", cityID, i),
			PlaceTypes:      types,
			PrimaryType:     types[0],
			Rating:          1.0 + rng.Float64()*4.0,
			RatingTier:      ratingTier,
			ReviewCount:     rng.Intn(20000),
			ReviewCountTier: seedReviewTiers[rng.Intn(len(seedReviewTiers))],
			PriceLevel:      seedPriceLevels[rng.Intn(len(seedPriceLevels))],
			MustSee:         rng.Float64() < 0.1,
			TouristAttraction: types[0] == "tourist_attraction" ||
				rng.Float64() < 0.15,
			BusinessStatus: model.StatusOperational,
			Location: model.Location{
				// ~0.07 degrees is on the order of 8 km at mid latitudes.
				Lat: center.Lat + (rng.Float64()-0.5)*0.14,
				Lng: center.Lng + (rng.Float64()-0.5)*0.14,
			},
			DurationMinutes:      30 + rng.Intn(180),
			SeasonalAvailability: seedSeasons[rng.Intn(len(seedSeasons))],
		}

		// Most venues carry a weekly schedule; a few have none so the
		// time sub-score's fallback path stays exercised.
		if rng.Float64() < 0.9 {
			open := 7 + rng.Intn(5)
			close := open + 6 + rng.Intn(10)
			if close > 24 {
				close = 24
			}
			periods := make([]model.OpeningPeriod, 0, 7)
			for day := 0; day < 7; day++ {
				periods = append(periods, model.OpeningPeriod{Day: day, OpenHour: open, CloseHour: close})
			}
			cand.OpeningHours = &model.OpeningHours{Periods: periods}
		}

		// A small slice of closed venues verifies the status filter.
		if rng.Float64() < 0.05 {
			cand.BusinessStatus = model.StatusClosedTemporarily
		}

		out = append(out, cand)
	}

	c.Load(cityID, out)
}
