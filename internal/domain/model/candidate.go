// Package model contains domain models passed between layers.
package model

// PriceLevel mirrors the upstream place-catalog price buckets.
type PriceLevel string

// Price levels, cheapest to most expensive.
const (
	PriceUnspecified   PriceLevel = "UNSPECIFIED"
	PriceFree          PriceLevel = "FREE"
	PriceInexpensive   PriceLevel = "INEXPENSIVE"
	PriceModerate      PriceLevel = "MODERATE"
	PriceExpensive     PriceLevel = "EXPENSIVE"
	PriceVeryExpensive PriceLevel = "VERY_EXPENSIVE"
)

// RatingTier is the pre-bucketed quality tier derived upstream from the
// raw numeric rating.
type RatingTier string

// Rating tiers.
const (
	RatingLow         RatingTier = "LOW"
	RatingAverage     RatingTier = "AVERAGE"
	RatingHigh        RatingTier = "HIGH"
	RatingExceptional RatingTier = "EXCEPTIONAL"
)

// ReviewCountTier is the pre-bucketed popularity tier derived upstream
// from the raw review count.
type ReviewCountTier string

// Review-count tiers.
const (
	ReviewsLow      ReviewCountTier = "LOW"
	ReviewsModerate ReviewCountTier = "MODERATE"
	ReviewsHigh     ReviewCountTier = "HIGH"
	ReviewsVeryHigh ReviewCountTier = "VERY_HIGH"
)

// BusinessStatus reports whether a venue is operating.
type BusinessStatus string

// Business statuses.
const (
	StatusOperational       BusinessStatus = "OPERATIONAL"
	StatusClosedTemporarily BusinessStatus = "CLOSED_TEMPORARILY"
	StatusClosedPermanently BusinessStatus = "CLOSED_PERMANENTLY"
)

// Location is a candidate's geographic position plus display fields.
type Location struct {
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	Address      string  `json:"address,omitempty"`
	Neighborhood string  `json:"neighborhood,omitempty"`
}

// OpeningPeriod describes one open window on a given weekday.
// Hours are 0-23 local time; Day follows time.Weekday numbering.
type OpeningPeriod struct {
	Day       int `json:"day"`
	OpenHour  int `json:"open_hour"`
	CloseHour int `json:"close_hour"`
}

// OpeningHours carries the weekly schedule plus optional live state.
// Live fields are only populated during an active trip.
type OpeningHours struct {
	Periods []OpeningPeriod `json:"periods,omitempty"`
	// OpenNow and NextCloseInMinutes come from a live lookup and may be absent.
	OpenNow            *bool `json:"open_now,omitempty"`
	NextCloseInMinutes *int  `json:"next_close_in_minutes,omitempty"`
}

// Candidate is a point-of-interest record eligible for recommendation.
// Immutable for the duration of a scoring pass; owned by the catalog.
type Candidate struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	PlaceTypes           []string        `json:"place_types"`
	PrimaryType          string          `json:"primary_type"`
	Rating               float64         `json:"rating"`
	RatingTier           RatingTier      `json:"rating_tier"`
	ReviewCount          int             `json:"review_count"`
	ReviewCountTier      ReviewCountTier `json:"review_count_tier"`
	PriceLevel           PriceLevel      `json:"price_level"`
	MustSee              bool            `json:"must_see"`
	TouristAttraction    bool            `json:"tourist_attraction"`
	BusinessStatus       BusinessStatus  `json:"business_status"`
	Location             Location        `json:"location"`
	OpeningHours         *OpeningHours   `json:"opening_hours,omitempty"`
	DurationMinutes      int             `json:"duration_minutes,omitempty"`
	SeasonalAvailability string          `json:"seasonal_availability,omitempty"`
	Description          string          `json:"description,omitempty"`
}

// HasPlaceType reports whether t appears in the candidate's place types.
func (c Candidate) HasPlaceType(t string) bool {
	for _, pt := range c.PlaceTypes {
		if pt == t {
			return true
		}
	}
	return false
}
