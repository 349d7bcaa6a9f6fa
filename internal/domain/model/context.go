package model

// Budget captures the traveler's spending appetite.
type Budget string

// Budgets.
const (
	BudgetLow      Budget = "budget"
	BudgetModerate Budget = "moderate"
	BudgetLuxury   Budget = "luxury"
)

// CrowdPreference captures how touristy the traveler wants venues to be.
type CrowdPreference string

// Crowd preferences.
const (
	CrowdPopular CrowdPreference = "popular"
	CrowdHidden  CrowdPreference = "hidden"
	CrowdMixed   CrowdPreference = "mixed"
)

// EnergyLevel is the traveler's activity intensity, 1 (low) to 3 (high).
// Zero means unspecified.
type EnergyLevel int

// Energy levels.
const (
	EnergyLow      EnergyLevel = 1
	EnergyModerate EnergyLevel = 2
	EnergyHigh     EnergyLevel = 3
)

// TripPhase tells the engine whether the trip is being planned or is
// currently underway; live opening-hour penalties apply only when active.
type TripPhase string

// Trip phases.
const (
	PhasePlanning TripPhase = "planning"
	PhaseActive   TripPhase = "active"
)

// StartTimeBucket buckets the preferred day start.
type StartTimeBucket string

// Start-time buckets.
const (
	StartEarly StartTimeBucket = "early"
	StartMid   StartTimeBucket = "mid"
	StartLate  StartTimeBucket = "late"
)

// LocationContextKind selects the reference frame for location scoring.
type LocationContextKind string

// Location context kinds.
const (
	LocationCityCenter      LocationContextKind = "city_center"
	LocationCurrentPosition LocationContextKind = "current_location"
	LocationActivityCluster LocationContextKind = "activity_cluster"
)

// GeoPoint is a bare coordinate pair.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ActivityCluster is an ephemeral geographic grouping derived from the
// traveler's already-selected activities. Never persisted.
type ActivityCluster struct {
	Center       GeoPoint `json:"center"`
	RadiusMeters float64  `json:"radius_meters"`
}

// LocationContext is a tagged union: for city_center and
// current_location the Reference point is set; for activity_cluster the
// Clusters slice is set. A zero value means no location context.
type LocationContext struct {
	Kind      LocationContextKind `json:"kind,omitempty"`
	Reference *GeoPoint           `json:"reference,omitempty"`
	Clusters  []ActivityCluster   `json:"clusters,omitempty"`
}

// CuisinePreferences splits cuisines into wanted and unwanted sets.
type CuisinePreferences struct {
	Preferred []string `json:"preferred,omitempty"`
	Avoided   []string `json:"avoided,omitempty"`
}

// ScoringContext is the per-request preference profile. Constructed by
// the caller and read-only to the engine; absent fields fall back to
// each sub-score's neutral default instead of erroring.
type ScoringContext struct {
	Budget               Budget             `json:"budget,omitempty"`
	Interests            []string           `json:"interests,omitempty"`
	TransportPreferences []string           `json:"transport_preferences,omitempty"`
	CrowdPreference      CrowdPreference    `json:"crowd_preference,omitempty"`
	EnergyLevel          EnergyLevel        `json:"energy_level,omitempty"`
	DietaryRestrictions  []string           `json:"dietary_restrictions,omitempty"`
	CuisinePreferences   CuisinePreferences `json:"cuisine_preferences,omitempty"`
	Location             LocationContext    `json:"location,omitempty"`
	// SelectedActivities feeds cluster derivation only.
	SelectedActivities []GeoPoint      `json:"selected_activities,omitempty"`
	PreferredStartTime StartTimeBucket `json:"preferred_start_time,omitempty"`
	Phase              TripPhase       `json:"phase,omitempty"`
}

// HasInterest reports whether tag is among the declared interests.
func (c ScoringContext) HasInterest(tag string) bool {
	for _, t := range c.Interests {
		if t == tag {
			return true
		}
	}
	return false
}
