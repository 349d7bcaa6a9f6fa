package probe

import "time"

// Config holds configuration for a probe run against a live service.
type Config struct {
	BaseURL    string        // Base URL of the service
	Requests   int           // Number of recommendation requests to fire
	Workers    int           // Number of concurrent workers
	Timeout    time.Duration // HTTP request timeout
	Cities  []string // City IDs to probe
	LogFile string   // Log file for probe output
	Verbose bool     // Enable verbose logging
}

// Request is one randomized recommendation request, together with the
// category it targets. Category rides outside the payload because it
// is a path parameter on the wire.
type Request struct {
	Category   string     `json:"-"`
	CityID     string     `json:"city_id"`
	Context    RawContext `json:"context"`
	Pagination Pagination `json:"pagination"`
}

// RawContext is the wire shape of a scoring context. The probe builds
// it loosely typed so it can also emit edge-case payloads.
type RawContext struct {
	Interests          []string            `json:"interests,omitempty"`
	Budget             string              `json:"budget,omitempty"`
	CrowdPreference    string              `json:"crowd_preference,omitempty"`
	EnergyLevel        int                 `json:"energy_level,omitempty"`
	Phase              string              `json:"phase,omitempty"`
	PreferredStartTime string              `json:"preferred_start_time,omitempty"`
	Location           *RawLocationContext `json:"location,omitempty"`
}

// RawLocationContext mirrors the location block of the request schema.
type RawLocationContext struct {
	Kind      string    `json:"kind"`
	Reference *RawPoint `json:"reference,omitempty"`
}

// RawPoint is a wire latitude/longitude pair.
type RawPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Pagination mirrors the pagination block of the request schema.
type Pagination struct {
	Page     int `json:"page,omitempty"`
	PageSize int `json:"page_size,omitempty"`
}

// Item is one scored candidate as returned on the wire.
type Item struct {
	Candidate struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"candidate"`
	Score float64 `json:"score"`
}

// PagedResponse is the page-mode response shape.
type PagedResponse struct {
	Items           []Item `json:"items"`
	Total           int    `json:"total"`
	Page            int    `json:"page"`
	PageSize        int    `json:"page_size"`
	TotalPages      int    `json:"total_pages"`
	HasNextPage     bool   `json:"has_next_page"`
	HasPreviousPage bool   `json:"has_previous_page"`
}

// TopNResponse is the flat-list response shape.
type TopNResponse struct {
	Items []Item `json:"items"`
}

// Stats holds probe run statistics.
type Stats struct {
	RequestsGenerated    int
	RequestsSent         int
	RequestsSucceeded    int
	RequestsFailed       int
	OrderingViolations   int
	PaginationViolations int
	EmptyResults         int
	StartTime            time.Time
	EndTime              time.Time
	Duration             time.Duration
}
