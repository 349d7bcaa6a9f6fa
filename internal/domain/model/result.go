package model

// ScoredCandidate pairs a candidate with its final score. Scores are
// comparable only within one category and one request; some categories
// intentionally let price sub-scores push the total past 1.
type ScoredCandidate struct {
	Candidate Candidate `json:"candidate"`
	Score     float64   `json:"score"`
}

// PaginationParams carries the caller's page request. Zero values mean
// "use defaults"; out-of-range values are clamped, never rejected.
type PaginationParams struct {
	Page     int `json:"page,omitempty"`
	PageSize int `json:"page_size,omitempty"`
}

// Page is one navigable slice of a scored result set.
// Invariant: Page is always inside [1, TotalPages]; an empty result has
// Total=0, TotalPages=1, Page=1.
type Page struct {
	Items           []ScoredCandidate `json:"items"`
	Total           int               `json:"total"`
	Page            int               `json:"page"`
	PageSize        int               `json:"page_size"`
	TotalPages      int               `json:"total_pages"`
	HasNextPage     bool              `json:"has_next_page"`
	HasPreviousPage bool              `json:"has_previous_page"`
}
