package probe

import (
	"encoding/json"
	"log"
)

// verifyResponse decodes a successful response body and checks the
// ordering and pagination guarantees the service advertises.
func verifyResponse(req Request, body []byte) outcome {
	var paged PagedResponse
	if err := json.Unmarshal(body, &paged); err != nil {
		return outcome{failed: true, err: err}
	}

	// Top-N responses carry items only; every pagination field decodes
	// to its zero value so TotalPages distinguishes the two shapes.
	isPaged := paged.TotalPages > 0

	var out outcome
	if !verifyOrdering(paged.Items) {
		out.orderingViolated = true
	}
	if len(paged.Items) == 0 {
		out.emptyResult = true
	}
	if isPaged && !verifyPageMath(paged) {
		out.paginationViolated = true
	}
	return out
}

// verifyOrdering checks items are sorted by score descending with ties
// broken by candidate ID ascending.
func verifyOrdering(items []Item) bool {
	for i := 1; i < len(items); i++ {
		prev, cur := items[i-1], items[i]
		if cur.Score > prev.Score {
			return false
		}
		if cur.Score == prev.Score && cur.Candidate.ID < prev.Candidate.ID {
			return false
		}
	}
	return true
}

// verifyPageMath checks the page envelope is internally consistent.
func verifyPageMath(p PagedResponse) bool {
	if p.Page < 1 || p.PageSize < 1 || p.TotalPages < 1 {
		return false
	}
	if p.Page > p.TotalPages {
		return false
	}
	if len(p.Items) > p.PageSize {
		return false
	}
	if p.Total == 0 && (p.TotalPages != 1 || p.Page != 1 || len(p.Items) != 0) {
		return false
	}
	if p.HasNextPage != (p.Page < p.TotalPages) {
		return false
	}
	if p.HasPreviousPage != (p.Page > 1) {
		return false
	}
	// Only the final page may come up short.
	if p.Page < p.TotalPages && len(p.Items) != p.PageSize {
		return false
	}
	return true
}

// displayFinalVerdict summarizes what the run found.
func displayFinalVerdict(stats *Stats) {
	if stats.OrderingViolations == 0 && stats.PaginationViolations == 0 {
		log.Println("✅ All responses satisfied ordering and pagination guarantees")
		return
	}
	log.Printf("❌ Violations found: %d ordering, %d pagination",
		stats.OrderingViolations, stats.PaginationViolations)
}
