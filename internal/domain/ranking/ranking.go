// Package ranking turns a scored candidate set into deliverable output:
// threshold filtering, deterministic ordering, and TopN truncation or
// pagination.
package ranking

import (
	"sort"

	"github.com/okian/roam/internal/domain/model"
)

// Rank drops candidates whose score is at or below threshold and sorts
// the rest by score descending. Equal scores order by candidate ID
// ascending so paginated output is reproducible across runs.
func Rank(scored []model.ScoredCandidate, threshold float64) []model.ScoredCandidate {
	out := make([]model.ScoredCandidate, 0, len(scored))
	for _, s := range scored {
		if s.Score > threshold {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Candidate.ID < out[j].Candidate.ID
	})
	return out
}

// TopN truncates a ranked slice to at most n entries.
func TopN(ranked []model.ScoredCandidate, n int) []model.ScoredCandidate {
	if n < 0 {
		n = 0
	}
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Paginate slices a ranked set into one page. Out-of-range input is
// self-healed: page clamps into [1, totalPages], pageSize below 1
// falls back to defaultSize. An empty set yields total=0, totalPages=1,
// page=1 with no items.
func Paginate(ranked []model.ScoredCandidate, page, pageSize, defaultSize int) model.Page {
	if pageSize < 1 {
		pageSize = defaultSize
	}
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(ranked)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return model.Page{
		Items:           ranked[start:end],
		Total:           total,
		Page:            page,
		PageSize:        pageSize,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}
