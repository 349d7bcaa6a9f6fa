// Package dedupe collapses duplicate candidates when category pools overlap.
package dedupe

import (
	"github.com/okian/roam/internal/domain/model"
)

// Merge concatenates the given candidate pools, dropping candidates
// whose ID already appeared in an earlier pool. A venue tagged with
// place types from two categories shows up in both fetches; scoring it
// twice would let it occupy two result slots. First occurrence wins,
// input order is preserved.
func Merge(pools ...[]model.Candidate) []model.Candidate {
	total := 0
	for _, p := range pools {
		total += len(p)
	}
	if total == 0 {
		return nil
	}

	seen := make(map[string]struct{}, total)
	merged := make([]model.Candidate, 0, total)
	for _, pool := range pools {
		for _, c := range pool {
			if _, dup := seen[c.ID]; dup {
				continue
			}
			seen[c.ID] = struct{}{}
			merged = append(merged, c)
		}
	}
	return merged
}
