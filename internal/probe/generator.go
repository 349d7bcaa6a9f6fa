package probe

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/okian/roam/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	maxProbePage       = 8
	maxProbePageSize   = 60
)

// Candidate pools for randomized contexts.
var (
	probeInterests = []string{
		"outdoors", "arts", "history", "entertainment", "photography", "food",
	}
	probeBudgets    = []string{"", "budget", "moderate", "luxury"}
	probeCrowds     = []string{"", "popular", "hidden", "mixed"}
	probePhases     = []string{"", "planning", "active"}
	probeStartTimes = []string{"", "early", "mid", "late"}
)

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// getRandomInt returns a random int in [0, limit).
func getRandomInt(limit int) int {
	if limit <= 0 {
		return 0
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(limit)))
	return int(n.Int64())
}

// pick returns a random element from the pool.
func pick(pool []string) string {
	return pool[getRandomInt(len(pool))]
}

// generateRequests builds randomized recommendation requests spread
// across the given categories and cities. Each request gets an
// independently randomized context so a run exercises many corners of
// the scoring surface.
func generateRequests(ctx context.Context, config *Config, categories []string, stats *Stats) ([]Request, error) {
	logger.Get().Info(ctx, "generating probe requests",
		logger.Int("requests", config.Requests),
		logger.Int("categories", len(categories)),
		logger.Int("cities", len(config.Cities)))

	requests := make([]Request, config.Requests)
	for i := range requests {
		requests[i] = generateSingleRequest(categories, config.Cities)
	}

	stats.RequestsGenerated = len(requests)
	return requests, nil
}

// generateSingleRequest builds one randomized request.
func generateSingleRequest(categories, cities []string) Request {
	req := Request{
		Category: categories[getRandomInt(len(categories))],
		CityID:   cities[getRandomInt(len(cities))],
		Context:  generateContext(),
	}

	// Paged categories honor pagination, top-N categories ignore it,
	// so every request can carry one safely.
	req.Pagination = Pagination{
		Page:     1 + getRandomInt(maxProbePage),
		PageSize: 1 + getRandomInt(maxProbePageSize),
	}
	return req
}

// generateContext builds one randomized scoring context.
func generateContext() RawContext {
	rc := RawContext{
		Budget:             pick(probeBudgets),
		CrowdPreference:    pick(probeCrowds),
		Phase:              pick(probePhases),
		PreferredStartTime: pick(probeStartTimes),
	}

	// Roughly half the requests declare an energy level.
	if getRandomFloat() < 0.5 {
		rc.EnergyLevel = 1 + getRandomInt(3)
	}

	// One to three interests, duplicates allowed by the schema.
	numInterests := getRandomInt(4)
	for i := 0; i < numInterests; i++ {
		rc.Interests = append(rc.Interests, pick(probeInterests))
	}

	// A third of requests carry a point reference near the city center
	// the server seeded. Offsets stay within a few kilometers.
	if getRandomFloat() < 0.33 {
		rc.Location = &RawLocationContext{
			Kind: "current_location",
			Reference: &RawPoint{
				Lat: 38.72 + (getRandomFloat()-0.5)*0.05,
				Lng: -9.14 + (getRandomFloat()-0.5)*0.05,
			},
		}
	}
	return rc
}
