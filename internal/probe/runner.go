package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/okian/roam/pkg/logger"
)

// Run executes a complete probe: health check, category discovery,
// randomized request storm, and a for-you pass.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting roam probe",
		logger.String("baseURL", config.BaseURL),
		logger.Int("requests", config.Requests),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.Any("cities", config.Cities),
		logger.Any("verbose", config.Verbose))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Discover categories
	categories, err := fetchCategories(ctx, config)
	if err != nil {
		return fmt.Errorf("category discovery failed: %w", err)
	}

	// Step 3: Generate randomized requests
	requests, err := generateRequests(ctx, config, categories, stats)
	if err != nil {
		return fmt.Errorf("request generation failed: %w", err)
	}

	// Step 4: Fire requests concurrently, verifying responses inline
	if err := fireRequests(ctx, config, requests, stats); err != nil {
		return fmt.Errorf("request firing failed: %w", err)
	}

	// Step 5: One for-you request per city
	if err := probeForYou(ctx, config, stats); err != nil {
		return fmt.Errorf("for-you probe failed: %w", err)
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)
	displayFinalVerdict(stats)

	if stats.OrderingViolations > 0 || stats.PaginationViolations > 0 {
		return fmt.Errorf("probe found %d ordering and %d pagination violations",
			stats.OrderingViolations, stats.PaginationViolations)
	}

	logger.Get().Info(ctx, "probe completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/healthz"

	resp, err := client.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// fetchCategories asks the service which category identifiers it serves.
func fetchCategories(ctx context.Context, config *Config) ([]string, error) {
	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/categories"

	resp, err := client.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	var payload struct {
		Categories []string `json:"categories"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(payload.Categories) == 0 {
		return nil, fmt.Errorf("service reported no categories")
	}

	logger.Get().Info(ctx, "discovered categories", logger.Int("count", len(payload.Categories)))
	return payload.Categories, nil
}

// probeForYou fires one blended request per city and verifies ordering.
func probeForYou(ctx context.Context, config *Config, stats *Stats) error {
	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/recommendations/for-you"

	for _, city := range config.Cities {
		req := Request{
			CityID:  city,
			Context: generateContext(),
		}

		resp, err := client.Post(ctx, url, req)
		if err != nil {
			stats.RequestsFailed++
			continue
		}
		body, err := readResponseBody(resp)
		if err != nil || resp.StatusCode != StatusOK {
			stats.RequestsFailed++
			continue
		}

		var topN TopNResponse
		if err := json.Unmarshal(body, &topN); err != nil {
			stats.RequestsFailed++
			continue
		}

		stats.RequestsSent++
		stats.RequestsSucceeded++
		if !verifyOrdering(topN.Items) {
			stats.OrderingViolations++
		}
	}
	return nil
}

// displayFinalStats prints the final probe statistics.
func displayFinalStats(stats *Stats) {
	var successRate, requestsPerSecond float64

	if stats.RequestsSent > 0 {
		successRate = float64(stats.RequestsSucceeded) / float64(stats.RequestsSent) * PercentageMultiplier
	}
	if stats.Duration > 0 {
		requestsPerSecond = float64(stats.RequestsSent) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("requestsGenerated", stats.RequestsGenerated),
		logger.Int("requestsSent", stats.RequestsSent),
		logger.Int("requestsSucceeded", stats.RequestsSucceeded),
		logger.Int("requestsFailed", stats.RequestsFailed),
		logger.Int("orderingViolations", stats.OrderingViolations),
		logger.Int("paginationViolations", stats.PaginationViolations),
		logger.Int("emptyResults", stats.EmptyResults),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("requestsPerSecond", requestsPerSecond))
}
