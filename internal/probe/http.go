package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// HTTPClient wraps http.Client with timeout.
type HTTPClient struct {
	client  *http.Client
	timeout time.Duration
}

// newHTTPClient creates a new HTTP client with timeout.
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

// Get performs a GET request.
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with JSON body.
func (c *HTTPClient) Post(ctx context.Context, url string, body interface{}) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// readResponseBody reads and closes the response body.
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// fireRequests submits probe requests concurrently using a worker pool
// and verifies each response as it arrives.
func fireRequests(ctx context.Context, config *Config, requests []Request, stats *Stats) error {
	log.Printf("📤 Firing %d requests with %d workers...", len(requests), config.Workers)

	client := newHTTPClient(config.Timeout)

	var (
		sent       int64
		succeeded  int64
		failed     int64
		ordering   int64
		pagination int64
		empty      int64
	)

	var lastReport time.Time
	reportInterval := 1 * time.Second

	requestChan := make(chan Request, config.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			for req := range requestChan {
				select {
				case <-ctx.Done():
					return
				default:
					outcome := fireSingleRequest(ctx, client, config.BaseURL, req)

					atomic.AddInt64(&sent, 1)
					if outcome.failed {
						atomic.AddInt64(&failed, 1)
						if config.Verbose {
							log.Printf("⚠️  Request failed (%s/%s): %v", req.Category, req.CityID, outcome.err)
						}
					} else {
						atomic.AddInt64(&succeeded, 1)
					}
					if outcome.orderingViolated {
						atomic.AddInt64(&ordering, 1)
					}
					if outcome.paginationViolated {
						atomic.AddInt64(&pagination, 1)
					}
					if outcome.emptyResult {
						atomic.AddInt64(&empty, 1)
					}

					if time.Since(lastReport) >= reportInterval {
						lastReport = time.Now()
						total := atomic.LoadInt64(&sent)
						succ := atomic.LoadInt64(&succeeded)
						fail := atomic.LoadInt64(&failed)
						if config.Verbose {
							log.Printf("📊 Progress: %d/%d sent (succeeded: %d, failed: %d)",
								total, len(requests), succ, fail)
						} else {
							fmt.Printf("\r📤 Sent: %d/%d (succeeded: %d, failed: %d)",
								total, len(requests), succ, fail)
						}
					}
				}
			}
		}(i)
	}

	go func() {
		defer close(requestChan)
		for _, req := range requests {
			select {
			case <-ctx.Done():
				return
			case requestChan <- req:
			}
		}
	}()

	wg.Wait()

	if !config.Verbose {
		fmt.Println()
	}

	stats.RequestsSent = int(atomic.LoadInt64(&sent))
	stats.RequestsSucceeded = int(atomic.LoadInt64(&succeeded))
	stats.RequestsFailed = int(atomic.LoadInt64(&failed))
	stats.OrderingViolations = int(atomic.LoadInt64(&ordering))
	stats.PaginationViolations = int(atomic.LoadInt64(&pagination))
	stats.EmptyResults = int(atomic.LoadInt64(&empty))

	log.Printf(`✅ Request firing completed:
   Succeeded: %d
   Failed: %d
   Ordering violations: %d
   Pagination violations: %d
`, stats.RequestsSucceeded, stats.RequestsFailed, stats.OrderingViolations, stats.PaginationViolations)

	return nil
}

// outcome captures everything observed about one request.
type outcome struct {
	failed             bool
	err                error
	orderingViolated   bool
	paginationViolated bool
	emptyResult        bool
}

// fireSingleRequest posts one request and verifies the response shape
// it gets back.
func fireSingleRequest(ctx context.Context, client *HTTPClient, baseURL string, req Request) outcome {
	url := baseURL + "/recommendations/" + req.Category

	resp, err := client.Post(ctx, url, req)
	if err != nil {
		return outcome{failed: true, err: err}
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return outcome{failed: true, err: err}
	}

	if resp.StatusCode != StatusOK {
		return outcome{failed: true, err: fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))}
	}

	return verifyResponse(req, body)
}
