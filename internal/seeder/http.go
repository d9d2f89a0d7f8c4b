package seeder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
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
func (c *HTTPClient) Get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with JSON body.
func (c *HTTPClient) Post(ctx context.Context, rawURL string, body interface{}) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewBuffer(jsonData))
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

// postCommand posts body to path and reports whether the service accepted
// the command.
func postCommand(ctx context.Context, client *HTTPClient, baseURL, path string, body interface{}) error {
	resp, err := client.Post(ctx, baseURL+path, body)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	data, err := readResponseBody(resp)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}
	return nil
}

// submitGrades submits grades concurrently using a worker pool.
func submitGrades(ctx context.Context, config *Config, grades []GradePlan, stats *Stats) error {
	log.Printf("submitting %d grades with %d workers...", len(grades), config.Workers)

	client := newHTTPClient(config.Timeout)

	var (
		successful int64
		failed     int64
		submitted  int64
	)

	gradeChan := make(chan GradePlan, config.Workers*2)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for grade := range gradeChan {
				select {
				case <-ctx.Done():
					return
				default:
					err := postCommand(ctx, client, config.BaseURL, "/grades", grade)

					atomic.AddInt64(&submitted, 1)
					if err != nil {
						atomic.AddInt64(&failed, 1)
						if config.Verbose {
							log.Printf("grade failed for %s in %s: %v", grade.PersonName, grade.GroupName, err)
						}
					} else {
						atomic.AddInt64(&successful, 1)
					}
				}
			}
		}()
	}

	go func() {
		defer close(gradeChan)
		for _, grade := range grades {
			select {
			case <-ctx.Done():
				return
			case gradeChan <- grade:
			}
		}
	}()

	wg.Wait()

	stats.GradesSubmitted = int(atomic.LoadInt64(&submitted))
	stats.GradesSuccessful = int(atomic.LoadInt64(&successful))
	stats.GradesFailed = int(atomic.LoadInt64(&failed))

	log.Printf("grade submission completed: successful=%d failed=%d",
		stats.GradesSuccessful, stats.GradesFailed)

	return nil
}

// fetchStandings retrieves the top entries for one group and assignment.
func fetchStandings(ctx context.Context, client *HTTPClient, config *Config, groupName string) ([]Entry, error) {
	path := "/standings/" + url.PathEscape(groupName) + "/" + url.PathEscape(config.Assignment)
	if config.TopN > 0 {
		path += "?limit=" + strconv.Itoa(config.TopN)
	}

	resp, err := client.Get(ctx, config.BaseURL+path)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	data, err := readResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}

	var sr standingsResponse
	if err := json.Unmarshal(data, &sr); err != nil {
		return nil, fmt.Errorf("failed to decode standings: %w", err)
	}
	return sr.Entries, nil
}
