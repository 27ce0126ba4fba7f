package entitlement

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/sony/gobreaker"

	"github.com/Imsleepyyy/MonitoRSS/pkg/domain"
)

// Client fetches benefit records from the entitlement service. Calls go
// through a circuit breaker so a dead entitlement backend fails fast instead
// of stalling every dispatch pass on timeouts.
type Client struct {
	endpoint string
	client   *http.Client
	breaker  *gobreaker.CircuitBreaker
}

// New creates an entitlement client for the given endpoint
func New(endpoint string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	settings := gobreaker.Settings{
		Name:        "entitlements",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			lgr.Printf("[WARN] %s circuit breaker %s -> %s", name, from, to)
		},
	}

	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		breaker:  gobreaker.NewCircuitBreaker(settings),
	}
}

// AllBenefits returns the current benefit record for every known account
func (c *Client) AllBenefits(ctx context.Context) ([]domain.Benefit, error) {
	res, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("get benefits: %w", err)
	}
	return res.([]domain.Benefit), nil
}

func (c *Client) fetch(ctx context.Context) ([]domain.Benefit, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/v1/benefits", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("make request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var body struct {
		Data []domain.Benefit `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode benefits: %w", err)
	}
	return body.Data, nil
}
