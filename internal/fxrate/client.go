// Package fxrate fetches daily mid-market exchange rates from the
// Frankfurter API. It is the service's only external I/O boundary.
package fxrate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ProviderName identifies the upstream in responses.
const ProviderName = "Frankfurter"

// DefaultBaseURL is the public Frankfurter daily-rates endpoint.
const DefaultBaseURL = "https://api.frankfurter.dev/v1"

var (
	// ErrUpstream marks a non-success status from the rate provider.
	ErrUpstream = errors.New("fx provider returned an error status")
	// ErrPayload marks a success response whose body carries no usable rate.
	ErrPayload = errors.New("fx provider payload has no usable rate")
)

// Snapshot is one daily exchange-rate observation.
type Snapshot struct {
	Rate     float64 `json:"rate"`
	Date     string  `json:"date"`
	Provider string  `json:"provider"`
}

// Source is anything that can produce a daily rate for a currency pair.
type Source interface {
	Latest(ctx context.Context, from, to string) (Snapshot, error)
}

// Client talks to the upstream over plain HTTP. Every call is a fresh
// upstream fetch; there is no caching and no retry.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

// Latest fetches the daily rate from one unit of from into to.
func (c *Client) Latest(ctx context.Context, from, to string) (Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	endpoint := fmt.Sprintf("%s/latest?base=%s&symbols=%s",
		c.baseURL, url.QueryEscape(from), url.QueryEscape(to))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Snapshot{}, fmt.Errorf("build fx request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Snapshot{}, fmt.Errorf("fetch daily rate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Snapshot{}, fmt.Errorf("%w: %s %s -> %d", ErrUpstream, from, to, resp.StatusCode)
	}

	var payload struct {
		Rates map[string]float64 `json:"rates"`
		Date  string             `json:"date"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Snapshot{}, fmt.Errorf("decode daily rate: %w", err)
	}

	rate, ok := payload.Rates[to]
	if !ok || math.IsNaN(rate) || rate <= 0 {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrPayload, to)
	}

	return Snapshot{Rate: rate, Date: payload.Date, Provider: ProviderName}, nil
}
