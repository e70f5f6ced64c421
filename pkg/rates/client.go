package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Provider endpoints of the open exchange-rate dataset the engine ships
// against. The API serves one JSON document per base currency:
// GET <base>/<from>.json -> {"date": "...", "<from>": {"<to>": rate, ...}}.
const (
	DefaultPrimaryURL  = "https://cdn.jsdelivr.net/npm/@fawazahmed0/currency-api@latest/v1/currencies/"
	DefaultFallbackURL = "https://currency-api.pages.dev/v1/currencies/"
)

// Client fetches exchange rates over HTTP. Every request is tried
// against the primary endpoint first and retried once against the
// fallback on any failure (network error or non-2xx status).
type Client struct {
	httpClient  *http.Client
	primaryURL  string
	fallbackURL string
}

// ClientOption configures the rate client.
type ClientOption func(*Client)

// WithHTTPClient sets the underlying HTTP client.
// Default: a client with a 10-second timeout.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		if c != nil {
			cl.httpClient = c
		}
	}
}

// WithEndpoints overrides the primary and fallback provider URLs.
// Either may be empty to keep its default.
func WithEndpoints(primary, fallback string) ClientOption {
	return func(cl *Client) {
		if primary != "" {
			cl.primaryURL = primary
		}
		if fallback != "" {
			cl.fallbackURL = fallback
		}
	}
}

// NewClient creates a rate-provider client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		primaryURL:  DefaultPrimaryURL,
		fallbackURL: DefaultFallbackURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Rate fetches the exchange rate from one currency to another. Currency
// codes are case-insensitive. Returns ErrUnavailable when both endpoints
// fail, ErrUnknownPair when the provider has no rate for the pair.
func (c *Client) Rate(ctx context.Context, from, to string) (float64, error) {
	from = strings.ToLower(from)
	to = strings.ToLower(to)

	table, err := c.fetch(ctx, c.primaryURL, from)
	if err != nil {
		table, err = c.fetch(ctx, c.fallbackURL, from)
	}
	if err != nil {
		return 0, errors.Join(ErrUnavailable, err)
	}

	rate, ok := table[to]
	if !ok {
		return 0, fmt.Errorf("%w: %s->%s", ErrUnknownPair, from, to)
	}
	return rate, nil
}

// fetch retrieves the full rate table for a base currency from one endpoint.
func (c *Client) fetch(ctx context.Context, baseURL, from string) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+from+".json", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("rates: unexpected status %d from %s", resp.StatusCode, baseURL)
	}

	// The payload nests the rate table under the base currency code,
	// alongside a "date" field we do not need.
	var payload map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	raw, ok := payload[from]
	if !ok {
		return nil, fmt.Errorf("rates: response missing %q table", from)
	}

	var table map[string]float64
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, err
	}
	return table, nil
}
