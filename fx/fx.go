// Package fx converts amounts between currencies using the open.er-api.com
// latest-rates endpoint. Every failure mode (network, bad status, bad body,
// unknown currency pair) is reported as "conversion unavailable" rather than
// an error: callers fall back to showing the unconverted price.
package fx

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultEndpoint is the base-currency rates endpoint; the base currency
// code is appended as a path segment.
const DefaultEndpoint = "https://open.er-api.com/v6/latest/"

// Data is one fetched rate table: multiplicative rates relative to a base
// currency, plus the upstream's reported update time.
type Data struct {
	Rates     map[string]float64
	FetchedAt string
}

// Conversion is a successful currency conversion.
type Conversion struct {
	Amount    float64
	Rate      float64
	FetchedAt string
}

// RequestCache holds rate tables for the duration of a single HTTP
// request. Each incoming request gets a fresh cache; concurrent requests
// never share one. The mutex covers only get/put, so two goroutines
// missing on the same base may both fetch and overwrite each other with
// equivalent data, which is harmless.
type RequestCache struct {
	mu      sync.Mutex
	entries map[string]*Data
}

// NewRequestCache creates an empty per-request rate cache.
func NewRequestCache() *RequestCache {
	return &RequestCache{entries: make(map[string]*Data)}
}

func (c *RequestCache) get(base string) (*Data, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[base]
	return data, ok
}

func (c *RequestCache) put(base string, data *Data) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[base] = data
}

// apiResponse is the upstream body shape.
type apiResponse struct {
	Result            string             `json:"result"`
	Rates             map[string]float64 `json:"rates"`
	TimeLastUpdateUTC string             `json:"time_last_update_utc"`
}

// Client fetches and caches exchange rates. Responses are additionally
// cached at process level for a fixed TTL, standing in for the edge cache
// the service sits behind in production.
type Client struct {
	httpClient *http.Client
	endpoint   string
	responses  *gocache.Cache
}

// NewClient creates a rate client. An empty endpoint selects
// DefaultEndpoint; cacheTTL is how long fetched rate tables stay valid in
// the process-level cache.
func NewClient(endpoint string, timeout, cacheTTL time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		responses:  gocache.New(cacheTTL, 10*time.Minute),
	}
}

// Convert converts amount from one currency to another. A same-currency
// conversion short-circuits with rate 1 and no network traffic. Returns nil
// when rates are unavailable for any reason.
func (c *Client) Convert(ctx context.Context, amount float64, from, to string, reqCache *RequestCache) *Conversion {
	source := strings.ToUpper(from)
	target := strings.ToUpper(to)

	if source == target {
		return &Conversion{
			Amount:    amount,
			Rate:      1,
			FetchedAt: time.Now().UTC().Format(time.RFC3339),
		}
	}

	data := c.fxData(ctx, source, reqCache)
	if data == nil {
		return nil
	}
	rate, ok := data.Rates[target]
	if !ok {
		return nil
	}
	return &Conversion{
		Amount:    amount * rate,
		Rate:      rate,
		FetchedAt: data.FetchedAt,
	}
}

// fxData returns the rate table for a base currency, consulting the
// request-scoped cache, then the process-level cache, then the network.
func (c *Client) fxData(ctx context.Context, base string, reqCache *RequestCache) *Data {
	if data, ok := reqCache.get(base); ok {
		return data
	}
	if cached, ok := c.responses.Get(base); ok {
		data := cached.(*Data)
		reqCache.put(base, data)
		return data
	}

	data := c.fetch(ctx, base)
	if data == nil {
		return nil
	}
	reqCache.put(base, data)
	c.responses.Set(base, data, gocache.DefaultExpiration)
	return data
}

func (c *Client) fetch(ctx context.Context, base string) *Data {
	endpoint := c.endpoint + url.PathEscape(base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil
	}
	if body.Result != "success" || body.Rates == nil {
		return nil
	}

	fetchedAt := body.TimeLastUpdateUTC
	if fetchedAt == "" {
		fetchedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return &Data{Rates: body.Rates, FetchedAt: fetchedAt}
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Endpoint returns the configured rates endpoint, mostly for logging.
func (c *Client) Endpoint() string {
	return c.endpoint
}
