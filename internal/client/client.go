// Package client is the HTTP fetch layer for the analytics API. Each
// resource has one fetch method performing a single GET; failures come back
// as *FetchError naming the resource. Transformation for display belongs to
// the dashboard package, not here.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"nola/pkg/models"
)

// Resource identifies one independently fetchable unit of server data
type Resource string

const (
	ResourceGeneral  Resource = "general"
	ResourceRevenue  Resource = "revenue"
	ResourceProducts Resource = "products"
	ResourceHourly   Resource = "hourly"
)

// ErrorKind classifies a fetch failure
type ErrorKind string

const (
	ErrorKindNetwork ErrorKind = "network"
	ErrorKindStatus  ErrorKind = "status"
	ErrorKindParse   ErrorKind = "parse"
)

// FetchError is a structured fetch failure carrying the failing resource
// and a kind, so aggregate error selection can work without string matching.
type FetchError struct {
	Resource Resource
	Kind     ErrorKind
	Status   int // HTTP status, zero unless Kind is status
	Err      error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case ErrorKindStatus:
		return fmt.Sprintf("failed to fetch %s: server returned status %d", e.Resource, e.Status)
	case ErrorKindParse:
		return fmt.Sprintf("failed to parse %s response: %v", e.Resource, e.Err)
	default:
		return fmt.Sprintf("failed to fetch %s: %v", e.Resource, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// Endpoints optionally overrides the base URL per resource, for pointing
// individual resources at mock servers in tests.
type Endpoints struct {
	General  string
	Revenue  string
	Products string
	Hourly   string
}

// Config configures the fetch layer. BaseURL is required; everything else
// is optional.
type Config struct {
	BaseURL    string
	Endpoints  Endpoints
	HTTPClient *http.Client
}

// Client fetches dashboard resources from the analytics API
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// New creates a new analytics API client from cfg
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{cfg: cfg, httpClient: httpClient}
}

// baseFor resolves the base URL for a resource, honoring overrides
func (c *Client) baseFor(resource Resource) string {
	var override string
	switch resource {
	case ResourceGeneral:
		override = c.cfg.Endpoints.General
	case ResourceRevenue:
		override = c.cfg.Endpoints.Revenue
	case ResourceProducts:
		override = c.cfg.Endpoints.Products
	case ResourceHourly:
		override = c.cfg.Endpoints.Hourly
	}
	if override != "" {
		return override
	}
	return c.cfg.BaseURL
}

// getJSON performs one GET and decodes the body into out. Non-2xx statuses
// and decode failures become *FetchError; no retries.
func (c *Client) getJSON(ctx context.Context, resource Resource, path string, query url.Values, out interface{}) error {
	u := c.baseFor(resource) + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &FetchError{Resource: resource, Kind: ErrorKindNetwork, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &FetchError{Resource: resource, Kind: ErrorKindNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{Resource: resource, Kind: ErrorKindStatus, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{Resource: resource, Kind: ErrorKindParse, Err: err}
	}

	return nil
}

// FetchGeneralMetrics fetches the general metrics block
func (c *Client) FetchGeneralMetrics(ctx context.Context) (*models.MetricSnapshot, error) {
	var snapshot models.MetricSnapshot
	if err := c.getJSON(ctx, ResourceGeneral, "/api/metrics/general", nil, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// FetchRevenueByPeriod fetches revenue-by-weekday for the given period.
// An empty period omits the query parameter and gets the server default.
func (c *Client) FetchRevenueByPeriod(ctx context.Context, period models.Period) ([]models.RevenuePoint, error) {
	var query url.Values
	if period != "" {
		query = url.Values{"period": []string{string(period)}}
	}
	var points []models.RevenuePoint
	if err := c.getJSON(ctx, ResourceRevenue, "/api/metrics/revenue_period", query, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// FetchTopProducts fetches the top-products ranking
func (c *Client) FetchTopProducts(ctx context.Context) ([]models.ProductEntry, error) {
	var entries []models.ProductEntry
	if err := c.getJSON(ctx, ResourceProducts, "/api/products/top", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// FetchHourlyVolume fetches order volume per hour of day
func (c *Client) FetchHourlyVolume(ctx context.Context) ([]models.HourlyEntry, error) {
	var entries []models.HourlyEntry
	if err := c.getJSON(ctx, ResourceHourly, "/api/sales/hourly", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
