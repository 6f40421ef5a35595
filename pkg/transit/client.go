package transit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

var baseURL = "http://transport.opendata.ch/v1"

// FetchLimit is the number of connections requested per query. The widget
// over-fetches and lets RenderDepartures cut the list down.
const FetchLimit = 16

const userAgent = "wg-display-widget-public-transport/1.0"

// Doer executes HTTP requests; *http.Client satisfies it
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client interacts with the transport.opendata.ch API
type Client struct {
	httpClient Doer
	logger     *slog.Logger
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient swaps the HTTP collaborator used for all requests.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		c.httpClient = d
	}
}

// WithLogger attaches a structured logger for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ConnectionsURL builds the query for the next connections between two stations
func ConnectionsURL(from, to string) string {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	q.Set("limit", fmt.Sprint(FetchLimit))
	return fmt.Sprintf("%s/connections?%s", baseURL, q.Encode())
}

// get performs a single GET and hands back the body of a 200 response.
// No retries: the host re-runs the widget on its own schedule.
func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("transit request failed", "url", reqURL, "error", err)
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("transit request", "url", reqURL, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	return body, nil
}

// FetchConnections gets the next connections from one station to another
func (c *Client) FetchConnections(ctx context.Context, from, to string) (*ConnectionsResponse, error) {
	body, err := c.get(ctx, ConnectionsURL(from, to))
	if err != nil {
		return nil, err
	}

	var connResp ConnectionsResponse
	if err := json.Unmarshal(body, &connResp); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return &connResp, nil
}

// FetchLocations searches for stations matching a text query
func (c *Client) FetchLocations(ctx context.Context, query string) ([]Location, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("type", "station")
	reqURL := fmt.Sprintf("%s/locations?%s", baseURL, q.Encode())

	body, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var locResp LocationsResponse
	if err := json.Unmarshal(body, &locResp); err != nil {
		return nil, &DecodeError{Err: err}
	}

	// Coordinates-only results come back without a name
	var filtered []Location
	for _, l := range locResp.Stations {
		if l.Name != "" {
			filtered = append(filtered, l)
		}
	}

	return filtered, nil
}
