// Package openf1 is a read-only HTTP client for the public OpenF1 API.
package openf1

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"openf1-service/internal/observability"
)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.openf1.org/v1"
	DefaultTimeout = 15 * time.Second
)

// SessionLatest selects the most recent session in collection queries that
// accept a session key.
const SessionLatest = "latest"

// Client issues parameterized read requests against the OpenF1 API. It
// performs a single attempt per call; retry and backoff policy, if any,
// belongs to the transport wrapping it.
type Client struct {
	baseURL string
	client  *http.Client
}

// Option configures Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a new OpenF1 API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get fetches one collection and decodes it into result.
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	u := c.baseURL + path
	query := params.Encode()
	if query != "" {
		u += "?" + query
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &APIError{Endpoint: path, Query: query, Err: fmt.Errorf("create request: %w", err)}
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		observability.RecordUpstreamRequest(path, "error", time.Since(start).Seconds())
		return &APIError{Endpoint: path, Query: query, Err: fmt.Errorf("http request: %w", err)}
	}
	defer resp.Body.Close()

	observability.RecordUpstreamRequest(path, strconv.Itoa(resp.StatusCode), time.Since(start).Seconds())

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Endpoint: path, Query: query, Status: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{Endpoint: path, Query: query, Status: resp.StatusCode, Err: fmt.Errorf("unexpected status: %s", string(body))}
	}

	if err := json.Unmarshal(body, result); err != nil {
		return &APIError{Endpoint: path, Query: query, Status: resp.StatusCode, Err: fmt.Errorf("unmarshal response: %w", err)}
	}

	return nil
}

// Drivers retrieves the driver list for a session. sessionKey may be
// SessionLatest.
func (c *Client) Drivers(ctx context.Context, sessionKey string) ([]Driver, error) {
	params := url.Values{"session_key": {sessionKey}}
	var drivers []Driver
	if err := c.get(ctx, "/drivers", params, &drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}

// Sessions retrieves session metadata filtered by year and session type.
func (c *Client) Sessions(ctx context.Context, year int, sessionType string) ([]Session, error) {
	params := url.Values{
		"year":         {strconv.Itoa(year)},
		"session_type": {sessionType},
	}
	var sessions []Session
	if err := c.get(ctx, "/sessions", params, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// SessionResults retrieves final classification entries for a driver in a
// session.
func (c *Client) SessionResults(ctx context.Context, sessionKey, driverNumber int) ([]SessionResult, error) {
	var results []SessionResult
	if err := c.get(ctx, "/session_result", driverParams(sessionKey, driverNumber), &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Positions retrieves raw position samples for a driver in a session.
func (c *Client) Positions(ctx context.Context, sessionKey, driverNumber int) ([]Position, error) {
	var positions []Position
	if err := c.get(ctx, "/position", driverParams(sessionKey, driverNumber), &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

// Laps retrieves lap records for a driver in a session.
func (c *Client) Laps(ctx context.Context, sessionKey, driverNumber int) ([]Lap, error) {
	var laps []Lap
	if err := c.get(ctx, "/laps", driverParams(sessionKey, driverNumber), &laps); err != nil {
		return nil, err
	}
	return laps, nil
}

// Stints retrieves tire stints for a driver in a session.
func (c *Client) Stints(ctx context.Context, sessionKey, driverNumber int) ([]Stint, error) {
	var stints []Stint
	if err := c.get(ctx, "/stints", driverParams(sessionKey, driverNumber), &stints); err != nil {
		return nil, err
	}
	return stints, nil
}

// Pits retrieves pit stop records for a driver in a session.
func (c *Client) Pits(ctx context.Context, sessionKey, driverNumber int) ([]Pit, error) {
	var pits []Pit
	if err := c.get(ctx, "/pit", driverParams(sessionKey, driverNumber), &pits); err != nil {
		return nil, err
	}
	return pits, nil
}

// Weather retrieves weather readings for a session. Readings are not
// per-driver.
func (c *Client) Weather(ctx context.Context, sessionKey int) ([]Weather, error) {
	params := url.Values{"session_key": {strconv.Itoa(sessionKey)}}
	var weather []Weather
	if err := c.get(ctx, "/weather", params, &weather); err != nil {
		return nil, err
	}
	return weather, nil
}

func driverParams(sessionKey, driverNumber int) url.Values {
	return url.Values{
		"session_key":   {strconv.Itoa(sessionKey)},
		"driver_number": {strconv.Itoa(driverNumber)},
	}
}
