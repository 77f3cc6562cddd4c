// Package analysis submits merged telemetry to the AI analysis sink and
// passes its report back untouched.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"openf1-service/internal/observability"
)

// DefaultTimeout bounds one analysis call. Report generation is slow
// compared to the data API.
const DefaultTimeout = 60 * time.Second

const secretHeader = "X-Internal-Secret"

// UnavailableError reports a failed analysis call. Status is the sink's
// HTTP status, 0 when the request never completed.
type UnavailableError struct {
	Status int
	Err    error
}

func (e *UnavailableError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("analysis sink: status %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("analysis sink: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// Client calls the AI analysis sink over a synchronous request/response
// exchange authenticated by a shared secret.
type Client struct {
	baseURL string
	secret  string
	client  *http.Client
}

// Option configures Client.
type Option func(*Client)

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

// NewClient creates a new analysis sink client.
func NewClient(baseURL, secret string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		secret:  secret,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Analyze posts the telemetry document and returns the sink's report as a
// semi-structured value. The report shape is the sink's business; only the
// success of the call and that the body is a JSON object are validated
// here. Every failure, including a 404 from the sink, means the analysis
// feature is down and is reported as UnavailableError.
func (c *Client) Analyze(ctx context.Context, document interface{}) (map[string]interface{}, error) {
	body, err := json.Marshal(document)
	if err != nil {
		return nil, &UnavailableError{Err: fmt.Errorf("marshal document: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, &UnavailableError{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(secretHeader, c.secret)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		observability.RecordAnalysisRequest("error", time.Since(start).Seconds())
		return nil, &UnavailableError{Err: fmt.Errorf("http request: %w", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		observability.RecordAnalysisRequest("error", time.Since(start).Seconds())
		return nil, &UnavailableError{Status: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		observability.RecordAnalysisRequest(fmt.Sprintf("%d", resp.StatusCode), time.Since(start).Seconds())
		return nil, &UnavailableError{Status: resp.StatusCode, Err: fmt.Errorf("unexpected status: %s", string(respBody))}
	}

	var report map[string]interface{}
	if err := json.Unmarshal(respBody, &report); err != nil {
		observability.RecordAnalysisRequest("error", time.Since(start).Seconds())
		return nil, &UnavailableError{Status: resp.StatusCode, Err: fmt.Errorf("unmarshal report: %w", err)}
	}

	observability.RecordAnalysisRequest("200", time.Since(start).Seconds())
	return report, nil
}
