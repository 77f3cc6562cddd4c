package openf1

import "fmt"

// APIError reports a failed OpenF1 request with the endpoint and query that
// produced it, so callers can diagnose without retry logic of their own.
type APIError struct {
	Endpoint string // API path, e.g. "/laps"
	Query    string // encoded query string
	Status   int    // upstream HTTP status, 0 when the request never completed
	Err      error
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("openf1 %s?%s: status %d: %v", e.Endpoint, e.Query, e.Status, e.Err)
	}
	return fmt.Sprintf("openf1 %s?%s: %v", e.Endpoint, e.Query, e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }
