package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"openf1-service/internal/analysis"
	"openf1-service/internal/config"
	"openf1-service/internal/observability"
	"openf1-service/internal/openf1"
	"openf1-service/internal/prune"
	"openf1-service/internal/results"
	"openf1-service/internal/roster"
)

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// handleDrivers serves the deduplicated active-driver roster.
func (s *Server) handleDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := roster.Active(r.Context(), s.roster)
	if err != nil {
		s.writeError(w, "drivers", "failed to list drivers", err)
		return
	}
	s.writeJSON(w, "drivers", http.StatusOK, drivers)
}

// handleLastRace serves the most recent race result for one driver.
func (s *Server) handleLastRace(w http.ResponseWriter, r *http.Request) {
	driverNumber, err := strconv.Atoi(r.PathValue("driverNumber"))
	if err != nil {
		s.writeBadRequest(w, "last-race", "driverNumber must be an integer")
		return
	}

	result, err := s.resolver.LastRace(r.Context(), driverNumber)
	if err != nil {
		s.writeError(w, "last-race", fmt.Sprintf("failed to resolve last race for driver %d", driverNumber), err)
		return
	}
	s.writeJSON(w, "last-race", http.StatusOK, result)
}

// handleTelemetry serves the merged, compacted telemetry document.
func (s *Server) handleTelemetry(w http.ResponseWriter, r *http.Request) {
	sessionKey, driverNumber, ok := s.sessionDriverParams(w, r, "telemetry")
	if !ok {
		return
	}

	merged, err := s.merger.Run(r.Context(), sessionKey, driverNumber)
	if err != nil {
		s.writeError(w, "telemetry", fmt.Sprintf("telemetry merge failed for session %d driver %d", sessionKey, driverNumber), err)
		return
	}

	document, err := prune.Document(merged)
	if err != nil {
		s.writeError(w, "telemetry", "failed to compact telemetry", err)
		return
	}
	s.writeJSON(w, "telemetry", http.StatusOK, document)
}

// handleAnalysis merges telemetry and hands it to the AI sink.
func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.analyzer == nil {
		err := fmt.Errorf("%w: analysis sink address and secret", config.ErrMissing)
		s.writeError(w, "analysis", "AI analysis is not configured", err)
		return
	}

	sessionKey, driverNumber, ok := s.sessionDriverParams(w, r, "analysis")
	if !ok {
		return
	}

	merged, err := s.merger.Run(r.Context(), sessionKey, driverNumber)
	if err != nil {
		s.writeError(w, "analysis", fmt.Sprintf("telemetry merge failed for session %d driver %d", sessionKey, driverNumber), err)
		return
	}

	document, err := prune.Document(merged)
	if err != nil {
		s.writeError(w, "analysis", "failed to compact telemetry", err)
		return
	}

	report, err := s.analyzer.Analyze(r.Context(), document)
	if err != nil {
		s.writeError(w, "analysis", fmt.Sprintf("analysis failed for session %d driver %d", sessionKey, driverNumber), err)
		return
	}
	s.writeJSON(w, "analysis", http.StatusOK, report)
}

// sessionDriverParams parses the sessionKey/driverNumber query pair shared
// by the telemetry and analysis routes.
func (s *Server) sessionDriverParams(w http.ResponseWriter, r *http.Request, route string) (sessionKey, driverNumber int, ok bool) {
	q := r.URL.Query()
	sessionKey, err := strconv.Atoi(q.Get("sessionKey"))
	if err != nil {
		s.writeBadRequest(w, route, "sessionKey must be an integer")
		return 0, 0, false
	}
	driverNumber, err = strconv.Atoi(q.Get("driverNumber"))
	if err != nil {
		s.writeBadRequest(w, route, "driverNumber must be an integer")
		return 0, 0, false
	}
	return sessionKey, driverNumber, true
}

func (s *Server) writeJSON(w http.ResponseWriter, route string, status int, v interface{}) {
	observability.RecordHTTPRequest(route, strconv.Itoa(status))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Printf("write response: %v", err)
	}
}

func (s *Server) writeBadRequest(w http.ResponseWriter, route, message string) {
	s.writeJSON(w, route, http.StatusBadRequest, errorResponse{Message: message})
}

// writeError maps typed errors onto status codes:
//
//   - missing configuration          → 500
//   - no sessions for the season     → 404
//   - sink failure                   → sink status, except transport
//     failures and sink 404s which both surface as 503
//   - upstream API failure           → upstream status when known, else 502
func (s *Server) writeError(w http.ResponseWriter, route, message string, err error) {
	status := http.StatusInternalServerError

	var sinkErr *analysis.UnavailableError
	var apiErr *openf1.APIError
	switch {
	case errors.Is(err, config.ErrMissing):
		status = http.StatusInternalServerError
	case errors.Is(err, results.ErrNoSessions):
		status = http.StatusNotFound
	case errors.As(err, &sinkErr):
		status = sinkErr.Status
		if status == 0 || status == http.StatusNotFound {
			status = http.StatusServiceUnavailable
		}
	case errors.As(err, &apiErr):
		status = apiErr.Status
		if status == 0 {
			status = http.StatusBadGateway
		}
	}

	s.logger.Printf("%s: %v", route, err)
	s.writeJSON(w, route, status, errorResponse{Message: message, Details: err.Error()})
}
