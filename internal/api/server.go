// Package api exposes the merge engine, resolvers and analysis hand-off
// over HTTP. It owns routing, parameter validation, CORS and the mapping
// from typed errors to status codes; no merge logic lives here.
package api

import (
	"log"
	"net/http"

	"github.com/google/uuid"

	"openf1-service/internal/analysis"
	"openf1-service/internal/observability"
	"openf1-service/internal/results"
	"openf1-service/internal/roster"
	"openf1-service/internal/telemetry"
)

// Options wires the server's collaborators.
type Options struct {
	Logger   *log.Logger
	Merger   *telemetry.Merger
	Resolver *results.Resolver
	Roster   roster.Source

	// Analyzer is nil when the AI sink is not configured; the analysis
	// endpoint then fails fast with a configuration error.
	Analyzer *analysis.Client

	// AllowedOrigin restricts CORS; empty allows any origin.
	AllowedOrigin string
}

// Server serves the public API.
type Server struct {
	logger        *log.Logger
	merger        *telemetry.Merger
	resolver      *results.Resolver
	roster        roster.Source
	analyzer      *analysis.Client
	allowedOrigin string
}

// New creates an API server.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		logger:        logger,
		merger:        opts.Merger,
		resolver:      opts.Resolver,
		roster:        opts.Roster,
		analyzer:      opts.Analyzer,
		allowedOrigin: opts.AllowedOrigin,
	}
}

// Handler returns the fully wired HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/openf1/drivers", s.handleDrivers)
	mux.HandleFunc("GET /api/openf1/drivers/{driverNumber}/last-race", s.handleLastRace)
	mux.HandleFunc("GET /api/openf1/telemetry", s.handleTelemetry)
	mux.HandleFunc("GET /api/openf1/analysis", s.handleAnalysis)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", observability.Handler())

	return s.withRequestID(s.withCORS(mux))
}

// withCORS allows the configured frontend origin, or any origin when
// none is configured.
func (s *Server) withCORS(next http.Handler) http.Handler {
	origin := s.allowedOrigin
	if origin == "" {
		origin = "*"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Methods", "GET, POST")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		h.Set("Access-Control-Allow-Credentials", "true")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withRequestID tags every response with a request ID, minting one when the
// caller did not send X-Request-ID.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}
