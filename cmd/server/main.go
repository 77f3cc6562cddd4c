// Package main runs the OpenF1 proxy/orchestrator service: driver roster,
// last-race resolution, telemetry merging and the AI analysis hand-off,
// all behind one HTTP API.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"openf1-service/internal/analysis"
	"openf1-service/internal/api"
	"openf1-service/internal/config"
	"openf1-service/internal/openf1"
	"openf1-service/internal/results"
	"openf1-service/internal/telemetry"
)

func main() {
	// Load .env file if exists
	loadEnvFile()

	// Parse flags (env vars as defaults)
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	listenAddr := flag.String("listen", "", "HTTP listen address (overrides config and PORT)")
	openf1URL := flag.String("openf1-url", "", "OpenF1 API base URL (overrides config)")
	aiURL := flag.String("ai-url", "", "AI analysis service URL (overrides config)")
	aiSecret := flag.String("ai-secret", "", "AI analysis shared secret (overrides config)")
	season := flag.Int("season", 0, "Competition year for last-race resolution (overrides config)")

	flag.Parse()

	// Setup logger
	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lshortfile)

	// Build configuration: defaults, then file, then env, then flags.
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if *listenAddr != "" {
		cfg.ListenAddr = *listenAddr
	}
	if *openf1URL != "" {
		cfg.OpenF1.BaseURL = *openf1URL
	}
	if *aiURL != "" {
		cfg.Analysis.URL = *aiURL
	}
	if *aiSecret != "" {
		cfg.Analysis.Secret = *aiSecret
	}
	if *season != 0 {
		cfg.Season = *season
	}

	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	// Wire components
	client := openf1.NewClient(
		openf1.WithBaseURL(cfg.OpenF1.BaseURL),
		openf1.WithTimeout(cfg.OpenF1.Timeout),
	)

	var analyzer *analysis.Client
	if err := cfg.ValidateAnalysis(); err == nil {
		analyzer = analysis.NewClient(cfg.Analysis.URL, cfg.Analysis.Secret,
			analysis.WithTimeout(cfg.Analysis.Timeout))
		logger.Println("AI analysis sink configured")
	} else {
		logger.Printf("AI analysis disabled: %v", err)
	}

	server := api.New(api.Options{
		Logger:        logger,
		Merger:        telemetry.NewMerger(client),
		Resolver:      results.NewResolver(client, cfg.Season),
		Roster:        client,
		Analyzer:      analyzer,
		AllowedOrigin: cfg.AllowedOrigin,
	})

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: server.Handler(),
	}

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Printf("Received signal %v, shutting down...", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Printf("Shutdown error: %v", err)
		}
	}()

	logger.Printf("OpenF1 service listening on %s", cfg.ListenAddr)
	if cfg.AllowedOrigin != "" {
		logger.Printf("CORS restricted to: %s", cfg.AllowedOrigin)
	}

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("Server error: %v", err)
	}

	logger.Println("Shutdown complete")
}

// loadEnvFile loads environment variables from .env file if it exists.
func loadEnvFile() {
	data, err := os.ReadFile(".env")
	if err != nil {
		return // File doesn't exist, use system env vars
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Don't override existing env vars
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}
