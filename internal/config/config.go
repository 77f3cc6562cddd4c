// Package config holds the process configuration. It is constructed once
// at startup and passed by reference into the components that need it;
// business logic never reads the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"openf1-service/internal/results"
)

// Default values applied when fields are absent from the config file and
// the environment.
const (
	DefaultListenAddr      = ":3000"
	DefaultOpenF1BaseURL   = "https://api.openf1.org/v1"
	DefaultOpenF1Timeout   = 15 * time.Second
	DefaultAnalysisTimeout = 60 * time.Second
)

// ErrMissing is returned when a required setting is absent.
var ErrMissing = errors.New("missing required configuration")

// Config is the top-level service configuration. Fields map 1:1 to
// config.example.yaml.
type Config struct {
	// ListenAddr is the HTTP listen address of the service.
	ListenAddr string `yaml:"listen_addr"`

	// AllowedOrigin restricts CORS to one origin. Empty allows any origin.
	AllowedOrigin string `yaml:"allowed_origin"`

	// Season is the competition year used by the last-race resolver.
	Season int `yaml:"season"`

	OpenF1   OpenF1Config   `yaml:"openf1"`
	Analysis AnalysisConfig `yaml:"analysis"`
}

// OpenF1Config holds upstream data API settings.
type OpenF1Config struct {
	// BaseURL is the OpenF1 API root.
	BaseURL string `yaml:"base_url"`

	// Timeout bounds one upstream request.
	Timeout time.Duration `yaml:"timeout"`
}

// AnalysisConfig holds AI analysis sink settings. URL and Secret are only
// required when the analysis endpoint is actually used.
type AnalysisConfig struct {
	URL     string        `yaml:"url"`
	Secret  string        `yaml:"secret"`
	Timeout time.Duration `yaml:"timeout"`
}

// Default returns the configuration defaults.
func Default() Config {
	return Config{
		ListenAddr: DefaultListenAddr,
		Season:     results.DefaultSeason,
		OpenF1: OpenF1Config{
			BaseURL: DefaultOpenF1BaseURL,
			Timeout: DefaultOpenF1Timeout,
		},
		Analysis: AnalysisConfig{
			Timeout: DefaultAnalysisTimeout,
		},
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overlays environment variables onto the configuration.
// Recognized variables: PORT, FRONTEND_URL, AI_SERVICE_URL,
// AI_SERVICE_SECRET, OPENF1_BASE_URL.
func (c *Config) ApplyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		c.ListenAddr = ":" + port
	}
	if origin := os.Getenv("FRONTEND_URL"); origin != "" {
		c.AllowedOrigin = origin
	}
	if u := os.Getenv("AI_SERVICE_URL"); u != "" {
		c.Analysis.URL = u
	}
	if s := os.Getenv("AI_SERVICE_SECRET"); s != "" {
		c.Analysis.Secret = s
	}
	if u := os.Getenv("OPENF1_BASE_URL"); u != "" {
		c.OpenF1.BaseURL = u
	}
}

// Validate checks settings every deployment needs. The analysis sink is
// checked separately because the feature is optional.
func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("%w: listen_addr", ErrMissing)
	}
	if c.OpenF1.BaseURL == "" {
		return fmt.Errorf("%w: openf1.base_url", ErrMissing)
	}
	return nil
}

// ValidateAnalysis checks that the AI sink can be called. It fails fast,
// before any network I/O, when the address or credential is absent.
func (c Config) ValidateAnalysis() error {
	if c.Analysis.URL == "" {
		return fmt.Errorf("%w: analysis.url (AI_SERVICE_URL)", ErrMissing)
	}
	if c.Analysis.Secret == "" {
		return fmt.Errorf("%w: analysis.secret (AI_SERVICE_SECRET)", ErrMissing)
	}
	return nil
}
