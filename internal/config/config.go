// Package config loads service configuration.
//
// Service settings come from koanf layers (defaults, optional YAML file named
// by RESUME_CONFIG, then RESUME_* environment variables). Secrets for tokens
// and password hashing are read separately from their own variables.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every service environment variable.
const EnvPrefix = "RESUME_"

// FileEnv names the variable holding an optional YAML config path.
const FileEnv = "RESUME_CONFIG"

// Config contains process configuration.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DatabaseURL is the PostgreSQL connection URL.
	DatabaseURL string `koanf:"database_url"`

	// AutoMigrate applies the schema on startup.
	AutoMigrate bool `koanf:"auto_migrate"`

	// UploadDir is where uploaded images are stored and served from.
	UploadDir string `koanf:"upload_dir"`

	// PublicBaseURL prefixes links to uploaded files, e.g.
	// "https://resumes.example.com". Empty yields host-relative links.
	PublicBaseURL string `koanf:"public_base_url"`

	// MaxUploadMB caps the size of one upload request.
	MaxUploadMB int `koanf:"max_upload_mb"`

	// ChromePath overrides the browser used for PDF export.
	ChromePath string `koanf:"chrome_path"`

	// ExportTimeoutSeconds bounds one PDF export.
	ExportTimeoutSeconds int `koanf:"export_timeout_seconds"`

	// MetricsEnabled exposes GET /metrics.
	MetricsEnabled bool `koanf:"metrics_enabled"`

	// CORSOrigin is sent as Access-Control-Allow-Origin.
	CORSOrigin string `koanf:"cors_origin"`

	// RateLimitEnabled turns the per-client limiter on.
	RateLimitEnabled bool `koanf:"rate_limit_enabled"`

	// RateLimitPerMinute is the default request budget per client and route.
	RateLimitPerMinute int `koanf:"rate_limit_per_minute"`

	// RateLimitWhitelist is a comma-separated list of exempt client IPs.
	RateLimitWhitelist string `koanf:"rate_limit_whitelist"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Addr:                 ":8080",
		AutoMigrate:          true,
		UploadDir:            "uploads",
		MaxUploadMB:          5,
		ExportTimeoutSeconds: 30,
		MetricsEnabled:       true,
		CORSOrigin:           "*",
		RateLimitEnabled:     true,
		RateLimitPerMinute:   300,
	}
}

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if RESUME_CONFIG is set
//  3. env (prefix RESUME_)
//
// ctx is reserved for remote providers.
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv(FileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// RESUME_UPLOAD_DIR -> upload_dir; keys stay flat to match the koanf tags.
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// DATABASE_URL is honoured as well, as the db tests and tooling use it.
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("config error: addr must not be empty")
	}
	if c.UploadDir == "" {
		return errors.New("config error: upload_dir must not be empty")
	}
	if c.MaxUploadMB < 1 {
		return fmt.Errorf("config error: max_upload_mb must be at least 1, got %d", c.MaxUploadMB)
	}
	if c.ExportTimeoutSeconds < 1 {
		return fmt.Errorf("config error: export_timeout_seconds must be at least 1, got %d", c.ExportTimeoutSeconds)
	}
	if c.RateLimitEnabled && c.RateLimitPerMinute < 1 {
		return fmt.Errorf("config error: rate_limit_per_minute must be at least 1, got %d", c.RateLimitPerMinute)
	}
	return nil
}

// MaxUploadBytes is MaxUploadMB in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// ExportTimeout is ExportTimeoutSeconds as a duration.
func (c *Config) ExportTimeout() time.Duration {
	return time.Duration(c.ExportTimeoutSeconds) * time.Second
}

// Whitelist splits RateLimitWhitelist into a set.
func (c *Config) Whitelist() map[string]bool {
	out := make(map[string]bool)
	for _, ip := range strings.Split(c.RateLimitWhitelist, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			out[ip] = true
		}
	}
	return out
}
