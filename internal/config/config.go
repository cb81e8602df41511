// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// LoginURL is where unauthenticated users are handed off to. Defaults to "/login".
	LoginURL string

	// DraftTTL is how long an untouched draft or cancellation confirmation
	// survives. Defaults to 30m.
	DraftTTL time.Duration

	// SweepSchedule is the cron spec for the idle expiry sweep. Defaults to "@every 1m".
	SweepSchedule string

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set together
// with any values that could not be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		LoginURL:      getEnv("LOGIN_URL", "/login"),
		SweepSchedule: getEnv("SWEEP_SCHEDULE", "@every 1m"),
	}

	var missing []string
	var invalid []error

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	ttl, err := time.ParseDuration(getEnv("DRAFT_TTL", "30m"))
	switch {
	case err != nil:
		invalid = append(invalid, fmt.Errorf("DRAFT_TTL: %w", err))
	case ttl <= 0:
		invalid = append(invalid, fmt.Errorf("DRAFT_TTL: must be positive, got %s", ttl))
	}
	cfg.DraftTTL = ttl

	limit, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	switch {
	case err != nil:
		invalid = append(invalid, fmt.Errorf("MAX_BODY_BYTES: %w", err))
	case limit <= 0:
		invalid = append(invalid, fmt.Errorf("MAX_BODY_BYTES: must be positive, got %d", limit))
	}
	cfg.MaxBodyBytes = limit

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		invalid = append(invalid, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	var errs []error
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", ")))
	}
	errs = append(errs, invalid...)
	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}

	return cfg, nil
}

// SlogLevel returns LogLevel as a slog.Level, falling back to info.
func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
