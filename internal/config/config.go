// Package config loads server configuration from the environment.
//
// A .env file in the working directory is honored when present (agents
// typically launch the server from a project checkout); real
// environment variables win over .env values, which is godotenv's
// default behavior.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/roelven/another-planka-mcp/internal/planka"
)

// Config holds everything needed to reach the Planka server.
type Config struct {
	// BaseURL is the Planka root, without the /api suffix.
	BaseURL string

	// Credentials carries the authentication sources in priority order.
	Credentials planka.Credentials

	// Timeout is the per-request timeout for remote calls.
	Timeout time.Duration
}

// LoadDotEnv loads a .env file if one exists. A missing file is not an
// error — .env is optional.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	base := strings.TrimSpace(os.Getenv("PLANKA_BASE_URL"))
	if base == "" {
		return nil, errors.New("PLANKA_BASE_URL not set in environment")
	}

	cfg := &Config{
		BaseURL: strings.TrimRight(base, "/"),
		Credentials: planka.Credentials{
			Token:    strings.TrimSpace(os.Getenv("PLANKA_API_TOKEN")),
			APIKey:   strings.TrimSpace(os.Getenv("PLANKA_API_KEY")),
			Email:    strings.TrimSpace(os.Getenv("PLANKA_EMAIL")),
			Password: os.Getenv("PLANKA_PASSWORD"),
		},
		Timeout: envDuration("PLANKA_TIMEOUT", planka.DefaultTimeout),
	}

	c := cfg.Credentials
	if c.Token == "" && c.APIKey == "" && (c.Email == "" || c.Password == "") {
		return nil, errors.New(
			"no authentication method configured: set PLANKA_API_TOKEN, PLANKA_API_KEY, or PLANKA_EMAIL+PLANKA_PASSWORD")
	}

	return cfg, nil
}

// envDuration reads a duration from an environment variable. Accepts
// plain integers (seconds) or Go duration strings ("45s", "2m").
// Falls back to def when unset or unparsable.
func envDuration(key string, def time.Duration) time.Duration {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	if secs, err := strconv.Atoi(val); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if d, err := time.ParseDuration(val); err == nil && d > 0 {
		return d
	}
	return def
}
