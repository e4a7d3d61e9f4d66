// Package config resolves runtime settings from .env files and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/keyquiz/keyquiz/internal/docs"
	"github.com/keyquiz/keyquiz/internal/profile"
	"github.com/keyquiz/keyquiz/internal/server"
	"github.com/keyquiz/keyquiz/internal/session"
)

// Config holds every runtime setting.
type Config struct {
	// DBPath is the SQLite file; empty means the default XDG location.
	DBPath string

	// RemoteURL points at a document server. Empty uses the local store.
	RemoteURL string

	// FetchTimeout bounds remote collection reads.
	FetchTimeout time.Duration

	// DurationSeconds is the quiz countdown.
	DurationSeconds int

	// LogPath is the TUI log file; empty means next to the database.
	LogPath string

	// Email identifies the signed-in learner in the header.
	Email string

	// Web switches the end dialog to single-confirm behaviour.
	Web bool

	// Server settings for `keyquiz serve`.
	Addr           string
	RateLimitRPS   int
	RateLimitBurst int
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	srv := server.DefaultConfig()
	return Config{
		FetchTimeout:    docs.DefaultClientConfig().Timeout,
		DurationSeconds: session.DefaultDurationSeconds,
		Addr:            srv.Addr,
		RateLimitRPS:    srv.RateLimitRPS,
		RateLimitBurst:  srv.RateLimitBurst,
	}
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, falling back to defaults.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()
	cfg.DBPath = getenv("KEYQUIZ_DB")
	cfg.RemoteURL = getenv("KEYQUIZ_REMOTE")
	cfg.LogPath = getenv("KEYQUIZ_LOG")
	cfg.Email = getenv("KEYQUIZ_EMAIL")
	if v := getenv("KEYQUIZ_ADDR"); v != "" {
		cfg.Addr = v
	}

	var err error
	if cfg.DurationSeconds, err = envInt(getenv, "KEYQUIZ_DURATION", cfg.DurationSeconds); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitRPS, err = envInt(getenv, "KEYQUIZ_RATE_RPS", cfg.RateLimitRPS); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitBurst, err = envInt(getenv, "KEYQUIZ_RATE_BURST", cfg.RateLimitBurst); err != nil {
		return Config{}, err
	}
	if v := getenv("KEYQUIZ_FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse KEYQUIZ_FETCH_TIMEOUT: %w", err)
		}
		cfg.FetchTimeout = d
	}
	if v := getenv("KEYQUIZ_WEB"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse KEYQUIZ_WEB: %w", err)
		}
		cfg.Web = b
	}

	if cfg.DurationSeconds <= 0 {
		return Config{}, fmt.Errorf("KEYQUIZ_DURATION must be positive, got %d", cfg.DurationSeconds)
	}
	return cfg, nil
}

func envInt(getenv func(string) string, key string, fallback int) (int, error) {
	v := getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

// Profile returns the learner context passed to screens.
func (c Config) Profile() profile.Profile {
	return profile.Profile{Email: c.Email, Web: c.Web}
}

// ServerConfig returns the document server settings.
func (c Config) ServerConfig() server.Config {
	cfg := server.DefaultConfig()
	cfg.Addr = c.Addr
	cfg.RateLimitRPS = c.RateLimitRPS
	cfg.RateLimitBurst = c.RateLimitBurst
	return cfg
}

// ClientConfig returns the document client settings.
func (c Config) ClientConfig() docs.ClientConfig {
	return docs.ClientConfig{BaseURL: c.RemoteURL, Timeout: c.FetchTimeout}
}
