// Package config loads shopboard's application configuration from
// defaults, an optional TOML file, and environment variables, in that
// priority order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds everything the app needs at startup.
type Config struct {
	Service ServiceConfig `toml:"service"`
	Display DisplayConfig `toml:"display"`
}

// ServiceConfig points at the remote scheduling service.
type ServiceConfig struct {
	BaseURL        string `toml:"base_url"`
	PollIntervalMS int    `toml:"poll_interval_ms"`
}

// PollInterval returns the poll interval as a duration.
func (s ServiceConfig) PollInterval() time.Duration {
	return time.Duration(s.PollIntervalMS) * time.Millisecond
}

// DisplayConfig tunes the dashboard.
type DisplayConfig struct {
	// TeamPriority overrides the default team display order.
	TeamPriority []string `toml:"team_priority"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Service: ServiceConfig{
			BaseURL:        "http://localhost:8000",
			PollIntervalMS: 2000,
		},
	}
}

// Load builds the configuration: defaults, then the config file if one
// exists, then environment overrides. An empty path checks the standard
// location (~/.shopboard/shopboard.toml).
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			candidate := filepath.Join(home, ".shopboard", "shopboard.toml")
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
			}
		}
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	loadFromEnv(&cfg)

	if cfg.Service.PollIntervalMS <= 0 {
		return cfg, fmt.Errorf("poll_interval_ms must be positive, got %d", cfg.Service.PollIntervalMS)
	}
	return cfg, nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("SHOPBOARD_SERVICE_URL"); v != "" {
		cfg.Service.BaseURL = v
	}
	if v := os.Getenv("SHOPBOARD_POLL_INTERVAL_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.Service.PollIntervalMS = ms
		}
	}
}
