// SPDX-License-Identifier: MIT

// Package config loads tool configuration with precedence
// ENV > file > defaults.
package config

import (
	"fmt"
	"time"
)

// Config holds the runtime configuration.
type Config struct {
	// LogLevel is a zerolog level name ("debug", "info", ...).
	LogLevel string `yaml:"log_level"`

	// WatchDebounce is how long watch mode waits after the last file
	// event before regenerating.
	WatchDebounce time.Duration `yaml:"watch_debounce"`

	// Labels maps '&'-stripped binding tokens to custom display labels,
	// consulted before the built-in decoder rules.
	Labels map[string]string `yaml:"labels"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		LogLevel:      "info",
		WatchDebounce: 500 * time.Millisecond,
	}
}

// Validate rejects configurations the tool cannot run with.
func Validate(cfg Config) error {
	if cfg.WatchDebounce <= 0 {
		return fmt.Errorf("watch_debounce must be positive (got %s)", cfg.WatchDebounce)
	}
	for token, label := range cfg.Labels {
		if token == "" {
			return fmt.Errorf("labels: empty binding token (label %q)", label)
		}
	}
	return nil
}
