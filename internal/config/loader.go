// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles configuration loading with precedence.
type Loader struct {
	configPath string
}

// NewLoader creates a new configuration loader. An empty path skips the
// file stage.
func NewLoader(configPath string) *Loader {
	return &Loader{configPath: configPath}
}

// Load loads configuration with precedence: ENV > File > Defaults, then
// validates the merged result.
func (l *Loader) Load() (Config, error) {
	cfg := Defaults()

	if l.configPath != "" {
		if err := l.mergeFile(&cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	l.mergeEnv(&cfg)

	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// fileConfig mirrors Config with pointer fields so absent keys are
// distinguishable from zero values.
type fileConfig struct {
	LogLevel      *string           `yaml:"log_level"`
	WatchDebounce *string           `yaml:"watch_debounce"`
	Labels        map[string]string `yaml:"labels"`
}

func (l *Loader) mergeFile(cfg *Config) error {
	raw, err := os.ReadFile(l.configPath)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var fc fileConfig
	if err := dec.Decode(&fc); err != nil {
		return fmt.Errorf("parse %s: %w", l.configPath, err)
	}

	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.WatchDebounce != nil {
		d, err := ParseDurationValue(*fc.WatchDebounce)
		if err != nil {
			return fmt.Errorf("watch_debounce: %w", err)
		}
		cfg.WatchDebounce = d
	}
	if fc.Labels != nil {
		cfg.Labels = fc.Labels
	}
	return nil
}

func (l *Loader) mergeEnv(cfg *Config) {
	cfg.LogLevel = ParseString("ZMK2MD_LOG_LEVEL", cfg.LogLevel)
	cfg.WatchDebounce = ParseDuration("ZMK2MD_WATCH_DEBOUNCE", cfg.WatchDebounce)
}
