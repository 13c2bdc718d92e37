// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// ParseString returns the trimmed value of the environment variable, or the
// default when unset or blank.
func ParseString(key, defaultVal string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultVal
}

// ParseDuration returns the environment variable parsed as a duration, or
// the default when unset or unparseable.
func ParseDuration(key string, defaultVal time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal
	}
	d, err := ParseDurationValue(v)
	if err != nil {
		return defaultVal
	}
	return d
}

// ParseDurationValue parses a duration string such as "500ms" or "2s".
func ParseDurationValue(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	return d, nil
}
