package config

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Validate checks the loaded document for contradictions that would make
// the watch loop misbehave at runtime.
func (c *Config) Validate() error {
	if c.Interval.Duration <= 0 {
		return fmt.Errorf("interval: must be greater than zero, got %s", c.Interval.Duration)
	}
	if len(c.Watch.Include) == 0 {
		return fmt.Errorf("watch.include: at least one pattern is required")
	}
	if err := validatePatterns("watch.include", c.Watch.Include); err != nil {
		return err
	}
	if err := validatePatterns("watch.exclude", c.Watch.Exclude); err != nil {
		return err
	}
	for from, to := range c.Watch.Extensions {
		if !strings.HasPrefix(from, ".") || !strings.HasPrefix(to, ".") {
			return fmt.Errorf("watch.extensions: mapping %q -> %q: suffixes must start with a dot", from, to)
		}
	}
	return nil
}

func validatePatterns(field string, patterns []string) error {
	for idx, pattern := range patterns {
		if strings.TrimSpace(pattern) == "" {
			return fmt.Errorf("%s[%d]: pattern must not be empty", field, idx)
		}
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%s[%d]: invalid pattern %q", field, idx, pattern)
		}
	}
	return nil
}
