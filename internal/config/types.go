package config

import (
	"fmt"
	"time"
)

// Duration wraps time.Duration for YAML unmarshalling.
type Duration struct {
	time.Duration
	explicit bool
}

// UnmarshalText parses a textual duration, accepting empty strings.
func (d *Duration) UnmarshalText(text []byte) error {
	d.explicit = true
	if len(text) == 0 {
		d.Duration = 0
		return nil
	}
	dur, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = dur
	return nil
}

// MarshalText renders the duration using time.Duration formatting.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// IsSet reports whether the duration was explicitly provided or non-zero.
func (d Duration) IsSet() bool {
	return d.explicit || d.Duration != 0
}

// Config mirrors the rewatch.yaml document structure.
type Config struct {
	Interval Duration  `yaml:"interval"`
	Watch    WatchSpec `yaml:"watch"`
	Child    ChildSpec `yaml:"child"`
}

// WatchSpec selects the file set tracked by the watch loop.
type WatchSpec struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
	// Extensions maps compiled-artifact suffixes to the source suffix the
	// watch loop should track instead (for example ".pyc" -> ".py").
	Extensions map[string]string `yaml:"extensions"`
}

// ChildSpec configures the environment of the supervised child process.
type ChildSpec struct {
	Workdir     string            `yaml:"workdir"`
	EnvFromFile string            `yaml:"envFile"`
	Env         map[string]string `yaml:"env"`

	// ResolvedWorkdir is the absolute working directory computed at load
	// time. Not part of the document.
	ResolvedWorkdir string `yaml:"-"`
}

const (
	defaultInterval = time.Second
)

var defaultInclude = []string{"**/*"}

// defaultExtensions covers the common bytecode suffixes of interpreted
// targets; compiled-in units have no file to begin with.
var defaultExtensions = map[string]string{
	".pyc": ".py",
	".pyo": ".py",
}

// ApplyDefaults fills unset fields with their documented defaults.
func (c *Config) ApplyDefaults() {
	if !c.Interval.IsSet() {
		c.Interval.Duration = defaultInterval
	}
	if len(c.Watch.Include) == 0 {
		c.Watch.Include = append([]string(nil), defaultInclude...)
	}
	if c.Watch.Extensions == nil {
		c.Watch.Extensions = make(map[string]string, len(defaultExtensions))
		for from, to := range defaultExtensions {
			c.Watch.Extensions[from] = to
		}
	}
}
