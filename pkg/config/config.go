package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds sablec's tool settings. They affect presentation and the
// watch loop only; the compiler core reads no configuration at all.
type Config struct {
	// Format selects command output: "text" or "json".
	Format string `yaml:"format"`

	// Color enables styled terminal output.
	Color bool `yaml:"color"`

	// DebounceMS is the watch-mode debounce interval in milliseconds.
	DebounceMS int `yaml:"debounce_ms"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Format:     "text",
		Color:      true,
		DebounceMS: 100,
	}
}

// Load reads a YAML config from path and overlays it on the defaults.
// A missing file is not an error: the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config file %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values no command can act on.
func (c Config) Validate() error {
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid format %q (want text or json)", c.Format)
	}
	if c.DebounceMS <= 0 {
		return fmt.Errorf("debounce_ms must be positive, got %d", c.DebounceMS)
	}
	return nil
}

// Debounce returns the watch debounce interval as a duration.
func (c Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}
