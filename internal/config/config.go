// Package config holds the options the preview CLI feeds the renderer.
// Values come from an optional YAML file merged under explicit flags.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Lakunake/web-subtitle-renderer/internal/subtitle"
)

// Config holds preview options for one track evaluation
type Config struct {
	// Track identifier: a file path or an http(s) URL
	Track string `yaml:"track"`

	// "vtt" or "ass"; no auto-detection
	Format string `yaml:"format"`

	// Viewport content box in pixels
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Playback time to evaluate, in seconds
	At float64 `yaml:"at"`
}

// DefaultConfig returns a config with the standard 16:9 preview viewport
func DefaultConfig() *Config {
	return &Config{
		Format: string(subtitle.FormatVTT),
		Width:  1280,
		Height: 720,
	}
}

// LoadConfigFile loads options from a YAML file on top of the defaults
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is usable
func (c *Config) Validate() error {
	if c.Track == "" {
		return fmt.Errorf("track identifier is required")
	}
	switch subtitle.Format(c.Format) {
	case subtitle.FormatVTT, subtitle.FormatASS:
	default:
		return fmt.Errorf("invalid format %q: use vtt or ass", c.Format)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("viewport dimensions must be positive")
	}
	if c.At < 0 {
		return fmt.Errorf("evaluation time cannot be negative")
	}
	return nil
}
