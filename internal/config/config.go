// Package config loads the optional YAML configuration controlling layout
// constants and SVG rendering style. Every field has a default, so a missing
// file or a sparse one is fine.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/journeycanvas/timeline/internal/layout"
	"github.com/journeycanvas/timeline/internal/render"
)

// Config is the full on-disk configuration.
type Config struct {
	Layout layout.Config  `yaml:"layout"`
	Render render.Options `yaml:"render"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Layout: layout.DefaultConfig(),
		Render: render.DefaultOptions(),
	}
}

// Load reads a YAML config file, overlaying it on the defaults. An empty
// path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
