// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// A4 landscape in points, the default output sheet size.
const (
	DefaultSheetWidth  = 841.890
	DefaultSheetHeight = 595.276
)

type Config struct {
	Sheet struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"sheet"`
}

func Default() *Config {
	cfg := &Config{}
	cfg.Sheet.Width = DefaultSheetWidth
	cfg.Sheet.Height = DefaultSheetHeight
	return cfg
}

// Load reads a yaml config file. An empty path yields the defaults, so the
// config file is optional; a named but unreadable file is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if cfg.Sheet.Width == 0 {
		cfg.Sheet.Width = DefaultSheetWidth
	}
	if cfg.Sheet.Height == 0 {
		cfg.Sheet.Height = DefaultSheetHeight
	}

	return &cfg, nil
}
