// Package config loads application configuration from defaults and an
// optional JSON file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// DefaultPath is the config file looked up when no explicit path is given.
const DefaultPath = "velocimetry.json"

// Config holds all application configuration
type Config struct {
	Export      ExportConfig      `json:"export"`
	Chart       ChartConfig       `json:"chart"`
	Logging     LoggingConfig     `json:"logging"`
	Calibration CalibrationConfig `json:"calibration"`
}

// ExportConfig configures report and chart export
type ExportConfig struct {
	Directory string `json:"directory"`
}

// ChartConfig configures chart rendering dimensions
type ChartConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// LoggingConfig configures the structured logger
type LoggingConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// CalibrationConfig configures calibration session behavior
type CalibrationConfig struct {
	TargetPoints int `json:"target_points"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Export:      ExportConfig{Directory: "."},
		Chart:       ChartConfig{Width: 800, Height: 500},
		Logging:     LoggingConfig{Level: "info", Format: "text"},
		Calibration: CalibrationConfig{TargetPoints: 10},
	}
}

// Load reads the config file at path when it exists, overlaying the
// defaults. A missing file is not an error; defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration before use.
func (c Config) Validate() error {
	if c.Export.Directory == "" {
		return fmt.Errorf("export directory must not be empty")
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart dimensions must be positive, got %dx%d", c.Chart.Width, c.Chart.Height)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	if c.Calibration.TargetPoints <= 0 {
		return fmt.Errorf("calibration target points must be positive, got %d", c.Calibration.TargetPoints)
	}
	return nil
}
