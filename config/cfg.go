// Package config defines program configuration and prepares logging and
// debug reporting from it.
package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	_ "embed"
)

//go:embed config.yaml
var defaultConfig []byte

type (
	// FontsConfig selects the metric table used for composition.
	FontsConfig struct {
		// MetricsPath overrides the embedded metric table when set.
		MetricsPath string `yaml:"metrics_path,omitempty"`
	}

	// RenderConfig controls preview output.
	RenderConfig struct {
		// EmPixels is the pixel size of one em in SVG/PNG previews.
		EmPixels float64 `yaml:"em_pixels"`
		// MaxWidth limits PNG preview width; 0 disables the limit.
		MaxWidth int `yaml:"max_width"`
	}

	// LoggerConfig configures one logging sink.
	LoggerConfig struct {
		Level       string `yaml:"level"` // none, normal, debug
		Destination string `yaml:"destination,omitempty"`
		Mode        string `yaml:"mode,omitempty"` // append, overwrite
	}

	// LoggingConfig configures console and file logging.
	LoggingConfig struct {
		FileLogger    LoggerConfig `yaml:"file"`
		ConsoleLogger LoggerConfig `yaml:"console"`
	}

	// ReporterConfig configures the debug report archive.
	ReporterConfig struct {
		Destination string `yaml:"destination,omitempty"`
	}

	// Config is the complete program configuration.
	Config struct {
		Fonts     FontsConfig    `yaml:"fonts"`
		Render    RenderConfig   `yaml:"render"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// LoadConfiguration returns the embedded defaults overlaid with values from
// the given YAML file, if any.
func LoadConfiguration(path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultConfig, &cfg); err != nil {
		// embedded defaults are part of the build, this cannot happen
		return nil, fmt.Errorf("unable to parse default configuration: %w", err)
	}
	if len(path) == 0 {
		return &cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unable to parse configuration %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	for _, l := range []LoggerConfig{c.Logging.FileLogger, c.Logging.ConsoleLogger} {
		switch l.Level {
		case "", "none", "normal", "debug":
		default:
			return fmt.Errorf("unknown log level %q", l.Level)
		}
		switch l.Mode {
		case "", "append", "overwrite":
		default:
			return fmt.Errorf("unknown log mode %q", l.Mode)
		}
	}
	if c.Render.EmPixels <= 0 {
		return fmt.Errorf("render em_pixels must be positive, got %g", c.Render.EmPixels)
	}
	return nil
}

// Dump serializes the active configuration to YAML.
func Dump(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// DumpDefault returns the embedded default configuration verbatim.
func DumpDefault() []byte {
	out := make([]byte, len(defaultConfig))
	copy(out, defaultConfig)
	return out
}
