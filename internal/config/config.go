// Package config loads gcview settings from YAML or TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/leftmike/printstate/internal/logging"
)

// Output formats for gcview dump.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

type Config struct {
	LogLevel      string `yaml:"log_level" toml:"log_level"`
	QuietWarnings bool   `yaml:"quiet_warnings" toml:"quiet_warnings"`
	Format        string `yaml:"format" toml:"format"`
	Viewer        Viewer `yaml:"viewer" toml:"viewer"`
}

// Viewer controls the HTML written by gcview view.
type Viewer struct {
	Zoom         float64 `yaml:"zoom" toml:"zoom"`
	Stroke       float64 `yaml:"stroke" toml:"stroke"`
	ExtrudeColor string  `yaml:"extrude_color" toml:"extrude_color"`
	TravelColor  string  `yaml:"travel_color" toml:"travel_color"`
	ShowTravel   bool    `yaml:"show_travel" toml:"show_travel"`
}

func Default() *Config {
	return &Config{
		LogLevel: "info",
		Format:   FormatYAML,
		Viewer: Viewer{
			Zoom:         3,
			Stroke:       0.4,
			ExtrudeColor: "green",
			TravelColor:  "red",
		},
	}
}

// Load reads path over the defaults. The file extension selects the format:
// .yaml or .yml for YAML, .toml for TOML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse yaml %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse toml %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config %s: expected a .yaml, .yml or .toml file", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg *Config) Validate() error {
	var errs []error

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}

	switch cfg.Format {
	case FormatYAML, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("format: expected %s or %s, got %q", FormatYAML,
			FormatJSON, cfg.Format))
	}

	if cfg.Viewer.Zoom <= 0 {
		errs = append(errs, fmt.Errorf("viewer.zoom: must be positive: %g", cfg.Viewer.Zoom))
	}
	if cfg.Viewer.Stroke <= 0 {
		errs = append(errs, fmt.Errorf("viewer.stroke: must be positive: %g",
			cfg.Viewer.Stroke))
	}

	return errors.Join(errs...)
}
