// Package config loads the console configuration.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the console configuration.
type Config struct {
	API APIConfig `yaml:"api"`

	// ConfigPath is the path the config was loaded from (not serialized).
	ConfigPath string `yaml:"-"`
}

// APIConfig represents the control-plane connection configuration.
type APIConfig struct {
	// BaseURL is the API origin all request paths are relative to.
	BaseURL string `yaml:"base_url"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:8080",
		},
	}
}

// Load loads configuration for the console.
//
// When path is non-empty it must name an existing file. Otherwise the
// common locations are tried in order, and a missing file is not an
// error: defaults apply. The FLEETDECK_API environment variable, when
// set, overrides the configured base URL either way.
func Load(path string) (*Config, error) {
	cfg := Default()

	paths := []string{path}
	if path == "" {
		paths = []string{"fleetdeck.yaml"}
		if dir, err := os.UserConfigDir(); err == nil {
			paths = append(paths, filepath.Join(dir, "fleetdeck", "config.yaml"))
		}
	}

	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			if path != "" {
				return nil, err
			}
			continue
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
		cfg.ConfigPath = p
		break
	}

	if v := os.Getenv("FLEETDECK_API"); v != "" {
		cfg.API.BaseURL = v
	}

	return cfg, nil
}
