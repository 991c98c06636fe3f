package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("ExplicitFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "api:\n  base_url: https://fleet.example.com\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("writing config: %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.API.BaseURL != "https://fleet.example.com" {
			t.Errorf("base URL = %q", cfg.API.BaseURL)
		}
		if cfg.ConfigPath != path {
			t.Errorf("ConfigPath = %q, want %q", cfg.ConfigPath, path)
		}
	})

	t.Run("ExplicitFileMissing", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected error for missing explicit config file")
		}
	})

	t.Run("DefaultsWhenNoFile", func(t *testing.T) {
		// Run from an empty directory so fleetdeck.yaml is not found.
		t.Chdir(t.TempDir())

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.API.BaseURL != "http://localhost:8080" {
			t.Errorf("base URL = %q, want default", cfg.API.BaseURL)
		}
	})

	t.Run("EnvOverridesFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("api:\n  base_url: https://fleet.example.com\n"), 0644); err != nil {
			t.Fatalf("writing config: %v", err)
		}
		t.Setenv("FLEETDECK_API", "http://10.0.0.5:9000")

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.API.BaseURL != "http://10.0.0.5:9000" {
			t.Errorf("base URL = %q, want env override", cfg.API.BaseURL)
		}
	})
}
