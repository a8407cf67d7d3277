package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ytget/yt-quick/internal/config"
)

func TestLoadConfig_FromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("retries = 4\nlanguage = \"ru\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.EnvConfigPath, path)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Retries != 4 || cfg.Language != "ru" {
		t.Errorf("Unexpected config %+v", cfg)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "nope.toml"))

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg != config.Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}
