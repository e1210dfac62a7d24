package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.General.DBPath == "" || cfg.General.LogLevel != "info" {
		t.Errorf("general defaults wrong: %+v", cfg.General)
	}
	if cfg.Scoring.GoldenThreshold != 80 || cfg.Scoring.LeanThreshold != 55 {
		t.Errorf("scoring defaults wrong: %+v", cfg.Scoring)
	}
	if cfg.Kelly.Fraction != 0.25 {
		t.Errorf("kelly fraction = %f, want 0.25", cfg.Kelly.Fraction)
	}
	if cfg.Backtest.Threshold != 60 {
		t.Errorf("backtest threshold = %d, want 60", cfg.Backtest.Threshold)
	}
	if cfg.Schedule.WatchSpec == "" {
		t.Error("watch spec missing")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[general]
db_path = "/tmp/test.db"
log_level = "debug"

[feed]
base_url = "http://feeds.example.com"
timeout = "30s"

[scoring]
golden_threshold = 85

[weights]
sharp_money = 25
numerology = 0

[kelly]
fraction = 0.5

[backtest]
threshold = 70
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.General.DBPath != "/tmp/test.db" || cfg.General.LogLevel != "debug" {
		t.Errorf("general not overridden: %+v", cfg.General)
	}
	if cfg.Feed.Timeout.Duration != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", cfg.Feed.Timeout.Duration)
	}
	if cfg.Scoring.GoldenThreshold != 85 {
		t.Errorf("golden = %f, want 85", cfg.Scoring.GoldenThreshold)
	}
	// Untouched sections keep defaults.
	if cfg.Scoring.SuperThreshold != 70 {
		t.Errorf("super = %f, want default 70", cfg.Scoring.SuperThreshold)
	}
	if cfg.Weights["sharp_money"] != 25 || cfg.Weights["numerology"] != 0 {
		t.Errorf("weights not loaded: %+v", cfg.Weights)
	}
	if cfg.Kelly.Fraction != 0.5 {
		t.Errorf("kelly fraction = %f, want 0.5", cfg.Kelly.Fraction)
	}
	if cfg.Backtest.Threshold != 70 {
		t.Errorf("threshold = %d, want 70", cfg.Backtest.Threshold)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/does/not/exist.toml"); err == nil {
		t.Error("missing file should error")
	}
}

func TestLoadBadDuration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[feed]\ntimeout = \"soon\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("unparseable duration should error")
	}
}
