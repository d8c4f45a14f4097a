package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Metacritic.Threshold != 90 {
		t.Fatalf("unexpected threshold: %d", cfg.Metacritic.Threshold)
	}
	if cfg.Timeout.Duration != 30*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.Timeout.Duration)
	}
	if cfg.Pitchfork.Marker != "Best New" {
		t.Fatalf("unexpected marker: %q", cfg.Pitchfork.Marker)
	}
}

func TestLoadReadsTOMLAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "albumfeed.toml")
	content := `
listen = "127.0.0.1:9999"
timeout = "5s"

[metacritic]
threshold = 85
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ALBUMFEED_LOG_LEVEL", "debug")
	t.Setenv("ALBUMFEED_PITCHFORK_URL", "http://localhost:1234/reviews")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Listen != "127.0.0.1:9999" {
		t.Fatalf("unexpected listen: %q", cfg.Listen)
	}
	if cfg.Timeout.Duration != 5*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.Timeout.Duration)
	}
	if cfg.Metacritic.Threshold != 85 {
		t.Fatalf("unexpected threshold: %d", cfg.Metacritic.Threshold)
	}
	if cfg.Metacritic.ScoreSelector != Default().Metacritic.ScoreSelector {
		t.Fatalf("unset keys should keep defaults, got %q", cfg.Metacritic.ScoreSelector)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("env override ignored: %q", cfg.LogLevel)
	}
	if cfg.Pitchfork.URL != "http://localhost:1234/reviews" {
		t.Fatalf("env override ignored: %q", cfg.Pitchfork.URL)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("ALBUMFEED_METACRITIC_THRESHOLD", "150")
	_, err := Load("")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "threshold") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("ALBUMFEED_TIMEOUT", "soon")
	if _, err := Load(""); err == nil {
		t.Fatal("expected parse error for timeout")
	}
}

func TestExampleConfigMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "albumfeed.example.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("example config drifted from defaults:\n got %+v\nwant %+v", cfg, Default())
	}
}
