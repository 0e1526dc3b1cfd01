package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DataPath != "" {
		t.Fatalf("DataPath = %q, want empty", cfg.DataPath)
	}
	if cfg.Theme != "" {
		t.Fatalf("Theme = %q, want empty", cfg.Theme)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
data_path = "  ~/plugins/Plugins.json  "
theme = "  Slate  "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !strings.HasPrefix(cfg.DataPath, home) {
		t.Fatalf("DataPath = %q, want it under HOME %q", cfg.DataPath, home)
	}
	if cfg.Theme != "Slate" {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, "Slate")
	}
}

func TestLoad_BrokenConfigIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not valid toml {{{\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for broken config")
	}
}

func TestDataFile_ExplicitPathWins(t *testing.T) {
	cfg := Config{DataPath: "/data/Plugins.json"}
	if got := cfg.DataFile(); got != "/data/Plugins.json" {
		t.Fatalf("DataFile = %q, want /data/Plugins.json", got)
	}
}

func TestDataFile_DefaultsNextToExecutable(t *testing.T) {
	got := Config{}.DataFile()
	if filepath.Base(got) != "Plugins.json" {
		t.Fatalf("DataFile = %q, want a Plugins.json path", got)
	}
}
