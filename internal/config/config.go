package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings plugview reads at startup.
type Config struct {
	// DataPath is the plugin dataset location. Empty means "Plugins.json
	// next to the executable", resolved lazily by DataFile.
	DataPath string

	// Theme optionally pins a theme name, overriding saved preferences.
	Theme string
}

const (
	defaultConfigPath = "~/.config/plugview/config.toml"
	defaultDataFile   = "Plugins.json"
)

// Load locates and parses the plugview config, falling back to defaults
// when the file is missing. A present-but-broken config is an error;
// silently ignoring it would hide typos in data_path.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataPath string `toml:"data_path"`
		Theme    string `toml:"theme"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.DataPath = strings.TrimSpace(raw.DataPath)
	if cfg.DataPath != "" {
		cfg.DataPath = mustExpand(cfg.DataPath)
	}
	cfg.Theme = strings.TrimSpace(raw.Theme)

	return cfg, nil
}

// DataFile returns the dataset path to load. An explicit data_path wins;
// otherwise the dataset lives next to the plugview binary.
func (c Config) DataFile() string {
	if c.DataPath != "" {
		return c.DataPath
	}
	exe, err := os.Executable()
	if err != nil {
		return defaultDataFile
	}
	return filepath.Join(filepath.Dir(exe), defaultDataFile)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
