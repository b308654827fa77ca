// Package config reads and writes the docsurf TOML config file.
//
// The file lives at ~/.config/docsurf/config.toml. Everything in it is
// optional; a missing file just means defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Screen names accepted by viewer.start.
const (
	ScreenHome = "home"
	ScreenDocs = "docs"
)

// Config is the top-level configuration structure.
type Config struct {
	Content ContentConfig `toml:"content"`
	Viewer  ViewerConfig  `toml:"viewer"`
}

// ContentConfig controls where the documentation bundle comes from.
type ContentConfig struct {
	// Dir overrides the compiled-in content with a directory on disk.
	// Empty means use the embedded bundle.
	Dir string `toml:"dir"`
}

// ViewerConfig holds presentation preferences.
type ViewerConfig struct {
	Start string `toml:"start"` // screen shown on launch: "home" or "docs"
}

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Viewer: ViewerConfig{
			Start: ScreenHome,
		},
	}
}

// DefaultPath returns the platform-appropriate path to the config file.
// On most systems this is ~/.config/docsurf/config.toml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		// Fall back to HOME/.config on failure.
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "docsurf", "config.toml")
}

// Load reads the config from the default path.
// If the file does not exist, it returns a default Config (no error).
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom reads the config from the given path.
// If the file does not exist, it returns a default Config (no error).
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.Viewer.Start != ScreenHome && cfg.Viewer.Start != ScreenDocs {
		return nil, fmt.Errorf("config: viewer.start must be %q or %q, got %q",
			ScreenHome, ScreenDocs, cfg.Viewer.Start)
	}

	return cfg, nil
}

// Save writes the config to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultPath())
}

// SaveTo writes the config to the given path.
// It creates the parent directory with mode 0o700 and the file with mode 0o600.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}
