// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/lchandle/internal/casefold"
	"github.com/javiermolinar/lchandle/internal/tui/theme"
)

// Config holds the application configuration.
type Config struct {
	UI   UIConfig   `toml:"ui"`
	Text TextConfig `toml:"text"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
}

// TextConfig holds text processing settings.
type TextConfig struct {
	Locale string `toml:"locale"` // BCP 47 tag used for lowercasing, e.g. "tr"; empty is language-neutral
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme: "mocha",
		},
		Text: TextConfig{
			Locale: "",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "lchandle", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LCHANDLE_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("LCHANDLE_TEXT_LOCALE"); v != "" {
		cfg.Text.Locale = v
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.UI.Theme == "" {
		return errors.New("theme must be set")
	}
	if !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("unknown theme: %s", c.UI.Theme)
	}
	if !casefold.ValidLocale(c.Text.Locale) {
		return fmt.Errorf("invalid locale: %q", c.Text.Locale)
	}
	return nil
}

// Folder returns the case-folding function for the configured locale.
func (c *Config) Folder() (casefold.Folder, error) {
	return casefold.ForLocale(c.Text.Locale)
}

// Exists reports whether a config file is present at path.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
