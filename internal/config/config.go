// Package config loads and validates the punch configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/hglund/punch/internal/osutil"
)

const (
	// AppName is the application name used for the config directory
	AppName = "punch"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Built-in defaults used when the config file is absent or a field is empty.
const (
	DefaultDailyTarget     = 8 * time.Hour
	DefaultRefreshInterval = 15 * time.Second
)

// Config represents the application configuration
type Config struct {
	// DailyTarget is the daily work target as a Go duration string (e.g. "8h", "7h30m")
	DailyTarget string `toml:"daily_target"`
	// Timezone defines the timezone for day boundaries (IANA name, e.g. "Europe/Oslo", or "Local")
	Timezone string `toml:"timezone"`
	// RefreshInterval is how often the TUI recomputes status, as a Go duration string
	RefreshInterval string `toml:"refresh_interval"`
}

// DefaultConfig returns a Config with the built-in defaults:
// an 8 hour daily target, the system local timezone, and a 15 second
// TUI refresh interval.
func DefaultConfig() Config {
	return Config{
		DailyTarget:     "8h",
		Timezone:        "Local",
		RefreshInterval: "15s",
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// Load reads and validates the config file at path.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault reads the config file at path, falling back to the
// defaults when the file does not exist. Parse and validation errors
// are still reported: a broken config should not silently vanish.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Normalize trims whitespace and fills empty fields with defaults.
func (c *Config) Normalize() {
	c.DailyTarget = strings.TrimSpace(c.DailyTarget)
	c.Timezone = strings.TrimSpace(c.Timezone)
	c.RefreshInterval = strings.TrimSpace(c.RefreshInterval)

	defaults := DefaultConfig()
	if c.DailyTarget == "" {
		c.DailyTarget = defaults.DailyTarget
	}
	if c.Timezone == "" {
		c.Timezone = defaults.Timezone
	}
	if c.RefreshInterval == "" {
		c.RefreshInterval = defaults.RefreshInterval
	}
}

// Validate checks that every field parses and has a sensible value.
func (c Config) Validate() error {
	target, err := time.ParseDuration(c.DailyTarget)
	if err != nil {
		return fmt.Errorf("invalid daily_target %q: %w", c.DailyTarget, err)
	}
	if target <= 0 {
		return fmt.Errorf("daily_target must be positive, got %q", c.DailyTarget)
	}

	refresh, err := time.ParseDuration(c.RefreshInterval)
	if err != nil {
		return fmt.Errorf("invalid refresh_interval %q: %w", c.RefreshInterval, err)
	}
	if refresh < time.Second {
		return fmt.Errorf("refresh_interval must be at least 1s, got %q", c.RefreshInterval)
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}

	return nil
}

// Target returns the parsed daily target. Falls back to the default for
// a Config that never went through Validate.
func (c Config) Target() time.Duration {
	target, err := time.ParseDuration(c.DailyTarget)
	if err != nil || target <= 0 {
		return DefaultDailyTarget
	}
	return target
}

// Refresh returns the parsed TUI refresh interval.
func (c Config) Refresh() time.Duration {
	refresh, err := time.ParseDuration(c.RefreshInterval)
	if err != nil || refresh < time.Second {
		return DefaultRefreshInterval
	}
	return refresh
}

// Location resolves the configured timezone. "Local" and the empty
// string mean the system local timezone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "Local") {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// GenerateSampleConfig returns an annotated config file with defaults,
// written by `punch config init`.
func GenerateSampleConfig() string {
	return `# punch configuration file

# Daily work target, as a Go duration string (e.g. "8h", "7h30m").
daily_target = "8h"

# Timezone used for day boundaries: an IANA name like "Europe/Oslo",
# or "Local" for the system timezone.
timezone = "Local"

# How often the TUI recomputes the status view.
refresh_interval = "15s"
`
}
