// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/overtime/internal/duration"
	"github.com/javiermolinar/overtime/internal/overtime"
)

// Color modes accepted by UIConfig.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the application configuration.
type Config struct {
	Overtime OvertimeConfig `toml:"overtime"`
	UI       UIConfig       `toml:"ui"`
}

// OvertimeConfig holds the contract settings.
type OvertimeConfig struct {
	WeeklyHours int `toml:"weekly_hours"` // contracted hours per week
}

// UIConfig holds terminal output settings.
type UIConfig struct {
	Color string `toml:"color"` // "auto", "always", "never"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Overtime: OvertimeConfig{
			WeeklyHours: overtime.DefaultWeeklyHours,
		},
		UI: UIConfig{
			Color: ColorAuto,
		},
	}
}

// DefaultConfigPath returns the config file path, honoring OVERTIME_CONFIG.
func DefaultConfigPath() string {
	if v := os.Getenv("OVERTIME_CONFIG"); v != "" {
		return expandPath(v)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "overtime", "config.toml")
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

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
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("OVERTIME_WEEKLY_HOURS"); v != "" {
		hours, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("OVERTIME_WEEKLY_HOURS must be a valid integer not: %s", v)
		}
		cfg.Overtime.WeeklyHours = hours
	}
	if v := os.Getenv("OVERTIME_COLOR"); v != "" {
		cfg.UI.Color = strings.ToLower(strings.TrimSpace(v))
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.UI.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of auto, always, never, got %q", c.UI.Color)
	}
	return nil
}

// WeeklyAllowance returns the configured weekly hours as a Duration.
func (c *Config) WeeklyAllowance() duration.Duration {
	return duration.FromHours(c.Overtime.WeeklyHours)
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
