package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearEnv blanks the overrides so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("OVERTIME_WEEKLY_HOURS", "")
	t.Setenv("OVERTIME_COLOR", "")
	t.Setenv("OVERTIME_CONFIG", "")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return configPath
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Overtime.WeeklyHours != 10 {
		t.Errorf("expected weekly_hours 10, got %d", cfg.Overtime.WeeklyHours)
	}
	if cfg.UI.Color != ColorAuto {
		t.Errorf("expected color auto, got %s", cfg.UI.Color)
	}
	if got := cfg.WeeklyAllowance().Minutes(); got != 600 {
		t.Errorf("expected weekly allowance 600 minutes, got %d", got)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.Overtime.WeeklyHours != 10 {
		t.Errorf("expected default weekly_hours, got %d", cfg.Overtime.WeeklyHours)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	clearEnv(t)
	configPath := writeConfig(t, `
[overtime]
weekly_hours = 38

[ui]
color = "never"
`)

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Overtime.WeeklyHours != 38 {
		t.Errorf("expected weekly_hours 38, got %d", cfg.Overtime.WeeklyHours)
	}
	if cfg.UI.Color != ColorNever {
		t.Errorf("expected color never, got %s", cfg.UI.Color)
	}
}

func TestLoadFrom_PartialFile(t *testing.T) {
	clearEnv(t)
	configPath := writeConfig(t, `
[overtime]
weekly_hours = 20
`)

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Overtime.WeeklyHours != 20 {
		t.Errorf("expected weekly_hours 20, got %d", cfg.Overtime.WeeklyHours)
	}
	// Missing sections keep their defaults
	if cfg.UI.Color != ColorAuto {
		t.Errorf("expected default color, got %s", cfg.UI.Color)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	clearEnv(t)
	configPath := writeConfig(t, "[overtime\nweekly_hours = ")

	_, err := LoadFrom(configPath)
	if err == nil {
		t.Fatal("expected error for malformed config file")
	}
	if !strings.Contains(err.Error(), "parsing config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	clearEnv(t)
	configPath := writeConfig(t, `
[overtime]
weekly_hours = 38

[ui]
color = "never"
`)

	t.Setenv("OVERTIME_WEEKLY_HOURS", "12")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Env should override file
	if cfg.Overtime.WeeklyHours != 12 {
		t.Errorf("expected weekly_hours 12 from env, got %d", cfg.Overtime.WeeklyHours)
	}
	// File value should be kept when no env override
	if cfg.UI.Color != ColorNever {
		t.Errorf("expected color never from file, got %s", cfg.UI.Color)
	}

	t.Setenv("OVERTIME_COLOR", " ALWAYS ")
	cfg, err = LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UI.Color != ColorAlways {
		t.Errorf("expected color always from env, got %s", cfg.UI.Color)
	}
}

func TestLoadFrom_InvalidEnvHours(t *testing.T) {
	clearEnv(t)
	t.Setenv("OVERTIME_WEEKLY_HOURS", "ten")

	_, err := LoadFrom("/nonexistent/path/config.toml")
	if err == nil {
		t.Fatal("expected error for non-integer OVERTIME_WEEKLY_HOURS")
	}
}

func TestValidate_InvalidColor(t *testing.T) {
	cfg := Default()
	cfg.UI.Color = "rainbow"

	err := cfg.Validate()
	if err == nil {
		t.Error("expected validation error for invalid color")
	}
}

func TestValidate_NegativeHoursAllowed(t *testing.T) {
	cfg := Default()
	cfg.Overtime.WeeklyHours = -5

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected negative weekly hours to be accepted, got: %v", err)
	}
	if got := cfg.WeeklyAllowance().Minutes(); got != -300 {
		t.Errorf("expected -300 minutes, got %d", got)
	}
}

func TestDefaultConfigPath_EnvOverride(t *testing.T) {
	t.Setenv("OVERTIME_CONFIG", "/etc/overtime.toml")
	if got := DefaultConfigPath(); got != "/etc/overtime.toml" {
		t.Errorf("DefaultConfigPath() = %q, want /etc/overtime.toml", got)
	}

	t.Setenv("OVERTIME_CONFIG", "")
	if got := DefaultConfigPath(); !strings.HasSuffix(got, filepath.Join("overtime", "config.toml")) {
		t.Errorf("DefaultConfigPath() = %q, want suffix overtime/config.toml", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"~/overtime.toml", filepath.Join(home, "overtime.toml")},
		{"/absolute/path.toml", "/absolute/path.toml"},
		{"relative/path.toml", "relative/path.toml"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := expandPath(tc.input)
			if got != tc.want {
				t.Errorf("expandPath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Overtime.WeeklyHours = 40
	cfg.UI.Color = ColorAlways

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Overtime.WeeklyHours != 40 {
		t.Errorf("expected weekly_hours 40, got %d", loaded.Overtime.WeeklyHours)
	}
	if loaded.UI.Color != ColorAlways {
		t.Errorf("expected color always, got %s", loaded.UI.Color)
	}
}
