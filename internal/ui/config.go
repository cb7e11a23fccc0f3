package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/overtime/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  overtime config`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runConfigInteractive()
		},
	}
}

func (a *App) runConfigInteractive() error {
	fmt.Fprintf(a.stdout, "Config file: %s\n\n", a.configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(a.configPath)
	if os.IsNotExist(fileErr) {
		fmt.Fprintln(a.stdout, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(a.configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(a.stdout, "Created %s\n\n", a.configPath)
	}

	a.printConfig(cfg)

	reader := bufio.NewReader(a.stdin)
	if !a.promptYesNo(reader, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Overtime.WeeklyHours = a.promptInt(reader, "Weekly hours", cfg.Overtime.WeeklyHours)
	cfg.UI.Color = strings.ToLower(a.promptValue(reader, "Color (auto, always, never)", cfg.UI.Color))

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(a.configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(a.stdout, "\nConfiguration saved!")
	return nil
}

func (a *App) printConfig(cfg *config.Config) {
	fmt.Fprintln(a.stdout, "Current configuration:")
	fmt.Fprintln(a.stdout, "──────────────────────")
	fmt.Fprintln(a.stdout, "[overtime]")
	fmt.Fprintf(a.stdout, "  weekly_hours = %d\n", cfg.Overtime.WeeklyHours)
	fmt.Fprintln(a.stdout, "\n[ui]")
	fmt.Fprintf(a.stdout, "  color        = %s\n", cfg.UI.Color)
}

func (a *App) promptYesNo(reader *bufio.Reader, question string) bool {
	fmt.Fprintf(a.stdout, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func (a *App) promptValue(reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Fprintf(a.stdout, "  %s: ", label)
	} else {
		fmt.Fprintf(a.stdout, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

// promptInt asks until the answer is empty or a valid integer.
func (a *App) promptInt(reader *bufio.Reader, label string, current int) int {
	for {
		value := a.promptValue(reader, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(a.stdout, "  Invalid number %q.\n", value)
		if _, err := reader.Peek(1); err != nil {
			// Input exhausted; keep the current value.
			return current
		}
	}
}
