package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/javiermolinar/overtime/internal/config"
)

// Color definitions for consistent styling across the UI.
var (
	// Info prefix: cyan, as on successful results
	colorInfo = color.New(color.FgCyan)

	// Error prefix: red
	colorError = color.New(color.FgRed)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// Table colors for the weeks breakdown.
var (
	tableOvertime = lipgloss.Color("2") // green
	tableDeficit  = lipgloss.Color("1") // red
	tableBorder   = lipgloss.Color("8") // grey
)

// applyColorMode sets the global color switch from the configured mode.
// noColor wins over the config. "auto" keeps fatih/color's tty detection.
func applyColorMode(mode string, noColor bool) {
	switch {
	case noColor || mode == config.ColorNever:
		DisableColor()
	case mode == config.ColorAlways:
		EnableColor()
	}
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// newRenderer returns a lipgloss renderer for w that agrees with the
// global color switch.
func newRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if color.NoColor {
		r.SetColorProfile(termenv.Ascii)
	} else if r.ColorProfile() == termenv.Ascii {
		// Color was forced on for a writer termenv cannot detect.
		r.SetColorProfile(termenv.ANSI)
	}
	return r
}

// termWidth returns the terminal width of w, or a default if w is not a
// terminal.
func termWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 80
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// formatInfo formats the info prefix.
func formatInfo(s string) string {
	return colorInfo.Sprint(s)
}

// formatError formats the error prefix.
func formatError(s string) string {
	return colorError.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
