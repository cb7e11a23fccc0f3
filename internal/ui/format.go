package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/javiermolinar/overtime/internal/duration"
	"github.com/javiermolinar/overtime/internal/overtime"
)

// Columns of the weeks table.
const (
	colWeek = iota
	colShifts
	colWorked
	colAllowance
	colOvertime
)

// printTotal prints the net overtime line.
func (a *App) printTotal(total duration.Duration) {
	fmt.Fprintf(a.stdout, "%s%s\n", formatInfo("info: "), FormatOvertime(total))
}

// PrintError prints err to stderr with a colored prefix.
func (a *App) PrintError(err error) {
	WriteError(a.stderr, err)
}

// WriteError prints err to w with the same colored prefix as PrintError,
// for failures that happen before an App exists.
func WriteError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s%v\n", formatError("error: "), err)
}

// FormatOvertime formats the summary line for a total.
func FormatOvertime(total duration.Duration) string {
	return fmt.Sprintf("Total overtime is: %s", total)
}

// renderWeeks renders the per-week breakdown as a table no wider than
// maxWidth.
func (a *App) renderWeeks(weeks []overtime.Week, maxWidth int) string {
	r := newRenderer(a.stdout)
	cell := r.NewStyle().Padding(0, 1)
	number := cell.Align(lipgloss.Right)

	rows := make([][]string, 0, len(weeks))
	for _, w := range weeks {
		rows = append(rows, []string{
			strconv.Itoa(w.Number),
			strconv.Itoa(w.Shifts),
			w.Worked.String(),
			w.Allowance.String(),
			w.Overtime().String(),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(tableBorder)).
		Headers("WEEK", "SHIFTS", "WORKED", "ALLOWANCE", "OVERTIME").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cell.Bold(true)
			}
			if col == colOvertime && row >= 0 && row < len(weeks) {
				if weeks[row].Overtime().IsNegative() {
					return number.Foreground(tableDeficit)
				}
				return number.Foreground(tableOvertime)
			}
			if col == colWeek || col == colShifts {
				return number
			}
			return cell
		})

	out := t.String()
	if lipgloss.Width(out) > maxWidth {
		out = t.Width(maxWidth).String()
	}
	return out
}

// weeksSummary returns the worked/allowance footer under the weeks table.
func weeksSummary(weeks []overtime.Week) string {
	var worked, allowance duration.Duration
	shifts := 0
	for _, w := range weeks {
		worked.AddAssign(w.Worked)
		allowance.AddAssign(w.Allowance)
		shifts += w.Shifts
	}
	parts := []string{
		fmt.Sprintf("%d weeks", len(weeks)),
		fmt.Sprintf("%d shifts", shifts),
		fmt.Sprintf("worked %s", worked),
		fmt.Sprintf("allowance %s", allowance),
	}
	return strings.Join(parts, "  |  ")
}
