package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/overtime/internal/duration"
	"github.com/javiermolinar/overtime/internal/overtime"
)

func (a *App) weeksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weeks FILE",
		Short: "Show overtime week by week",
		Long: `Display a table with one row per week of the shift log: the number of
shifts, the time worked, the weekly allowance and the resulting overtime.

The last row is the week still open at the end of the file.

Example:
  overtime weeks shifts.txt --hours 38`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			weeks, err := a.weeks(args[0])
			if err != nil {
				return err
			}

			var total duration.Duration
			for _, w := range weeks {
				total.AddAssign(w.Overtime())
			}

			fmt.Fprintf(a.stdout, "\n  %s\n", formatHeader("OVERTIME BY WEEK"))
			fmt.Fprintln(a.stdout, a.renderWeeks(weeks, termWidth(a.stdout)))
			fmt.Fprintf(a.stdout, "  %s\n\n", formatMuted(weeksSummary(weeks)))
			a.printTotal(total)
			return nil
		},
	}
}

// weeks computes the per-week breakdown of the shift log at path.
func (a *App) weeks(path string) ([]overtime.Week, error) {
	agg, err := a.aggregator()
	if err != nil {
		return nil, err
	}

	in, err := a.openInput(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	return agg.Weeks(overtime.Lines(in))
}
