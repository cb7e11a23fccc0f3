// Package overtime folds a log of shift lines into net overtime.
//
// Every shift adds its duration. Every week boundary, either a blank line or
// the end of input, subtracts the weekly allowance once, so a log with N
// blank lines is charged N+1 allowances.
package overtime

import (
	"iter"

	"go.uber.org/zap"

	"github.com/javiermolinar/overtime/internal/duration"
)

// DefaultWeeklyHours is the weekly allowance used when none is configured.
const DefaultWeeklyHours = 10

// ReadError reports a line that could not be read from the input.
type ReadError struct {
	Line int
	Err  error
}

func (e *ReadError) Error() string {
	return "Error occurred while trying to read a line from file"
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Week is the group of shifts between two week boundaries.
type Week struct {
	Number    int
	Shifts    int
	Worked    duration.Duration
	Allowance duration.Duration
}

// Overtime returns the worked time minus the allowance.
func (w Week) Overtime() duration.Duration {
	return w.Worked.Add(w.Allowance.Neg())
}

// Aggregator computes overtime for a fixed weekly allowance.
type Aggregator struct {
	allowance duration.Duration
	log       *zap.Logger
}

// New creates an Aggregator. A nil logger disables logging.
func New(allowance duration.Duration, log *zap.Logger) *Aggregator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Aggregator{allowance: allowance, log: log}
}

// Allowance returns the weekly allowance charged at each boundary.
func (a *Aggregator) Allowance() duration.Duration {
	return a.allowance
}

// Aggregate returns the net overtime of lines with weeklyAllowanceMinutes
// deducted at every week boundary.
func Aggregate(lines iter.Seq2[string, error], weeklyAllowanceMinutes int) (duration.Duration, error) {
	return New(duration.FromMinutes(weeklyAllowanceMinutes), nil).Total(lines)
}

// Total folds every shift and every weekly deduction into one Duration.
// The first unreadable line or malformed shift aborts the fold.
func (a *Aggregator) Total(lines iter.Seq2[string, error]) (duration.Duration, error) {
	var failed error
	total := duration.SumSeq(func(yield func(duration.Duration) bool) {
		for tok, err := range a.tokens(lines) {
			if err != nil {
				failed = err
				return
			}
			d, err := a.resolve(tok)
			if err != nil {
				failed = err
				return
			}
			if !yield(d) {
				return
			}
		}
	})
	if failed != nil {
		return duration.Duration{}, failed
	}

	a.log.Info("overtime computed",
		zap.Int("minutes", total.Minutes()),
		zap.Stringer("total", total),
	)
	return total, nil
}

// Weeks returns one Week per boundary, in input order. The overtime of all
// weeks sums to Total.
func (a *Aggregator) Weeks(lines iter.Seq2[string, error]) ([]Week, error) {
	var weeks []Week
	current := Week{Number: 1, Allowance: a.allowance}
	for tok, err := range a.tokens(lines) {
		if err != nil {
			return nil, err
		}
		d, err := a.resolve(tok)
		if err != nil {
			return nil, err
		}
		if tok.isBoundary() {
			weeks = append(weeks, current)
			current = Week{Number: len(weeks) + 1, Allowance: a.allowance}
			continue
		}
		current.Worked.AddAssign(d)
		current.Shifts++
	}
	return weeks, nil
}

// resolve maps a token to its contribution to the total.
func (a *Aggregator) resolve(tok token) (duration.Duration, error) {
	if tok.isBoundary() {
		a.log.Debug("weekly deduction",
			zap.Int("line", tok.line),
			zap.Bool("end_of_input", tok.final),
			zap.Int("minutes", a.allowance.Neg().Minutes()),
		)
		return a.allowance.Neg(), nil
	}
	d, err := duration.Parse(tok.text)
	if err != nil {
		a.log.Debug("invalid shift", zap.Int("line", tok.line), zap.String("shift", tok.text))
		return duration.Duration{}, err
	}
	a.log.Debug("shift",
		zap.Int("line", tok.line),
		zap.String("shift", tok.text),
		zap.Int("minutes", d.Minutes()),
	)
	return d, nil
}
