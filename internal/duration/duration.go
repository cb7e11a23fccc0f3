// Package duration provides a signed minute-based time span and the parser
// for the HH:MM-HH:MM shift format.
package duration

import (
	"fmt"
	"iter"
)

// MinutesPerHour is the number of minutes in an hour.
const MinutesPerHour = 60

// Duration is a signed span of minutes. Negative values represent deductions.
// The zero value is an empty span.
type Duration struct {
	minutes int
}

// Clock is a bare hour and minute pair. Neither field is range checked, so an
// hour of 25 is valid and means 1am on the following day.
type Clock struct {
	Hour   int
	Minute int
}

// FromMinutes wraps a raw minute count.
func FromMinutes(minutes int) Duration {
	return Duration{minutes: minutes}
}

// FromHours converts whole hours to a Duration.
func FromHours(hours int) Duration {
	return Duration{minutes: hours * MinutesPerHour}
}

// FromStartToEnd returns the span between two clock times. It performs no
// midnight adjustment; callers must ensure end is not before start.
func FromStartToEnd(start, end Clock) Duration {
	return Duration{
		minutes: (end.Hour-start.Hour)*MinutesPerHour + (end.Minute - start.Minute),
	}
}

// Minutes returns the signed minute count.
func (d Duration) Minutes() int {
	return d.minutes
}

// IsNegative reports whether d is below zero.
func (d Duration) IsNegative() bool {
	return d.minutes < 0
}

// Neg returns d with its sign flipped.
func (d Duration) Neg() Duration {
	return Duration{minutes: -d.minutes}
}

// Add returns the sum of d and other.
func (d Duration) Add(other Duration) Duration {
	return Duration{minutes: d.minutes + other.minutes}
}

// AddAssign accumulates other into d.
func (d *Duration) AddAssign(other Duration) {
	d.minutes += other.minutes
}

// HoursMinutes splits d using truncated division, so both parts carry the
// sign of d: -75 minutes is (-1, -15).
func (d Duration) HoursMinutes() (hours, minutes int) {
	return d.minutes / MinutesPerHour, d.minutes % MinutesPerHour
}

// String formats d as "{h}h{m}m". A negative span gets a single leading
// minus sign: -75 minutes is "-1h15m" and -30 minutes is "-0h30m".
func (d Duration) String() string {
	if d.minutes < 0 {
		hours, minutes := d.Neg().HoursMinutes()
		return fmt.Sprintf("-%dh%dm", hours, minutes)
	}
	hours, minutes := d.HoursMinutes()
	return fmt.Sprintf("%dh%dm", hours, minutes)
}

// Sum folds durations left to right starting from zero.
func Sum(durations ...Duration) Duration {
	var total Duration
	for _, d := range durations {
		total.AddAssign(d)
	}
	return total
}

// SumSeq folds a sequence of durations left to right starting from zero.
func SumSeq(seq iter.Seq[Duration]) Duration {
	var total Duration
	for d := range seq {
		total.AddAssign(d)
	}
	return total
}
