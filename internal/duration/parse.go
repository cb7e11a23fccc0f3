package duration

import "fmt"

// ParseError reports a shift that does not look like HH:MM-HH:MM.
type ParseError struct {
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Expected shift: %s to be formated like 12:30-17:00", e.Text)
}

// separators between the four numeric fields of a shift.
const separators = ":-:"

// Parse converts a shift such as "12:30-17:00" into a Duration.
//
// The shift may appear anywhere in text; the leftmost match wins and each
// field takes two digits when it can. Fields are not range checked. When the
// start hour is after the end hour the shift is taken to cross midnight once.
func Parse(text string) (Duration, error) {
	fields, ok := findShift(text)
	if !ok {
		return Duration{}, &ParseError{Text: text}
	}

	start := Clock{Hour: fields[0], Minute: fields[1]}
	end := Clock{Hour: fields[2], Minute: fields[3]}
	if start.Hour > end.Hour {
		end.Hour += 24
	}
	return FromStartToEnd(start, end), nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// constants.
func MustParse(text string) Duration {
	d, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return d
}

// findShift returns the four fields of the leftmost shift in s.
func findShift(s string) ([4]int, bool) {
	var fields [4]int
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			continue
		}
		if scanFields(s, i, 0, &fields) {
			return fields, true
		}
	}
	return fields, false
}

// scanFields matches fields n..3 starting at pos, trying two-digit fields
// before one-digit ones and backtracking when the rest does not match.
func scanFields(s string, pos, n int, fields *[4]int) bool {
	if n == len(fields) {
		return true
	}
	for width := 2; width >= 1; width-- {
		end := pos + width
		if end > len(s) || !allDigits(s[pos:end]) {
			continue
		}
		next := end
		if n < len(separators) {
			if next >= len(s) || s[next] != separators[n] {
				continue
			}
			next++
		}
		fields[n] = atoi(s[pos:end])
		if scanFields(s, next, n+1, fields) {
			return true
		}
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// atoi converts at most two ASCII digits; callers check allDigits first.
func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
