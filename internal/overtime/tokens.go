package overtime

import (
	"iter"

	"go.uber.org/zap"
)

// token is one shift token together with the line it came from.
type token struct {
	line  int
	text  string
	final bool // boundary appended after the last line
}

func (t token) isBoundary() bool {
	return t.text == ""
}

// tokens flattens lines into shift tokens and appends the boundary of the
// trailing open week. A read error is yielded once and ends the sequence.
func (a *Aggregator) tokens(lines iter.Seq2[string, error]) iter.Seq2[token, error] {
	return func(yield func(token, error) bool) {
		n := 0
		for line, err := range lines {
			n++
			if err != nil {
				a.log.Debug("read failed", zap.Int("line", n), zap.Error(err))
				yield(token{}, &ReadError{Line: n, Err: err})
				return
			}
			shifts := Tokenize(line)
			a.log.Debug("line", zap.Int("line", n), zap.Int("tokens", len(shifts)))
			for _, text := range shifts {
				if !yield(token{line: n, text: text}, nil) {
					return
				}
			}
		}
		yield(token{line: n, final: true}, nil)
	}
}
