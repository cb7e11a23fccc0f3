package overtime

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"
	"unicode/utf8"
)

// maxLineLength bounds a single input line.
const maxLineLength = 1 << 20

// ErrInvalidUTF8 is yielded by Lines for a line that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("line is not valid UTF-8")

// Lines returns the lines of r without their "\n" or "\r\n" terminators.
// A line that is not valid UTF-8 or a failing reader ends the sequence with
// an error.
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
		for scanner.Scan() {
			line := scanner.Text()
			if !utf8.ValidString(line) {
				yield("", ErrInvalidUTF8)
				return
			}
			if !yield(line, nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield("", err)
		}
	}
}

// StringLines splits s into lines the same way Lines splits a reader.
func StringLines(s string) iter.Seq2[string, error] {
	return Lines(strings.NewReader(s))
}

// Tokenize splits a line into shift tokens. Comment lines starting with "#"
// or "//" yield no tokens. A blank line yields a single empty token, which
// marks a week boundary.
func Tokenize(line string) []string {
	line = strings.TrimSpace(line)
	if isComment(line) {
		return nil
	}
	pieces := strings.Split(line, "/")
	for i, p := range pieces {
		pieces[i] = strings.TrimSpace(p)
	}
	return pieces
}

func isComment(line string) bool {
	return strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//")
}
