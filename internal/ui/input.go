package ui

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// stdinPath is the FILE argument that selects standard input.
const stdinPath = "-"

// openInput opens the shift log at path. The caller closes it.
func (a *App) openInput(path string) (io.ReadCloser, error) {
	if path == stdinPath {
		a.log.Debug("reading shifts", zap.String("source", "stdin"))
		return io.NopCloser(a.stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Couldn't access file %s due to %w", path, err)
	}
	a.log.Debug("reading shifts", zap.String("source", path))
	return f, nil
}
