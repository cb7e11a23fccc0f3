package logger

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNew_Debug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)

	log.Debug("shift", zap.Int("line", 3), zap.String("shift", "12:00-16:00"))
	Sync(log)

	out := buf.String()
	for _, want := range []string{"DEBUG", "shift", `"line": 3`, "12:00-16:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got %q", want, out)
		}
	}
}

func TestNew_Disabled(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)

	log.Info("hidden")
	Sync(log)

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
