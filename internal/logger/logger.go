// Package logger builds the zap logger used for --debug output.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger at debug level writing to w when debug is
// set, and a no-op logger otherwise. A nil w means stderr.
func New(w io.Writer, debug bool) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	if w == nil {
		w = os.Stderr
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(zap.DebugLevel),
	)
	return zap.New(core)
}

// Sync flushes l, ignoring the errors stderr returns on some platforms.
func Sync(l *zap.Logger) {
	_ = l.Sync()
}
