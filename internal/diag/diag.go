// Package diag carries the non-fatal diagnostics channel shared by the
// styled packages.
//
// Diagnostics are compiled in by default. Building with the
// styled_production tag sets Enabled to false, which lets the compiler drop
// every guarded check and warning.
package diag

import (
	"os"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

var logger atomic.Pointer[log.Logger]

func init() {
	logger.Store(log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "styled",
		Level:  log.WarnLevel,
	}))
}

// SetLogger replaces the diagnostics logger. A nil logger is ignored.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger.Store(l)
	}
}

// Logger returns the current diagnostics logger.
func Logger() *log.Logger {
	return logger.Load()
}

// Warn reports a usage warning. It is a no-op in production builds.
func Warn(msg string, keyvals ...any) {
	if !Enabled {
		return
	}
	logger.Load().Warn(msg, keyvals...)
}
