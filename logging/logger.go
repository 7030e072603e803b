// Package logging provides *slog.Logger functionality to budgetbox.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler backports slog.DiscardHandler (added in Go 1.24) for older
// toolchains: it discards all records and is never enabled.
type discardHandler struct{}

func (dh discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (dh discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (dh discardHandler) WithAttrs(attrs []slog.Attr) slog.Handler  { return dh }
func (dh discardHandler) WithGroup(name string) slog.Handler        { return dh }

var discardSlogHandler slog.Handler = discardHandler{}

// logger holds the package-level logger instance. Defaults to nil, which
// causes Logger() to return a discard logger.
var logger atomic.Pointer[slog.Logger]

func newDiscardLogger() *slog.Logger {
	return slog.New(discardSlogHandler)
}

// SetLogger configures the package-level logger used by the pipeline for
// warnings (missing columns, skipped assets) and debug output. Pass nil to
// disable logging.
//
// SetLogger is safe for concurrent use.
//
// Example enabling output to stderr:
//
//	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
func SetLogger(sl *slog.Logger) {
	if sl == nil {
		logger.Store(newDiscardLogger())
	} else {
		logger.Store(sl)
	}
}

// Logger returns the package-level logger. If no logger has been set via
// SetLogger, returns a discard logger.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	l := logger.Load()
	if l == nil {
		l = newDiscardLogger()
		logger.Store(l)
	}
	return l
}
