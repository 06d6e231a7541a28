package pathfill

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for pathfill and its sub-packages.
// By default, pathfill produces no log output. Call SetLogger to enable
// logging. The fill-test hot path never logs; only dispatch-level code
// (the render package) emits records, at [slog.LevelDebug].
//
// SetLogger is safe for concurrent use: it stores the new logger
// atomically. Pass nil to disable logging (restore default silent
// behavior).
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by pathfill. Sub-packages call
// this to share the same logger configuration without introducing import
// cycles.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
