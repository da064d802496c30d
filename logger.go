package upsample

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled reports false so slog skips
// attribute evaluation and the disabled logger costs a pointer load.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func newDiscardLogger() *slog.Logger { return slog.New(discardHandler{}) }

// activeLogger holds the logger installed with SetLogger.
var activeLogger atomic.Pointer[slog.Logger]

func init() {
	activeLogger.Store(newDiscardLogger())
}

// SetLogger installs the logger used by upsample. The package is silent
// until SetLogger is called with a non-nil logger; passing nil silences it
// again. SetLogger may be called concurrently with upsampling.
//
// Everything is logged at [slog.LevelDebug]: rejected geometries, doubled
// plane sizes and reconstructed chroma planes.
//
// Example:
//
//	upsample.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newDiscardLogger()
	}
	activeLogger.Store(l)
}

// Logger returns the logger currently installed with SetLogger.
func Logger() *slog.Logger {
	return activeLogger.Load()
}
