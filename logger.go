package richtext

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/richtext/decor"
	"github.com/gogpu/richtext/layout"
	"github.com/gogpu/richtext/scene"
	"github.com/gogpu/richtext/style"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for richtext and all its sub-packages.
// By default, richtext produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the default
// silent behavior.
//
// The logger reaches the style, layout, decor and scene packages. The font
// and raster packages do not log; they report failures as errors.
//
// Log levels used by richtext:
//   - [slog.LevelDebug]: pipeline steps, skipped passes, markup warnings
//   - [slog.LevelWarn]: spans clipped to the text, failed URL opens
//
// Example:
//
//	richtext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	style.SetLogger(l)
	layout.SetLogger(l)
	decor.SetLogger(l)
	scene.SetLogger(l)
}

// Logger returns the current logger used by richtext.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
