package glcompat

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled is false at all levels, so reject
// never builds the attributes of a Warn that nobody reads.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the logger of contexts built without WithLogger. It is
// read on every rejected call, possibly from another goroutine than the
// one calling SetLogger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger sets the logger shared by every Context that has no logger of
// its own. A nil l silences them again, which is also the initial state.
// SetLogger may be called concurrently with entry points.
//
// Records carry an op attribute naming the GL entry point:
//   - [slog.LevelWarn]: a call was rejected; code holds the GL error
//   - [slog.LevelDebug]: a buffer object was mirrored into, updated in or
//     released from the native backend
//
// To see rejected calls on stderr:
//
//	glcompat.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelWarn,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
