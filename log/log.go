package log

import (
	"log/slog"
	"os"
	"sync/atomic"
)

// Loggable is implemented by every package-level object that wants to
// identify itself in a log line (the forwarder, an app handle, a face).
type Loggable interface {
	String() string
}

var handler atomic.Pointer[slog.Logger]

func init() {
	SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))
}

// SetDefault replaces the backing slog.Logger used by every call-site
// function below.
func SetDefault(l *slog.Logger) {
	handler.Store(l)
}

// SetLevel adjusts the minimum level of the default handler.
func SetLevel(level Level) {
	SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.Level(level)})))
}

// Default returns the current backing slog.Logger.
func Default() *slog.Logger {
	return handler.Load()
}

func args(obj Loggable, kv []any) []any {
	out := make([]any, 0, len(kv)+2)
	out = append(out, "obj", obj.String())
	out = append(out, kv...)
	return out
}

// Trace logs at ndnlite's TRACE level (normal packet flow) - below
// slog's own Debug, so it is silent unless explicitly enabled.
func Trace(obj Loggable, msg string, kv ...any) {
	Default().Log(nil, slog.Level(LevelTrace), msg, args(obj, kv)...)
}

// Debug logs at DEBUG.
func Debug(obj Loggable, msg string, kv ...any) {
	Default().Debug(msg, args(obj, kv)...)
}

// Info logs at INFO.
func Info(obj Loggable, msg string, kv ...any) {
	Default().Info(msg, args(obj, kv)...)
}

// Warn logs at WARN - the level used for every silently-dropped packet
// (malformed input, NoRoute, LifetimeOverflow, MailboxFull).
func Warn(obj Loggable, msg string, kv ...any) {
	Default().Warn(msg, args(obj, kv)...)
}

// Error logs at ERROR - reserved for bugs and unexpected conditions, not
// for ordinary protocol-level drops.
func Error(obj Loggable, msg string, kv ...any) {
	Default().Error(msg, args(obj, kv)...)
}

// Fatal logs at FATAL and exits the process.
func Fatal(obj Loggable, msg string, kv ...any) {
	Default().Log(nil, slog.Level(LevelFatal), msg, args(obj, kv)...)
	os.Exit(1)
}
