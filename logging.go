package readably

import (
	"fmt"
	"log/slog"
)

// Logger is the optional side-channel sink the pipeline reports progress
// and recoverable problems to. Logging is best-effort: it must never affect
// control flow. WithLogger ignores a nil Logger, so the configured sink is
// never nil.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NoopLogger discards everything; it is the default when verbose_logging is
// false.
type NoopLogger struct{}

func (NoopLogger) Debugf(string, ...any) {}
func (NoopLogger) Infof(string, ...any)  {}
func (NoopLogger) Warnf(string, ...any)  {}
func (NoopLogger) Errorf(string, ...any) {}

// slogLogger adapts the four-level Logger interface onto log/slog, which
// has no Printf-style API of its own.
type slogLogger struct {
	inner *slog.Logger
}

// newSlogLogger builds the default verbose logger, writing structured
// key-free messages to the process's slog handler.
func newSlogLogger() Logger {
	return &slogLogger{inner: slog.Default()}
}

func (l *slogLogger) Debugf(format string, args ...any) {
	l.inner.Debug(sprintf(format, args...))
}

func (l *slogLogger) Infof(format string, args ...any) {
	l.inner.Info(sprintf(format, args...))
}

func (l *slogLogger) Warnf(format string, args ...any) {
	l.inner.Warn(sprintf(format, args...))
}

func (l *slogLogger) Errorf(format string, args ...any) {
	l.inner.Error(sprintf(format, args...))
}

func sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
