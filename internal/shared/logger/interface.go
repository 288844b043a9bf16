package logger

import "log/slog"

// Interface is the logging surface the rest of the codebase depends
// on. The w-variants take alternating key/value pairs, slog style.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	With(args ...any) Interface
	Named(name string) Interface

	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	Fatalw(msg string, keysAndValues ...interface{})
}

// slogAdapter backs Interface with a *slog.Logger.
type slogAdapter struct {
	base *slog.Logger
}

// NewLogger returns an Interface over the process-wide slog logger.
// Safe to call before Init; the default handler is used until then.
func NewLogger() Interface {
	return &slogAdapter{base: Get()}
}

// NewLoggerWithSlog wraps an explicit slog logger, used by tests that
// want to capture output.
func NewLoggerWithSlog(slogLog *slog.Logger) Interface {
	return &slogAdapter{base: slogLog}
}

func (l *slogAdapter) Debug(msg string, args ...any) { l.base.Debug(msg, args...) }
func (l *slogAdapter) Info(msg string, args ...any)  { l.base.Info(msg, args...) }
func (l *slogAdapter) Warn(msg string, args ...any)  { l.base.Warn(msg, args...) }
func (l *slogAdapter) Error(msg string, args ...any) { l.base.Error(msg, args...) }

// Fatal logs at error level and panics so deferred cleanup still runs.
func (l *slogAdapter) Fatal(msg string, args ...any) {
	l.base.Error(msg, args...)
	panic("fatal error")
}

func (l *slogAdapter) With(args ...any) Interface {
	return &slogAdapter{base: l.base.With(args...)}
}

func (l *slogAdapter) Named(name string) Interface {
	return &slogAdapter{base: l.base.With("logger", name)}
}

func (l *slogAdapter) Debugw(msg string, keysAndValues ...interface{}) {
	l.base.Debug(msg, keysAndValues...)
}

func (l *slogAdapter) Infow(msg string, keysAndValues ...interface{}) {
	l.base.Info(msg, keysAndValues...)
}

func (l *slogAdapter) Warnw(msg string, keysAndValues ...interface{}) {
	l.base.Warn(msg, keysAndValues...)
}

func (l *slogAdapter) Errorw(msg string, keysAndValues ...interface{}) {
	l.base.Error(msg, keysAndValues...)
}

func (l *slogAdapter) Fatalw(msg string, keysAndValues ...interface{}) {
	l.base.Error(msg, keysAndValues...)
	panic("fatal error")
}
