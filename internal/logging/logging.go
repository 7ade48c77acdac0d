package logging

import (
	"io"
	"log/slog"
)

const redactedPlaceholder = "[redacted]"

// Logger is the subset of slog used across the module.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// FromSlog wraps logger. Passing nil binds to slog.Default().
func FromSlog(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogLogger{logger: logger}
}

// Discard returns a Logger that drops everything.
func Discard() Logger {
	return &slogLogger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }

func (l *slogLogger) Info(msg string, args ...any) { l.logger.Info(msg, args...) }

func (l *slogLogger) Warn(msg string, args ...any) { l.logger.Warn(msg, args...) }

func (l *slogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

// Redacted returns an attribute whose value is replaced by a placeholder.
func Redacted(key string) slog.Attr {
	return slog.String(key, redactedPlaceholder)
}

// Placeholder is the string Redacted logs in place of a value.
func Placeholder() string {
	return redactedPlaceholder
}
