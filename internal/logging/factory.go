package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/natefinch/lumberjack"

	"zrsa/internal/config"
)

// New builds a Logger from settings.
func New(settings *config.LoggerSettings) (Logger, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	switch settings.LogType {
	case config.LogTypeConsole:
		return NewConsole(os.Stderr, settings.LogLevel), nil
	case config.LogTypeFile:
		return NewFile(settings.LogLevel, settings.FilePath, settings.MaxSize, settings.MaxBackups, settings.MaxAge), nil
	default:
		return nil, fmt.Errorf("unsupported log type: %s", settings.LogType)
	}
}

// NewConsole writes text records to w.
func NewConsole(w io.Writer, level string) Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return FromSlog(slog.New(handler))
}

// NewFile writes JSON records to a rotated file.
func NewFile(level, filePath string, maxSize, maxBackups, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}
	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: parseLevel(level)})
	return FromSlog(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelInfo:
		return slog.LevelInfo
	case config.LogLevelWarning:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
