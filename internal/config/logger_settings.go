package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Log level constants
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// LoggerSettings selects the log backend and its rotation parameters.
type LoggerSettings struct {
	LogLevel   string `validate:"required,oneof=debug info warning error"`
	LogType    string `validate:"required,oneof=console file"`
	FilePath   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
}

// DefaultLoggerSettings logs warnings and above to the console.
func DefaultLoggerSettings() *LoggerSettings {
	return &LoggerSettings{
		LogLevel: LogLevelWarning,
		LogType:  LogTypeConsole,
	}
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	if s.LogType == LogTypeFile {
		if s.FilePath == "" {
			return fmt.Errorf("file path is required for file logger")
		}
		if s.MaxSize < 1 || s.MaxSize > 100 {
			return fmt.Errorf("max size must be between 1 and 100 MB")
		}
		if s.MaxBackups < 1 || s.MaxBackups > 10 {
			return fmt.Errorf("max backups must be between 1 and 10")
		}
		if s.MaxAge < 1 || s.MaxAge > 365 {
			return fmt.Errorf("max age must be between 1 and 365 days")
		}
	}

	return nil
}
