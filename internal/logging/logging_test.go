package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zrsa/internal/config"
)

func TestConsoleLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsole(&buf, config.LogLevelInfo)

	logger.Debug("debug message")
	logger.Info("info message", "bits", 31)
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "bits=31")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestRedacted(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsole(&buf, config.LogLevelDebug)

	logger.Debug("keypair generated", "e", "23", Redacted("d"))

	assert.Contains(t, buf.String(), "e=23")
	assert.Contains(t, buf.String(), "d="+Placeholder())
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsole(&buf, config.LogLevelInfo).With("session", "abc")

	logger.Info("new keypair")
	assert.Contains(t, buf.String(), "session=abc")
}

func TestDiscard(t *testing.T) {
	require.NotPanics(t, func() {
		l := Discard()
		l.Error("dropped")
		l.With("k", "v").Info("dropped")
	})
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		settings *config.LoggerSettings
		wantErr  bool
	}{
		{
			name:     "console logger",
			settings: &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole},
		},
		{
			name:     "invalid log level",
			settings: &config.LoggerSettings{LogLevel: "verbose", LogType: config.LogTypeConsole},
			wantErr:  true,
		},
		{
			name:     "unsupported log type",
			settings: &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: "unknown"},
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.settings)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, logger)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zrsa.log")
	logger, err := New(&config.LoggerSettings{
		LogLevel:   config.LogLevelInfo,
		LogType:    config.LogTypeFile,
		FilePath:   path,
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	})
	require.NoError(t, err)

	logger.Info("written to file", "fingerprint", "deadbeef")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"written to file"`)
	assert.Contains(t, string(data), `"fingerprint":"deadbeef"`)
}
