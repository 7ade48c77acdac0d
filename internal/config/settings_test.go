package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *LoggerSettings
		expectedError bool
	}{
		{
			name:     "valid console logger",
			settings: &LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole},
		},
		{
			name: "valid file logger with rotation",
			settings: &LoggerSettings{
				LogLevel:   LogLevelDebug,
				LogType:    LogTypeFile,
				FilePath:   "/path/to/log/file",
				MaxSize:    10,
				MaxBackups: 3,
				MaxAge:     28,
			},
		},
		{
			name:          "missing log level",
			settings:      &LoggerSettings{LogType: LogTypeConsole},
			expectedError: true,
		},
		{
			name:          "invalid log type",
			settings:      &LoggerSettings{LogLevel: LogLevelInfo, LogType: "syslog"},
			expectedError: true,
		},
		{
			name:          "file logger without path",
			settings:      &LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeFile, MaxSize: 10, MaxBackups: 3, MaxAge: 28},
			expectedError: true,
		},
		{
			name: "file logger with oversized rotation",
			settings: &LoggerSettings{
				LogLevel: LogLevelInfo, LogType: LogTypeFile, FilePath: "app.log",
				MaxSize: 500, MaxBackups: 3, MaxAge: 28,
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultLoggerSettings(t *testing.T) {
	s := DefaultLoggerSettings()
	assert.NoError(t, s.Validate())
	assert.Equal(t, LogTypeConsole, s.LogType)
}

func TestKeySettingsValidation(t *testing.T) {
	valid := KeySettings{PrimeBound: 50000, IndexOffset: 1000, ExponentBase: 23, MaxExponentSteps: 1024}
	assert.NoError(t, valid.Validate())

	offsetPastBound := valid
	offsetPastBound.IndexOffset = 60000
	assert.Error(t, offsetPastBound.Validate())

	hugeBound := valid
	hugeBound.PrimeBound = 5_000_000
	assert.Error(t, hugeBound.Validate())

	smallBase := valid
	smallBase.ExponentBase = 1
	assert.Error(t, smallBase.Validate())
}

func TestHistorySettings(t *testing.T) {
	s := &HistorySettings{}
	assert.False(t, s.Enabled())
	assert.NoError(t, s.Validate())

	s.Path = DefaultHistoryPath
	assert.True(t, s.Enabled())

	s.Limit = -1
	assert.Error(t, s.Validate())
}
