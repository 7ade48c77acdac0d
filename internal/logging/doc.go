// Package logging is a small structured logging facade over log/slog.
//
// Loggers are built from config.LoggerSettings by New: the console type
// writes text records to stderr, the file type writes JSON records through a
// size-rotated lumberjack writer. Values that must never reach a log line,
// such as private exponents and prime factors, are logged with Redacted.
package logging
