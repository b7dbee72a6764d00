// Package logging wraps log/slog for bloop. Logs go to a rotated file or
// nowhere: a terminal UI owns stdout, so nothing is ever written there.
package logging

import (
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog.Logger
type Logger struct {
	logger *slog.Logger
}

// LogFormat represents the output format for logs
type LogFormat string

const (
	// FormatText outputs human-readable text logs
	FormatText LogFormat = "text"
	// FormatJSON outputs structured JSON logs
	FormatJSON LogFormat = "json"
)

// Default rotation limits
const (
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 3
)

// Config holds configuration for logger initialization
type Config struct {
	// FilePath is the path to the log file (empty = no logging)
	FilePath string
	// Level is the minimum log level
	Level slog.Level
	// Format is the output format (text or json)
	Format LogFormat
	// MaxSizeMB is the size in MB that triggers rotation
	MaxSizeMB int
	// MaxBackups is the number of rotated files to keep
	MaxBackups int
}

var (
	globalLogger *Logger
	noopLogger   = &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
)

// Init sets up the global logger. An empty FilePath disables logging.
func Init(config Config) error {
	if config.FilePath == "" {
		globalLogger = noopLogger
		return nil
	}
	if config.MaxSizeMB < 0 || config.MaxBackups < 0 {
		return fmt.Errorf("invalid log rotation: size %dMB, backups %d", config.MaxSizeMB, config.MaxBackups)
	}
	if config.MaxSizeMB == 0 {
		config.MaxSizeMB = DefaultMaxSizeMB
	}
	if config.MaxBackups == 0 {
		config.MaxBackups = DefaultMaxBackups
	}

	writer := &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		Compress:   true,
	}

	globalLogger = New(writer, config.Level, config.Format)
	return nil
}

// New builds a logger writing to w. Tests use it with a buffer.
func New(w io.Writer, level slog.Level, format LogFormat) *Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return &Logger{logger: slog.New(handler)}
}

// SetGlobal replaces the global logger. Passing nil disables logging.
func SetGlobal(l *Logger) {
	globalLogger = l
}

// Get returns the global logger, or a noop logger before Init.
func Get() *Logger {
	if globalLogger == nil {
		return noopLogger
	}
	return globalLogger
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// With returns a Logger that adds args to every record
func (l *Logger) With(args ...any) *Logger {
	if l == noopLogger {
		return l
	}
	return &Logger{logger: l.logger.With(args...)}
}

// IsEnabled returns false for the noop logger
func (l *Logger) IsEnabled() bool {
	return l != noopLogger
}

// Debug logs a debug message using the global logger
func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

// Info logs an info message using the global logger
func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

// Error logs an error message using the global logger
func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

// IsEnabled returns true if logging is enabled globally
func IsEnabled() bool {
	return Get().IsEnabled()
}

// ParseLevel converts a string to slog.Level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseFormat converts a string to LogFormat, defaulting to text
func ParseFormat(format string) LogFormat {
	if format == string(FormatJSON) {
		return FormatJSON
	}
	return FormatText
}
