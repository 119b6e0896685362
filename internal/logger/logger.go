// Package logger provides the global structured logger for Vellum.
//
// The editor owns the terminal, so logs never go to stdout or stderr; they
// are written as JSON to a rotating file under ~/.config/vellum.
package logger

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Log is the global structured logger.
	Log *slog.Logger
	// logWriter is the rotating log writer.
	logWriter *lumberjack.Logger
	// LogPath is the path to the current log file.
	LogPath string
)

// LogLevel represents the logging level.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a config string to a LogLevel. Unknown values fall back
// to info.
func ParseLevel(s string) LogLevel {
	switch s {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Init initializes the global logger with the specified level and optional
// path. If logPath is empty, defaults to ~/.config/vellum/vellum.log.
func Init(level LogLevel, logPath string) {
	var slogLevel slog.Level
	switch level {
	case LevelDebug:
		slogLevel = slog.LevelDebug
	case LevelInfo:
		slogLevel = slog.LevelInfo
	case LevelWarn:
		slogLevel = slog.LevelWarn
	case LevelError:
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	if logPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.TempDir()
		}
		logDir := filepath.Join(homeDir, ".config", "vellum")
		_ = os.MkdirAll(logDir, 0755)
		logPath = filepath.Join(logDir, "vellum.log")
	}

	LogPath = logPath

	logWriter = &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   true,
	}

	handler := slog.NewJSONHandler(logWriter, &slog.HandlerOptions{Level: slogLevel})
	Log = slog.New(handler)
	slog.SetDefault(Log)
}

// Close closes the log file.
func Close() {
	if logWriter != nil {
		logWriter.Close()
	}
}

// getLogger returns the global logger, or the default slog logger if not
// initialized.
func getLogger() *slog.Logger {
	if Log != nil {
		return Log
	}
	return slog.Default()
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	getLogger().Debug(msg, args...)
}

// Info logs an info message.
func Info(msg string, args ...any) {
	getLogger().Info(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	getLogger().Warn(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	getLogger().Error(msg, args...)
}

// With creates a new logger with additional attributes.
func With(args ...any) *slog.Logger {
	return getLogger().With(args...)
}
