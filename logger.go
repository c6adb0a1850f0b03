package randword

import (
	"log/slog"
	"os"
	"sync/atomic"
)

// Logger wraps slog.Logger with randword-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithLang adds a language code field to the logger.
func (l *Logger) WithLang(code string) *Logger {
	return &Logger{
		Logger: l.Logger.With("lang", code),
	}
}

// LogLoad logs a corpus load plus index build for one language.
func (l *Logger) LogLoad(code string, words int, elapsedMillis int64) {
	l.Debug("corpus loaded",
		"lang", code,
		"words", words,
		"elapsed_ms", elapsedMillis,
	)
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(NewLogger(nil))
}

// SetLogger replaces the package logger used for load/build events.
// Passing nil restores the default text logger.
func SetLogger(l *Logger) {
	if l == nil {
		l = NewLogger(nil)
	}
	defaultLogger.Store(l)
}

func logger() *Logger {
	return defaultLogger.Load()
}
