package colstore

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with colstore-specific context.
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

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithTable adds a table name field to the logger.
func (l *Logger) WithTable(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("table", name),
	}
}

// WithColumns adds a column count field to the logger.
func (l *Logger) WithColumns(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("columns", n),
	}
}

// LogGrow logs a completed growth step.
func (l *Logger) LogGrow(oldCap, newCap int, bytes int64) {
	l.Debug("columns grown",
		"old_cap", oldCap,
		"new_cap", newCap,
		"bytes", bytes,
	)
}

// LogAppendFailed logs an append or reserve that could not grow the columns.
func (l *Logger) LogAppendFailed(length, rows int, err error) {
	l.Warn("append failed",
		"len", length,
		"rows", rows,
		"error", err,
	)
}

// LogClose logs the release of a table's column storage.
func (l *Logger) LogClose(length int, bytes int64) {
	l.Debug("table closed",
		"len", length,
		"released_bytes", bytes,
	)
}
