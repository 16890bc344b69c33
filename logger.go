package indexical

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with indexical-specific context.
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
// It is the default for every constructor in this package.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithCapacity adds a capacity field to the logger.
func (l *Logger) WithCapacity(capacity int) *Logger {
	return &Logger{
		Logger: l.Logger.With("capacity", capacity),
	}
}

// LogDomainGrowth logs a domain growing past a capacity frozen into a set.
func (l *Logger) LogDomainGrowth(frozen, length int) {
	l.Warn("domain grew past frozen set capacity; existing sets are stale",
		"frozen", frozen,
		"len", length,
	)
}

// LogRowMaterialized logs the first reference to a matrix row.
func (l *Logger) LogRowMaterialized(row any, rows int) {
	l.Debug("matrix row materialized",
		"row", row,
		"rows", rows,
	)
}

// LogSolve logs the outcome of a fixpoint solve.
func (l *Logger) LogSolve(ctx context.Context, nodes, iterations int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "solve failed",
			"nodes", nodes,
			"iterations", iterations,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "solve completed",
			"nodes", nodes,
			"iterations", iterations,
		)
	}
}
