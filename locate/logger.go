package locate

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with the engine's field names.
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

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// LogRecyclingMismatch logs a tolerated recycling mismatch.
func (l *Logger) LogRecyclingMismatch(mode Mode, subjects, patterns, length int) {
	l.Warn("longer object length is not a multiple of shorter object length",
		"mode", mode.String(),
		"subjects", subjects,
		"patterns", patterns,
		"length", length,
	)
}

// LogLocate logs a finished call.
func (l *Logger) LogLocate(mode Mode, length, matches, workers int, elapsed time.Duration, err error) {
	if err != nil {
		l.Error("locate failed",
			"mode", mode.String(),
			"error", err,
		)
		return
	}
	l.Debug("locate completed",
		"mode", mode.String(),
		"length", length,
		"matches", matches,
		"workers", workers,
		"elapsed", elapsed,
	)
}
