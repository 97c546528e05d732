package annealgo

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/annealgo/anneal"
)

// Logger wraps slog.Logger with annealgo-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithSeed adds the RNG seed field to the logger.
func (l *Logger) WithSeed(seed int64) *Logger {
	return &Logger{
		Logger: l.Logger.With("seed", seed),
	}
}

// WithLattice adds spin-count and Trotter-slice fields to the logger.
func (l *Logger) WithLattice(spins, slices int) *Logger {
	return &Logger{
		Logger: l.Logger.With("spins", spins, "slices", slices),
	}
}

// LogPreAnneal logs the classical pre-annealing stage.
func (l *Logger) LogPreAnneal(ctx context.Context, energy float64, stats anneal.Stats, err error) {
	if err != nil {
		l.ErrorContext(ctx, "pre-annealing failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "pre-annealing completed",
			"energy", energy,
			"sweeps", stats.Sweeps,
			"accepted", stats.Accepted,
			"rejected", stats.Rejected,
		)
	}
}

// LogQuantum logs the quantum Monte Carlo stage.
func (l *Logger) LogQuantum(ctx context.Context, stats anneal.Stats, err error) {
	if err != nil {
		l.ErrorContext(ctx, "quantum annealing failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "quantum annealing completed",
			"sweeps", stats.Sweeps,
			"accepted", stats.Accepted,
			"rejected", stats.Rejected,
		)
	}
}

// LogMinimize logs the end-to-end simulation outcome.
func (l *Logger) LogMinimize(ctx context.Context, energy float64, seed int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "annealing failed",
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "annealing completed",
			"energy", energy,
			"seed", seed,
		)
	}
}
