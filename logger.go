package mstledger

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/mstledger/record"
)

// Logger wraps slog.Logger with ledger-specific helpers.
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
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithLog adds the log name field.
func (l *Logger) WithLog(name string) *Logger {
	return &Logger{Logger: l.Logger.With("log", name)}
}

// WithKind adds the record kind field.
func (l *Logger) WithKind(kind record.Kind) *Logger {
	return &Logger{Logger: l.Logger.With("kind", kind.String())}
}

// LogLoad logs a log load.
func (l *Logger) LogLoad(ctx context.Context, name string, records int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"log", name,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "load completed",
		"log", name,
		"records", records,
	)
}

// LogSave logs a log save.
func (l *Logger) LogSave(ctx context.Context, name string, records int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed",
			"log", name,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "log saved",
		"log", name,
		"records", records,
	)
}

// LogAdd logs the outcome of adding a record.
func (l *Logger) LogAdd(ctx context.Context, name string, kind record.Kind, changed bool) {
	l.DebugContext(ctx, "record added",
		"log", name,
		"kind", kind.String(),
		"changed", changed,
	)
}

// LogWarning logs a record convention deviation.
func (l *Logger) LogWarning(ctx context.Context, w record.Warning) {
	l.WarnContext(ctx, w.String(),
		"kind", w.Kind.String(),
		"field", w.Field,
		"got", w.Got,
		"want", w.Want,
	)
}

// LogLoadWarning logs a convention deviation found on a record read back
// from a log. These were reported when the record was added.
func (l *Logger) LogLoadWarning(ctx context.Context, name string, w record.Warning) {
	l.DebugContext(ctx, w.String(),
		"log", name,
		"kind", w.Kind.String(),
		"field", w.Field,
		"got", w.Got,
		"want", w.Want,
	)
}
