package components

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with the field names the runner uses.
type Logger struct {
	*slog.Logger
}

// NewLogger writes text or JSON records at or above level to stderr.
func NewLogger(level slog.Level, json bool) *Logger {
	return NewLoggerTo(os.Stderr, level, json)
}

func NewLoggerTo(w io.Writer, level slog.Level, json bool) *Logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return NewLoggerTo(io.Discard, slog.Level(1000), false)
}

// WithScenario returns a logger tagging every record with the scenario.
func (l *Logger) WithScenario(sc Scenario) *Logger {
	return &Logger{Logger: l.With(
		slog.String("scenario", sc.Name),
		slog.String("kind", string(sc.Kind)),
		slog.String("storage", string(sc.Storage)),
	)}
}
