// Package logging builds the process logger.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// ServiceName is attached to every record as the "service" attribute.
const ServiceName = "shift-roster"

// New returns a logger writing to output. format is "json" or "text"
// (anything else means text); level is debug, info, warn or error.
func New(level, format string, output io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler.WithAttrs([]slog.Attr{
		slog.String("service", ServiceName),
	}))
}

// ParseLevel converts a level name to slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
