package config

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger builds a slog.Logger from the logging configuration. Unknown
// values fall back to the defaults; Load has already validated them.
func NewLogger(cfg LoggingConfig) *slog.Logger {
	var level slog.Level

	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var sink io.Writer

	switch cfg.Output {
	case "stdout":
		sink = os.Stdout
	case "discard":
		sink = io.Discard
	default:
		sink = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(sink, opts))
	}

	return slog.New(slog.NewTextHandler(sink, opts))
}
