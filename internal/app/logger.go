package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/creditodds/creditodds-api/internal/config"
)

const serviceName = "creditodds-api"

// NewLogger builds the process logger from cfg, writing to stderr, and
// installs it as the slog default.
//
// Format "json" is meant for production; anything else selects the text
// handler with source locations. Every record carries the service name.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !isJSON(cfg.Format),
	}

	var handler slog.Handler
	if isJSON(cfg.Format) {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With(slog.String("service", serviceName))
}

func isJSON(format string) bool {
	return strings.EqualFold(strings.TrimSpace(format), "json")
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
