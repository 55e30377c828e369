package logging

import (
	"io"
	"log/slog"
	"strings"
)

type Options struct {
	Service string
	Level   string
	Format  string // "text" or "json"
}

// New builds the application logger. Output goes to w (stderr for the CLI so
// command output on stdout stays clean).
func New(w io.Writer, opts Options) *slog.Logger {
	level := parseLevel(opts.Level)

	var h slog.Handler
	if strings.EqualFold(opts.Format, "json") {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	}

	return slog.New(h).With("service", opts.Service)
}

func parseLevel(lvl string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
