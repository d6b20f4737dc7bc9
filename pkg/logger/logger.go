package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New returns a logger writing to stdout. Production uses JSON records, any
// other NODE_ENV value (including unset) uses text.
func New(lvl string, addSource bool, nodeEnv string) *slog.Logger {
	return NewWithWriter(os.Stdout, lvl, addSource, nodeEnv)
}

func NewWithWriter(w io.Writer, lvl string, addSource bool, nodeEnv string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(lvl),
		AddSource: addSource,
	}

	var handler slog.Handler
	if strings.ToLower(nodeEnv) == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	if nodeEnv == "" {
		return slog.New(handler)
	}

	return slog.New(handler).With(
		slog.String("environment", nodeEnv),
	)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
