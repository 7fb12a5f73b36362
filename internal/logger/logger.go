package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// LogLevel represents the available log levels
type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

// Config holds logger configuration
type Config struct {
	Level  LogLevel
	Output io.Writer
	// Color forces coloured level tags on or off. When nil, colour is used
	// only if Output is a terminal.
	Color *bool
}

// New creates a slog.Logger writing "[LEVEL] message key=value" lines.
func New(config Config) *slog.Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}

	colored := isTerminal(config.Output)
	if config.Color != nil {
		colored = *config.Color
	}

	handler := &Handler{
		mu:     &sync.Mutex{},
		output: config.Output,
		level:  ParseLevel(string(config.Level)),
	}
	if colored {
		handler.palette = newPalette()
	}
	return slog.New(handler)
}

// ParseLevel maps a level name onto a slog.Level, defaulting to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
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

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
