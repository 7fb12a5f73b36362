package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Handler implements slog.Handler with a compact line format:
// "2006/01/02 15:04:05 [INFO] message key=value"
type Handler struct {
	mu      *sync.Mutex
	output  io.Writer
	level   slog.Level
	palette map[slog.Level]*color.Color
	attrs   string
	group   string
}

func newPalette() map[slog.Level]*color.Color {
	palette := map[slog.Level]*color.Color{
		slog.LevelDebug: color.New(color.FgHiBlack),
		slog.LevelInfo:  color.New(color.FgCyan),
		slog.LevelWarn:  color.New(color.FgYellow),
		slog.LevelError: color.New(color.FgRed, color.Bold),
	}
	for _, c := range palette {
		c.EnableColor()
	}
	return palette
}

// Enabled returns whether the handler should log at the given level
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle formats and writes log records
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	if !record.Time.IsZero() {
		b.WriteString(record.Time.Format("2006/01/02 15:04:05"))
		b.WriteByte(' ')
	}
	b.WriteString(h.levelTag(record.Level))
	b.WriteByte(' ')
	b.WriteString(record.Message)

	b.WriteString(h.attrs)
	record.Attrs(func(attr slog.Attr) bool {
		writeAttr(&b, h.group, attr)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.output, b.String())
	return err
}

// WithAttrs returns a new handler with additional attributes
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := h.clone()
	var b strings.Builder
	for _, attr := range attrs {
		writeAttr(&b, h.group, attr)
	}
	clone.attrs += b.String()
	return clone
}

// WithGroup returns a new handler with a group prefix
func (h *Handler) WithGroup(name string) slog.Handler {
	clone := h.clone()
	if clone.group == "" {
		clone.group = name
	} else if name != "" {
		clone.group = clone.group + "." + name
	}
	return clone
}

func (h *Handler) clone() *Handler {
	return &Handler{
		mu:      h.mu,
		output:  h.output,
		level:   h.level,
		palette: h.palette,
		attrs:   h.attrs,
		group:   h.group,
	}
}

func (h *Handler) levelTag(level slog.Level) string {
	var name string
	switch {
	case level >= slog.LevelError:
		name, level = "ERROR", slog.LevelError
	case level >= slog.LevelWarn:
		name, level = "WARN", slog.LevelWarn
	case level >= slog.LevelInfo:
		name, level = "INFO", slog.LevelInfo
	default:
		name, level = "DEBUG", slog.LevelDebug
	}
	tag := "[" + name + "]"
	if c, ok := h.palette[level]; ok {
		return c.Sprint(tag)
	}
	return tag
}

func writeAttr(b *strings.Builder, group string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	if attr.Value.Kind() == slog.KindGroup {
		for _, nested := range attr.Value.Group() {
			writeAttr(b, key, nested)
		}
		return
	}
	value := attr.Value.String()
	if strings.ContainsAny(value, " \t\"=") {
		value = fmt.Sprintf("%q", value)
	}
	fmt.Fprintf(b, " %s=%s", key, value)
}
