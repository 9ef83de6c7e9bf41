package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/predex/internal/ui/output"
	"go.trai.ch/predex/internal/ui/style"
)

// levelStyle is the icon and color used for records at or above a level.
type levelStyle struct {
	min   slog.Level
	icon  string
	color lipgloss.Color
}

// levelStyles is ordered from the most to the least severe level.
var levelStyles = []levelStyle{
	{min: slog.LevelError, icon: style.Cross, color: style.Red},
	{min: slog.LevelWarn, icon: style.Warning, color: style.Yellow},
	{min: slog.LevelDebug - 4, color: style.Slate},
}

// PrettyHandler is a slog.Handler that writes one colored line per record.
// Attributes are appended as key=value pairs, group-qualified.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	// attrs holds the pre-rendered attributes added through WithAttrs.
	attrs []string
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	h := &PrettyHandler{out: output.New(w), level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	ls := styleFor(r.Level)

	var b strings.Builder
	if ls.icon != "" {
		b.WriteString(ls.icon)
		b.WriteByte(' ')
	}
	b.WriteString(r.Message)
	for _, attr := range h.attrs {
		b.WriteByte(' ')
		b.WriteString(attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		b.WriteByte(' ')
		b.WriteString(formatAttr(h.group, attr))
		return true
	})

	line := h.out.String(b.String()).Foreground(termenv.RGBColor(string(ls.color)))
	_, err := h.out.WriteString(line.String() + "\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := h.clone()
	for _, attr := range attrs {
		next.attrs = append(next.attrs, formatAttr(h.group, attr))
	}
	return next
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	next := h.clone()
	if h.group != "" {
		name = h.group + "." + name
	}
	next.group = name
	return next
}

func (h *PrettyHandler) clone() *PrettyHandler {
	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: slices.Clip(h.attrs),
		group: h.group,
	}
}

func styleFor(level slog.Level) levelStyle {
	for _, ls := range levelStyles {
		if level >= ls.min {
			return ls
		}
	}
	return levelStyles[len(levelStyles)-1]
}

func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + attr.Value.String()
}
