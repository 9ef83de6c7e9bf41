// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/predex/internal/core/ports"
)

// messager describes an error that can report its own message without the chain.
type messager interface {
	Message() string
}

// metadataer describes an error carrying structured metadata.
type metadataer interface {
	Metadata() map[string]any
}

// errorEntry is one link of an error chain.
type errorEntry struct {
	message  string
	metadata map[string]any
}

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger writing pretty output to stderr.
func New() *Logger {
	l := &Logger{}
	l.configure(os.Stderr, false)
	return l
}

// EnvLogFormat selects the default log format. "json" enables JSON output.
const EnvLogFormat = "PREDEX_LOG_FORMAT"

// NewFromEnv creates a Logger writing to stderr in the format named by
// EnvLogFormat. The --json-logs flag still overrides it.
func NewFromEnv() *Logger {
	l := &Logger{}
	l.configure(os.Stderr, strings.EqualFold(os.Getenv(EnvLogFormat), "json"))
	return l
}

// SetOutput updates the logger's output destination, keeping the JSON mode.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.configure(w, l.jsonMode)
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.configure(l.output, enable)
}

func (l *Logger) configure(w io.Writer, jsonMode bool) {
	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.jsonMode = jsonMode

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if jsonMode {
		l.logger = slog.New(slog.NewJSONHandler(w, opts))
		return
	}
	l.logger = slog.New(NewPrettyHandler(w, opts))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error together with its cause chain.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// collectErrorEntries walks a zerr chain. Metadata attached through an
// anonymous wrapper is merged into the next named link. A standard error
// ends the walk with its full message.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	var pending map[string]any

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error(), metadata: pending})
			break
		}

		var metadata map[string]any
		if md, ok := current.(metadataer); ok {
			metadata = md.Metadata()
		}

		if m.Message() == "" {
			pending = merge(pending, metadata)
		} else {
			entries = append(entries, errorEntry{message: m.Message(), metadata: merge(metadata, pending)})
			pending = nil
		}

		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders the chain as "Error:" followed by "Caused by:"
// lines. Metadata is printed beneath its message with sorted keys.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.message, "\n")

		prefix, indent := "    → ", "      "
		if i == 0 {
			prefix, indent = "Error: ", "       "
		} else if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}

		lines = append(lines, prefix+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		if md := formatMetadata(entry.metadata); md != "" {
			lines = append(lines, indent+md)
		}
	}

	return strings.Join(lines, "\n")
}

func formatMetadata(metadata map[string]any) string {
	if len(metadata) == 0 {
		return ""
	}

	keys := slices.Sorted(maps.Keys(metadata))
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, metadata[k])
	}
	return strings.Join(parts, " ")
}

func merge(dst, src map[string]any) map[string]any {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	maps.Copy(dst, src)
	return dst
}
