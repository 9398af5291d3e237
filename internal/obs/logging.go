// Package obs contains observability utilities such as logging.
package obs

import (
	"bytes"
	"io"
	"log/slog"
	"strings"

	"vitrine/hal"
)

// NewLogger returns a text slog.Logger that writes one line per record into sink.
func NewLogger(sink hal.Logger, level slog.Level) *slog.Logger {
	return New(LineWriter{Sink: sink}, level)
}

// New returns a text slog.Logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLevel maps a config string to a slog level. Unknown values yield info.
func ParseLevel(s string) slog.Level {
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

// LineWriter adapts a hal.Logger to io.Writer.
type LineWriter struct {
	Sink hal.Logger
}

func (w LineWriter) Write(p []byte) (int, error) {
	if w.Sink == nil {
		return len(p), nil
	}
	for _, line := range bytes.Split(bytes.TrimRight(p, "\n"), []byte{'\n'}) {
		w.Sink.WriteLineBytes(line)
	}
	return len(p), nil
}
