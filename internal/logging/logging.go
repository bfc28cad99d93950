// Package logging builds the slog loggers used for engine diagnostics.
//
// The engine only ever logs compile failures and handle misuse, both at
// ERROR, so the default logger is a quiet text logger on stderr. Every
// record carries component=cre2 so it can be told apart inside a host
// application's log stream.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format names a record encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat accepts "text" or "json" in any case. An empty string means
// FormatText.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("logging: unknown format %q", s)
	}
}

// ParseLevel accepts slog level names such as "error", "warn" or "info+2".
// An empty string means ERROR.
func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelError, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("logging: %w", err)
	}
	return l, nil
}

// Options describes a diagnostics logger. The zero value is a text logger
// at ERROR writing to stderr.
type Options struct {
	Format Format
	Level  slog.Leveler
	Output io.Writer
}

// New builds the logger o describes.
func New(o Options) *slog.Logger {
	if o.Level == nil {
		o.Level = slog.LevelError
	}
	if o.Output == nil {
		o.Output = os.Stderr
	}
	ho := &slog.HandlerOptions{Level: o.Level}

	var h slog.Handler
	if o.Format == FormatJSON {
		h = slog.NewJSONHandler(o.Output, ho)
	} else {
		h = slog.NewTextHandler(o.Output, ho)
	}
	return slog.New(h).With(slog.String("component", "cre2"))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
