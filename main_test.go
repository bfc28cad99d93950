package cre2

import (
	"log/slog"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	// Malformed patterns are compiled on purpose throughout the tests.
	SetLogger(slog.New(slog.DiscardHandler))
	os.Exit(m.Run())
}
