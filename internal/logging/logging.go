// Package logging builds the application logger
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Prefix is prepended to every log line
const Prefix = "yt-quick"

// New creates a [log.Logger] writing to w with timestamps and the app prefix.
// An unknown level falls back to info. The writer defaults to [os.Stderr].
func New(w io.Writer, level string) *log.Logger {
	if w == nil {
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           ParseLevel(level),
	})
	return logger
}

// ParseLevel converts a config level name into a [log.Level]
func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Discard returns a logger that drops everything, for tests and headless runs
func Discard() *log.Logger {
	return log.New(io.Discard)
}
