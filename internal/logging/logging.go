// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
)

var level = new(slog.LevelVar)

func init() {
	level.Set(slog.LevelWarn)
	slog.SetDefault(New(os.Stderr))
}

// New returns a text logger writing to w at the shared level.
func New(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetLevel changes the level of every logger built by New.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// Level reports the current level.
func Level() slog.Level {
	return level.Level()
}
