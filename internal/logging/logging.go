// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
)

// UserLevel is the verbosity selected on the command line
var UserLevel = slog.LevelWarn

// LevelFromFlags maps the verbosity flags to a level. The flags are
// evaluated in the order vv, v, q, so vv wins over q.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Setup installs a text logger writing to w at the given level
func Setup(w io.Writer, level slog.Level) {
	UserLevel = level
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}
