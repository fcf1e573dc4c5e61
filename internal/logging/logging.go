// Package logging builds the slog loggers used by the commands.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrLevel is returned for an unrecognized level name.
var ErrLevel = errors.New("logging: invalid level")

// Levels lists the accepted level names.
const Levels = "off, debug, info, warn, error"

// New returns a text logger writing to w at the named level. The level "off"
// yields a logger that discards everything; "" means info.
func New(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "off":
		return slog.New(slog.DiscardHandler), nil
	case "debug":
		lvl = slog.LevelDebug
	case "", "info":
		lvl = slog.LevelInfo
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("%w %q: must be one of %s", ErrLevel, level, Levels)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
