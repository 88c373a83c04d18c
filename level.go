package slogpattern

import (
	"log/slog"
	"strings"
)

// Extra levels.
const (
	LevelTrace = slog.LevelDebug - 4
	LevelFatal = slog.LevelError + 4
)

// LevelName returns the name of level output by %p.
// Levels between the named ones are output by [slog.Level.String].
func LevelName(level slog.Level) string {
	switch level {
	case LevelTrace:
		return "TRACE"
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	}
	return level.String()
}

// ParseLevel convert levelName from flag or config file into slog.Level.
// Unknown names result in LevelDebug.
func ParseLevel(levelName string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelName)) {
	case "fatal", "crit", "critical", "alert", "emerg", "emergency":
		return LevelFatal
	case "err", "error":
		return slog.LevelError
	case "wrn", "warn", "warning":
		return slog.LevelWarn
	case "inf", "info", "notice":
		return slog.LevelInfo
	case "dbg", "debug":
		return slog.LevelDebug
	case "trc", "trace", "all":
		return LevelTrace

	default:
		slog.Debug("failed to parse level", "levelName", levelName)
		return slog.LevelDebug
	}
}
