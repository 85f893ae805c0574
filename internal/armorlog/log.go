// Package armorlog wraps log/slog into the four levels spec.md §6 asks the
// CLI to expose (error, log, info, debug), injected as a value rather than
// configured through a package-level global so tests can capture or silence
// output per case.
package armorlog

import (
	"io"
	"log/slog"
	"strings"
)

// Logger is a thin wrapper over *slog.Logger. It exists so the rest of the
// module depends on armorlog's small vocabulary instead of slog directly,
// the same way the teacher's processor package took a narrow logging
// interface instead of the standard library's logger.
type Logger struct {
	slog *slog.Logger
}

// Level names accepted by --log-level, from quietest to loudest.
const (
	LevelError = "error"
	LevelLog   = "log"
	LevelInfo  = "info"
	LevelDebug = "debug"
)

// New builds a Logger writing to w at the given level. An unrecognised level
// name falls back to LevelLog.
func New(w io.Writer, level string) *Logger {
	return &Logger{slog: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: toSlogLevel(level),
	}))}
}

// Discard returns a Logger that writes nothing, for tests that don't care
// about log output.
func Discard() *Logger {
	return New(io.Discard, LevelError)
}

func toSlogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Error logs an unrecoverable condition (spec.md §9 category 2: malformed
// input that still halts this job).
func (l *Logger) Error(msg string, args ...any) {
	if l == nil {
		return
	}
	l.slog.Error(msg, args...)
}

// Log reports a run-level outcome a user running the CLI interactively
// should see by default (spec.md §9 category 1/3 boundary).
func (l *Logger) Log(msg string, args ...any) {
	if l == nil {
		return
	}
	l.slog.Warn(msg, args...)
}

// Info reports a recoverable, skip-and-continue condition (spec.md §9
// category 3: a single declaration the front end could not classify).
func (l *Logger) Info(msg string, args ...any) {
	if l == nil {
		return
	}
	l.slog.Info(msg, args...)
}

// Debug reports detail only useful while developing or diagnosing ARMOR
// itself.
func (l *Logger) Debug(msg string, args ...any) {
	if l == nil {
		return
	}
	l.slog.Debug(msg, args...)
}
