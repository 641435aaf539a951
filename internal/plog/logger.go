// Package plog provides structured, leveled logging for the solver
// and CLI: a symbol-prefixed writer with silent/info/debug/trace
// levels, a context.Context-scoped logger, and a progress tracker for
// long-running fixed-point computations.
package plog

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Level controls how much detail a Logger emits.
type Level int

const (
	LevelSilent Level = iota
	LevelInfo
	LevelDebug
	LevelTrace
)

// Logger is a small leveled logger with an optional name prefix.
type Logger struct {
	level  Level
	writer io.Writer
	prefix string
}

type loggerKey struct{}

// New returns a logger at the given level, writing to w (os.Stderr if
// w is nil).
func New(level Level, w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{level: level, writer: w}
}

// WithPrefix returns a derived logger with an additional name prefix.
func (l *Logger) WithPrefix(prefix string) *Logger {
	p := prefix
	if l.prefix != "" {
		p = l.prefix + " " + prefix
	}
	return &Logger{level: l.level, writer: l.writer, prefix: p}
}

// Info logs a message visible at LevelInfo and above.
func (l *Logger) Info(format string, args ...any) {
	if l.level >= LevelInfo {
		l.log("•", format, args...)
	}
}

// Debug logs a message visible at LevelDebug and above.
func (l *Logger) Debug(format string, args ...any) {
	if l.level >= LevelDebug {
		l.log("→", format, args...)
	}
}

// Trace logs a message visible only at LevelTrace — per-statement and
// per-work-list-item detail.
func (l *Logger) Trace(format string, args ...any) {
	if l.level >= LevelTrace {
		l.log("·", format, args...)
	}
}

// Warn logs a warning, visible at LevelInfo and above.
func (l *Logger) Warn(format string, args ...any) {
	if l.level >= LevelInfo {
		l.log("⚠", format, args...)
	}
}

func (l *Logger) log(symbol, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	prefix := ""
	if l.prefix != "" {
		prefix = "[" + l.prefix + "] "
	}
	fmt.Fprintf(l.writer, "%s %s%s\n", symbol, prefix, msg)
}

// WithLogger attaches l to ctx.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext retrieves the logger attached to ctx, or a silent
// no-op logger if none was attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerKey{}).(*Logger); ok {
		return l
	}
	return New(LevelSilent, io.Discard)
}

// ParseLevel parses a level name, defaulting to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "silent", "quiet":
		return LevelSilent
	case "debug":
		return LevelDebug
	case "trace":
		return LevelTrace
	default:
		return LevelInfo
	}
}

// ProgressTracker reports incremental progress of the solver's
// work-list drain without flooding the log on large programs.
type ProgressTracker struct {
	name      string
	logger    *Logger
	start     time.Time
	lastLog   time.Time
	interval  time.Duration
	processed int
}

// NewProgressTracker starts tracking a named, unbounded operation
// (the solver doesn't know the work list's final size in advance).
func NewProgressTracker(logger *Logger, name string) *ProgressTracker {
	now := time.Now()
	return &ProgressTracker{name: name, logger: logger, start: now, lastLog: now, interval: time.Second}
}

// Tick records one unit of progress and logs at most once per
// interval.
func (t *ProgressTracker) Tick() {
	t.processed++
	now := time.Now()
	if now.Sub(t.lastLog) < t.interval {
		return
	}
	t.lastLog = now
	t.logger.Debug("%s: %d processed [%v]", t.name, t.processed, now.Sub(t.start).Truncate(time.Millisecond))
}

// Done logs completion.
func (t *ProgressTracker) Done() {
	t.logger.Info("%s complete: %d processed in %v", t.name, t.processed, time.Since(t.start).Truncate(time.Millisecond))
}
