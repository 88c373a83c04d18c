package slogpattern

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// Logger is a named logger, like loggers in log4j family.
// Its name is output by %c.
//
// The name is added to the handler as DefaultLoggerKey attr,
// so a PatternHandler should use DefaultLoggerKey as LoggerKey.
type Logger struct {
	name string
	base slog.Handler
	h    slog.Handler
}

// NewLogger returns a Logger with the given dot-separated name.
// If h is nil, the handler of [slog.Default] is used.
func NewLogger(name string, h slog.Handler) *Logger {
	if h == nil {
		h = slog.Default().Handler()
	}
	return &Logger{
		name: name,
		base: h,
		h:    h.WithAttrs([]slog.Attr{slog.String(DefaultLoggerKey, name)}),
	}
}

// Named returns a child Logger named l's name followed by '.' and child.
func (l *Logger) Named(child string) *Logger {
	switch {
	case child == "":
		return l
	case l.name == "":
		return NewLogger(child, l.base)
	}
	return NewLogger(l.name+"."+child, l.base)
}

// Name returns the name of l.
func (l *Logger) Name() string { return l.name }

// Handler returns l's handler, with the name attr added.
func (l *Logger) Handler() slog.Handler { return l.h }

// Enabled reports whether l emits log records at the given level.
func (l *Logger) Enabled(ctx context.Context, level slog.Level) bool {
	if ctx == nil {
		ctx = context.Background()
	}
	return l.h.Enabled(ctx, level)
}

// Trace logs at LevelTrace.
func (l *Logger) Trace(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LevelTrace, msg, args...)
}

// Debug logs at [slog.LevelDebug].
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelDebug, msg, args...)
}

// Info logs at [slog.LevelInfo].
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelInfo, msg, args...)
}

// Warn logs at [slog.LevelWarn].
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelWarn, msg, args...)
}

// Error logs at [slog.LevelError].
func (l *Logger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelError, msg, args...)
}

// Log emits a log record with the current time and the given level and message.
func (l *Logger) Log(ctx context.Context, level slog.Level, msg string, args ...any) {
	l.log(ctx, level, msg, args...)
}

// log must be called directly by an exported method
// to report the caller of that method as the call site.
func (l *Logger) log(ctx context.Context, level slog.Level, msg string, args ...any) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.h.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // Skip [runtime.Callers, log, exported method].
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = l.h.Handle(ctx, r)
}
