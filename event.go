package slogpattern

import (
	"log/slog"
	"strings"
	"time"
)

// Event provides data for rendering a single log record.
//
// Layout calls Event methods only while rendering and only for
// conversions used by the pattern.
type Event interface {
	// LoggerName returns dot-separated name of the logger (%c).
	LoggerName() string
	// LevelName returns name of the level (%p).
	LevelName() string
	// RenderedMessage returns the message (%m).
	RenderedMessage() string
	// Timestamp returns the time the event was created (%d, %r).
	Timestamp() time.Time
	// ThreadName returns the name of the producing thread (%t).
	ThreadName() string
	// Source returns the call site (%F, %L, %l) or nil if unavailable.
	Source() *slog.Source
	// NDC returns the nested diagnostic context (%x).
	NDC() string
	// MDC returns the mapped diagnostic context value for key (%X).
	MDC(key string) (string, bool)
}

// Entry is an Event with all values provided in fields.
type Entry struct {
	Logger  string
	Level   string
	Message string
	Time    time.Time
	Thread  string
	Caller  *slog.Source
	Stack   []string // Nested diagnostic context, outermost first.
	Mapped  map[string]string
}

var _ Event = Entry{}

// LoggerName implements Event interface.
func (e Entry) LoggerName() string { return e.Logger }

// LevelName implements Event interface.
func (e Entry) LevelName() string { return e.Level }

// RenderedMessage implements Event interface.
func (e Entry) RenderedMessage() string { return e.Message }

// Timestamp implements Event interface.
func (e Entry) Timestamp() time.Time { return e.Time }

// ThreadName implements Event interface.
func (e Entry) ThreadName() string { return e.Thread }

// Source implements Event interface.
func (e Entry) Source() *slog.Source { return e.Caller }

// NDC implements Event interface.
func (e Entry) NDC() string { return strings.Join(e.Stack, " ") }

// MDC implements Event interface.
func (e Entry) MDC(key string) (string, bool) {
	v, ok := e.Mapped[key]
	return v, ok
}
