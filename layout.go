package slogpattern

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/powerman/slogpattern/internal/buffer"
	"github.com/powerman/slogpattern/internal/datefmt"
	"github.com/powerman/slogpattern/internal/pattern"
)

// Built-in conversion patterns.
const (
	// DefaultConversionPattern outputs just the message.
	DefaultConversionPattern = "%m%n"
	// TTCCConversionPattern outputs time, thread, category and context.
	TTCCConversionPattern = "%r [%t] %p %c %x - %m%n"
)

var startTime = time.Now()

// LayoutOptions contains options for NewLayout.
type LayoutOptions struct {
	// Location is used to output %d.
	// If Location is nil, time is output in its own location.
	Location *time.Location

	// StartTime is used to calculate %r.
	// If StartTime is zero, the time the program was started is used.
	StartTime time.Time

	// LineSeparator is output by %n.
	// If LineSeparator is empty, the platform separator is used.
	LineSeparator string

	// BufferSize is the initial capacity of pooled buffers used by
	// Format and FormatTo. If zero, 1 KiB is used.
	BufferSize int

	// MaxBufferSize limits the capacity of a buffer kept in the pool.
	// Buffers which grew larger while rendering a huge event are replaced
	// with a new one of BufferSize. If zero, 16 KiB is used.
	MaxBufferSize int
}

// Layout renders events using a conversion pattern.
//
// It is safe for concurrent use, including changing the pattern with
// SetPattern while rendering.
// A zero Layout has no pattern and renders nothing.
type Layout struct {
	opts  LayoutOptions
	pool  *buffer.Pool
	chain atomic.Pointer[chain]
}

// chain is a compiled pattern. It is never modified after publishing.
type chain struct {
	pattern string
	convs   []converter
}

type converter struct {
	pattern.Node
	date  *datefmt.Formatter // For %d.
	depth int                // For %c{N}, 0 means full name.
}

// NewLayout creates a Layout for the pattern p using the given options.
func NewLayout(p string, opts *LayoutOptions) *Layout {
	if opts == nil {
		opts = &LayoutOptions{}
	}
	l := &Layout{opts: *opts}
	if l.opts.StartTime.IsZero() {
		l.opts.StartTime = startTime
	}
	if l.opts.LineSeparator == "" {
		l.opts.LineSeparator = LineSeparator
	}
	if l.opts.BufferSize <= 0 {
		l.opts.BufferSize = buffer.DefaultSize
	}
	if l.opts.MaxBufferSize <= 0 {
		l.opts.MaxBufferSize = buffer.DefaultMaxSize
	}
	l.pool = buffer.NewPool(l.opts.BufferSize, l.opts.MaxBufferSize)
	l.SetPattern(p)
	return l
}

// SetPattern compiles p and replaces the current pattern.
// Renders already in progress complete using the previous pattern.
func (l *Layout) SetPattern(p string) {
	nodes := pattern.Compile(p)
	c := &chain{
		pattern: p,
		convs:   make([]converter, len(nodes)),
	}
	for i, n := range nodes {
		c.convs[i].Node = n
		switch n.Kind { //nolint:exhaustive // Only kinds with options need preparation.
		case pattern.Date:
			c.convs[i].date = datefmt.New(n.Text, l.opts.Location)
		case pattern.LoggerName:
			c.convs[i].depth = parseDepth(n.Text)
		}
	}
	l.chain.Store(c)
}

// Pattern returns the current pattern.
func (l *Layout) Pattern() string {
	if c := l.chain.Load(); c != nil {
		return c.pattern
	}
	return ""
}

// AppendFormat appends rendered ev to b and returns the extended buffer.
func (l *Layout) AppendFormat(b []byte, ev Event) []byte {
	c := l.chain.Load()
	if c == nil {
		return b
	}
	for i := range c.convs {
		conv := &c.convs[i]
		if conv.Kind == pattern.Literal {
			b = append(b, conv.Text...)
			continue
		}
		pos := len(b)
		b = l.appendValue(b, conv, ev)
		b = conv.Justify(b, pos)
	}
	return b
}

// Format returns rendered ev.
func (l *Layout) Format(ev Event) string {
	buf := l.getBuffer()
	defer l.putBuffer(buf)
	*buf = l.AppendFormat(*buf, ev)
	return buf.String()
}

// FormatTo renders ev and outputs it to w using a single Write call.
// Nothing is written if the result is empty.
func (l *Layout) FormatTo(w io.Writer, ev Event) error {
	buf := l.getBuffer()
	defer l.putBuffer(buf)
	*buf = l.AppendFormat(*buf, ev)
	if buf.Len() == 0 {
		return nil
	}
	_, err := w.Write(*buf)
	return err
}

func (l *Layout) getBuffer() *buffer.Buffer {
	if l.pool == nil {
		return buffer.New()
	}
	return l.pool.Get()
}

func (l *Layout) putBuffer(buf *buffer.Buffer) {
	if l.pool == nil {
		buf.Free()
		return
	}
	l.pool.Put(buf)
}

// startTime and lineSeparator repeat NewLayout defaults for a zero Layout.
func (l *Layout) startTime() time.Time {
	if l.opts.StartTime.IsZero() {
		return startTime
	}
	return l.opts.StartTime
}

func (l *Layout) lineSeparator() string {
	if l.opts.LineSeparator == "" {
		return LineSeparator
	}
	return l.opts.LineSeparator
}
