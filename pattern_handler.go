package slogpattern

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// DefaultLoggerKey is the attr key holding the logger name.
const DefaultLoggerKey = "logger"

// PatternHandlerOptions contains options for NewPatternHandler.
type PatternHandlerOptions struct {
	// Pattern is a conversion pattern, see package documentation.
	// If Pattern is empty, DefaultConversionPattern is used.
	Pattern string

	// Level reports the minimum record level that will be logged.
	// The handler discards records with lower levels.
	// If Level is nil, the handler assumes LevelInfo.
	// The handler calls Level.Level for each record processed;
	// to adjust the minimum level dynamically, use a LevelVar.
	Level slog.Leveler

	// LoggerKey is the attr key used as the logger name (%c).
	// If there is no such attr, the import path of the caller's package
	// with '/' replaced by '.' is used.
	// If LoggerKey is empty, DefaultLoggerKey is used.
	LoggerKey string

	// Layout contains options for the Layout used to render records.
	Layout LayoutOptions
}

// PatternHandler is an [slog.Handler] that writes records
// to an io.Writer using a conversion pattern.
//
// Record attrs are not output as is.
// Use %X{key} to output attr value, with key including group names
// separated by '.'. Attrs are looked up in the record first,
// then in attrs added by WithAttrs, then in the mapped diagnostic context
// stored in the record's context by [ContextWithMDC].
type PatternHandler struct {
	opts   PatternHandlerOptions
	layout *Layout
	goa    *groupOrAttrs
	mu     *sync.Mutex
	w      io.Writer
}

// NewPatternHandler creates a PatternHandler that writes to w, using the given options.
func NewPatternHandler(w io.Writer, opts *PatternHandlerOptions) *PatternHandler {
	if opts == nil {
		opts = &PatternHandlerOptions{}
	}
	h := &PatternHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
	}
	if h.opts.Pattern == "" {
		h.opts.Pattern = DefaultConversionPattern
	}
	if h.opts.Level == nil {
		h.opts.Level = slog.LevelInfo
	}
	if h.opts.LoggerKey == "" {
		h.opts.LoggerKey = DefaultLoggerKey
	}
	h.layout = NewLayout(h.opts.Pattern, &h.opts.Layout)
	return h
}

// SetPattern changes the pattern used by h and all handlers derived from it.
func (h *PatternHandler) SetPattern(p string) {
	if p == "" {
		p = DefaultConversionPattern
	}
	h.layout.SetPattern(p)
}

// Pattern returns the current pattern.
func (h *PatternHandler) Pattern() string {
	return h.layout.Pattern()
}

// Enabled implements [slog.Handler] interface.
func (h *PatternHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.opts.Level.Level()
}

// WithAttrs implements [slog.Handler] interface.
func (h *PatternHandler) WithAttrs(as []slog.Attr) slog.Handler {
	goa := h.goa.withAttrs(as)
	if goa == h.goa {
		return h
	}
	h2 := *h
	h2.goa = goa
	return &h2
}

// WithGroup implements [slog.Handler] interface.
func (h *PatternHandler) WithGroup(name string) slog.Handler {
	goa := h.goa.withGroup(name)
	if goa == h.goa {
		return h
	}
	h2 := *h
	h2.goa = goa
	return &h2
}

// Handle implements [slog.Handler] interface.
func (h *PatternHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ev := &recordEvent{h: h, ctx: ctx, r: &r, ts: r.Time}
	if ev.ts.IsZero() {
		ev.ts = time.Now()
	}

	buf := h.layout.getBuffer()
	defer h.layout.putBuffer(buf)
	*buf = h.layout.AppendFormat(*buf, ev)
	if buf.Len() == 0 {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(*buf)
	return err
}

// recordEvent is an Event for a record handled by PatternHandler.
type recordEvent struct {
	h   *PatternHandler
	ctx context.Context //nolint:containedctx // Lives only while handling a record.
	r   *slog.Record
	ts  time.Time
}

// LoggerName looks for LoggerKey in the record, then in handler attrs
// starting from the innermost group.
func (e *recordEvent) LoggerName() string {
	prefix := e.h.goa.groupPrefix()
	if v, ok := e.h.goa.lookupRecord(e.r, prefix+e.h.opts.LoggerKey); ok {
		return v.String()
	}
	for {
		if v, ok := e.h.goa.lookup(prefix + e.h.opts.LoggerKey); ok {
			return v.String()
		}
		if prefix == "" {
			return packageLoggerName(e.r.PC)
		}
		prefix = prefix[:strings.LastIndexByte(prefix[:len(prefix)-1], '.')+1]
	}
}

func (e *recordEvent) LevelName() string       { return LevelName(e.r.Level) }
func (e *recordEvent) RenderedMessage() string { return e.r.Message }
func (e *recordEvent) ThreadName() string      { return ThreadNameFromContext(e.ctx) }
func (e *recordEvent) Source() *slog.Source    { return e.r.Source() }
func (e *recordEvent) NDC() string             { return ndcString(e.ctx) }

func (e *recordEvent) Timestamp() time.Time { return e.ts }

func (e *recordEvent) MDC(key string) (string, bool) {
	if v, ok := e.h.goa.lookupRecord(e.r, key); ok {
		return v.String(), true
	}
	if v, ok := e.h.goa.lookup(key); ok {
		return v.String(), true
	}
	return MDCFromContext(e.ctx, key)
}
