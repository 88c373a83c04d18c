package slogpattern

import (
	"context"
	"log/slog"
)

// Keys of attrs added by DiagnosticHandler.
const (
	NDCKey    = "ndc"
	ThreadKey = "thread"
)

// Middleware is a function that wraps an [slog.Handler].
// It is a convenient type for building handler chains,
// compatible with [github.com/samber/slog-multi.Middleware],
// allowing to use [github.com/samber/slog-multi.Pipe] with handlers from this package.
type Middleware = func(slog.Handler) slog.Handler

// DiagnosticHandler is an [slog.Handler] that adds diagnostic contexts
// stored in the record's context to the record and passes it to the next handler.
//
// It is useful for handlers which do not know about diagnostic contexts,
// e.g. [slog.JSONHandler]:
//   - nested diagnostic context is added as NDCKey attr,
//   - thread name set by [ContextWithThreadName] is added as ThreadKey attr,
//   - mapped diagnostic context attrs are added as is.
//
// Attrs are added to the record, so they are output inside groups
// opened by WithGroup.
type DiagnosticHandler struct {
	next slog.Handler
}

// NewDiagnosticHandler returns a new DiagnosticHandler that delegates to next handler.
func NewDiagnosticHandler(next slog.Handler) *DiagnosticHandler {
	return &DiagnosticHandler{next: next}
}

// NewDiagnosticMiddleware turns a [NewDiagnosticHandler] into a Middleware.
//
// Example usage with [github.com/samber/slog-multi]:
//
//	slogmulti.
//		Pipe(slogpattern.NewDiagnosticMiddleware()).
//		Handler(slog.NewJSONHandler(os.Stdout, nil))
func NewDiagnosticMiddleware() Middleware {
	return func(next slog.Handler) slog.Handler {
		return NewDiagnosticHandler(next)
	}
}

// Enabled implements [slog.Handler] interface.
func (h *DiagnosticHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return h.next.Enabled(ctx, l)
}

// Handle implements [slog.Handler] interface.
func (h *DiagnosticHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx == nil {
		return h.next.Handle(ctx, r)
	}
	var attrs []slog.Attr
	if s := ndcString(ctx); s != "" {
		attrs = append(attrs, slog.String(NDCKey, s))
	}
	if name, ok := ctx.Value(contextKeyThread).(string); ok {
		attrs = append(attrs, slog.String(ThreadKey, name))
	}
	attrs = append(attrs, mdcAttrs(ctx)...)
	if len(attrs) > 0 {
		r = r.Clone()
		r.AddAttrs(attrs...)
	}
	return h.next.Handle(ctx, r)
}

// WithAttrs implements [slog.Handler] interface.
func (h *DiagnosticHandler) WithAttrs(as []slog.Attr) slog.Handler {
	next := h.next.WithAttrs(as)
	if next == h.next {
		return h
	}
	return &DiagnosticHandler{next: next}
}

// WithGroup implements [slog.Handler] interface.
func (h *DiagnosticHandler) WithGroup(name string) slog.Handler {
	next := h.next.WithGroup(name)
	if next == h.next {
		return h
	}
	return &DiagnosticHandler{next: next}
}
