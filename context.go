package slogpattern

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/petermattis/goid"
)

type contextKey int

const (
	contextKeyNDC contextKey = iota
	contextKeyMDC
	contextKeyThread
)

const badKey = "!BADKEY"

// ndc is an immutable stack, shared by derived contexts.
type ndc struct {
	msg   string
	depth int
	prev  *ndc
}

// PushNDC returns a new Context with msg added on top of
// the nested diagnostic context stored in ctx.
//
// There is no Pop: use the parent ctx to get back.
func PushNDC(ctx context.Context, msg string) context.Context {
	prev, _ := ctx.Value(contextKeyNDC).(*ndc)
	depth := 1
	if prev != nil {
		depth += prev.depth
	}
	return context.WithValue(ctx, contextKeyNDC, &ndc{msg: msg, depth: depth, prev: prev})
}

// NDCFromContext returns nested diagnostic context stored in ctx,
// outermost message first.
func NDCFromContext(ctx context.Context) []string {
	top, _ := ctx.Value(contextKeyNDC).(*ndc)
	if top == nil {
		return nil
	}
	stack := make([]string, top.depth)
	for cur := top; cur != nil; cur = cur.prev {
		stack[cur.depth-1] = cur.msg
	}
	return stack
}

// ndcString returns nested diagnostic context in a form used by %x.
func ndcString(ctx context.Context) string {
	top, _ := ctx.Value(contextKeyNDC).(*ndc)
	switch {
	case top == nil:
		return ""
	case top.prev == nil:
		return top.msg
	}
	return strings.Join(NDCFromContext(ctx), " ")
}

// ContextWithMDC returns a new Context with args added to the mapped
// diagnostic context stored in ctx.
// Args are handled in the same way as by [slog.Logger.Info]:
// key-value pairs and/or [slog.Attr].
// Attrs in groups are available by keys including group names
// separated by '.'.
//
// If a key is added multiple times the last value is used.
func ContextWithMDC(ctx context.Context, args ...any) context.Context {
	if len(args) == 0 {
		return ctx
	}
	prev, _ := ctx.Value(contextKeyMDC).([]slog.Attr)
	attrs := slices.Clip(prev)
	for len(args) > 0 {
		var a slog.Attr
		a, args = argsToAttr(args)
		attrs = append(attrs, a)
	}
	return context.WithValue(ctx, contextKeyMDC, attrs)
}

// MDCFromContext returns the mapped diagnostic context value for key
// stored in ctx.
func MDCFromContext(ctx context.Context, key string) (string, bool) {
	attrs, _ := ctx.Value(contextKeyMDC).([]slog.Attr)
	v, ok := lookupAttrs(attrs, key)
	if !ok {
		return "", false
	}
	return v.String(), true
}

func mdcAttrs(ctx context.Context) []slog.Attr {
	attrs, _ := ctx.Value(contextKeyMDC).([]slog.Attr)
	return attrs
}

// ContextWithThreadName returns a new Context that carries thread name
// used by %t instead of the goroutine id.
func ContextWithThreadName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, contextKeyThread, name)
}

// ThreadNameFromContext returns the thread name stored in ctx.
// If there is no name then the current goroutine id is returned,
// with goroutine 1 named "main".
func ThreadNameFromContext(ctx context.Context) string {
	if name, ok := ctx.Value(contextKeyThread).(string); ok {
		return name
	}
	return goroutineName()
}

func goroutineName() string {
	id := goid.Get()
	if id == 1 {
		return "main"
	}
	return strconv.FormatInt(id, 10)
}

// argsToAttr turns a prefix of the nonempty args slice into an Attr
// and returns the unconsumed portion of the slice.
func argsToAttr(args []any) (slog.Attr, []any) {
	switch x := args[0].(type) {
	case string:
		if len(args) == 1 {
			return slog.String(badKey, x), nil
		}
		return slog.Any(x, args[1]), args[2:]
	case slog.Attr:
		return x, args[1:]
	default:
		return slog.Any(badKey, x), args[1:]
	}
}
