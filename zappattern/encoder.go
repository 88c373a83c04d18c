// Package zappattern provides a [zapcore.Encoder] which renders entries
// using a slogpattern conversion pattern.
package zappattern

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"

	"github.com/powerman/slogpattern"
)

// Encoder renders zap entries using a conversion pattern.
//
// Entry fields are not output as is. Use %X{key} to output field value,
// with key including namespaces separated by '.'. Like zap's own
// encoders, fields added after zap.Namespace go into that namespace,
// including fields added later by With.
// Field slogpattern.NDCKey (string or array of strings) is output by %x
// and field slogpattern.ThreadKey is output by %t.
type Encoder struct {
	*zapcore.MapObjectEncoder
	ns     []string // Open namespaces, outermost first.
	layout *slogpattern.Layout
	pool   buffer.Pool
}

// NewEncoder creates an Encoder for the pattern p.
// If p is empty, slogpattern.DefaultConversionPattern is used.
func NewEncoder(p string, opts *slogpattern.LayoutOptions) *Encoder {
	if p == "" {
		p = slogpattern.DefaultConversionPattern
	}
	return &Encoder{
		MapObjectEncoder: zapcore.NewMapObjectEncoder(),
		layout:           slogpattern.NewLayout(p, opts),
		pool:             buffer.NewPool(),
	}
}

// SetPattern changes the pattern used by e and all its clones.
func (e *Encoder) SetPattern(p string) {
	if p == "" {
		p = slogpattern.DefaultConversionPattern
	}
	e.layout.SetPattern(p)
}

// Clone implements [zapcore.Encoder] interface.
func (e *Encoder) Clone() zapcore.Encoder {
	return e.clone()
}

// clone copies fields and reopens namespaces on the copy,
// so fields added to the clone go to the innermost namespace.
func (e *Encoder) clone() *Encoder {
	enc := zapcore.NewMapObjectEncoder()
	src, dst := e.Fields, enc.Fields
	for _, name := range e.ns {
		for k, v := range src {
			if k != name {
				dst[k] = v
			}
		}
		enc.OpenNamespace(name)
		src, _ = src[name].(map[string]any)
		dst, _ = dst[name].(map[string]any)
	}
	for k, v := range src {
		dst[k] = v
	}
	return &Encoder{
		MapObjectEncoder: enc,
		ns:               slices.Clip(e.ns),
		layout:           e.layout,
		pool:             e.pool,
	}
}

// OpenNamespace implements [zapcore.ObjectEncoder] interface.
func (e *Encoder) OpenNamespace(key string) {
	e.MapObjectEncoder.OpenNamespace(key)
	e.ns = append(slices.Clip(e.ns), key)
}

// EncodeEntry implements [zapcore.Encoder] interface.
func (e *Encoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	enc := e
	if len(fields) > 0 {
		enc = e.clone()
		for i := range fields {
			fields[i].AddTo(enc)
		}
	}

	line := e.pool.Get()
	err := e.layout.FormatTo(line, &event{ent: ent, fields: enc.Fields})
	if err != nil {
		line.Free()
		return nil, err
	}
	return line, nil
}

// event is a slogpattern.Event for a zap entry.
type event struct {
	ent    zapcore.Entry
	fields map[string]any
}

func (e *event) LoggerName() string      { return e.ent.LoggerName }
func (e *event) LevelName() string       { return e.ent.Level.CapitalString() }
func (e *event) RenderedMessage() string { return e.ent.Message }
func (e *event) Timestamp() time.Time    { return e.ent.Time }

func (e *event) ThreadName() string {
	if s, ok := e.MDC(slogpattern.ThreadKey); ok {
		return s
	}
	return slogpattern.ThreadNameFromContext(context.Background())
}

func (e *event) Source() *slog.Source {
	if !e.ent.Caller.Defined {
		return nil
	}
	return &slog.Source{
		Function: e.ent.Caller.Function,
		File:     e.ent.Caller.File,
		Line:     e.ent.Caller.Line,
	}
}

func (e *event) NDC() string {
	switch v := e.fields[slogpattern.NDCKey].(type) {
	case nil:
		return ""
	case string:
		return v
	case []any:
		s := make([]string, len(v))
		for i := range v {
			s[i] = fmt.Sprint(v[i])
		}
		return strings.Join(s, " ")
	default:
		return fmt.Sprint(v)
	}
}

func (e *event) MDC(key string) (string, bool) {
	v, ok := lookup(e.fields, key)
	switch {
	case !ok:
		return "", false
	case v == nil:
		return "", true
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}

// lookup returns value for key, walking into namespaces and objects
// for keys with '.'.
func lookup(fields map[string]any, key string) (any, bool) {
	if v, ok := fields[key]; ok {
		return v, true
	}
	for i := strings.IndexByte(key, '.'); i >= 0; {
		if m, ok := fields[key[:i]].(map[string]any); ok {
			if v, ok := lookup(m, key[i+1:]); ok {
				return v, true
			}
		}
		next := strings.IndexByte(key[i+1:], '.')
		if next < 0 {
			break
		}
		i += next + 1
	}
	return nil, false
}
