package main

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/powerman/slogpattern"
)

var json = jsoniter.Config{
	UseNumber:              true,
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

var errNotObject = errors.New("not a JSON object")

// number is a JSON number decoded with UseNumber.
type number interface {
	String() string
	Int64() (int64, error)
}

type record struct {
	entry    slogpattern.Entry
	level    slog.Level
	hasLevel bool
}

// parseRecord converts a line output by slog.JSONHandler into an Entry.
func parseRecord(line []byte, loggerKey string) (*record, error) {
	var m map[string]any
	if err := json.Unmarshal(line, &m); err != nil || m == nil {
		return nil, errNotObject
	}

	rec := &record{entry: slogpattern.Entry{Mapped: make(map[string]string)}}
	e := &rec.entry
	for k, v := range m {
		switch k {
		case slog.TimeKey:
			if s, ok := v.(string); ok {
				t, err := time.Parse(time.RFC3339Nano, s)
				if err != nil {
					return nil, fmt.Errorf("bad %s: %w", k, err)
				}
				e.Time = t
				continue
			}
		case slog.LevelKey:
			if s, ok := v.(string); ok {
				e.Level = s
				if err := rec.level.UnmarshalText([]byte(s)); err == nil {
					rec.hasLevel = true
					e.Level = slogpattern.LevelName(rec.level)
				}
				continue
			}
		case slog.MessageKey:
			e.Message = stringify(v)
			continue
		case loggerKey:
			e.Logger = stringify(v)
			continue
		case slog.SourceKey:
			if src, ok := v.(map[string]any); ok {
				e.Caller = parseSource(src)
				continue
			}
		case slogpattern.NDCKey:
			if stack, ok := v.([]any); ok {
				for _, s := range stack {
					e.Stack = append(e.Stack, stringify(s))
				}
				continue
			}
			e.Stack = []string{stringify(v)}
			continue
		case slogpattern.ThreadKey:
			e.Thread = stringify(v)
			continue
		}
		flatten(e.Mapped, k, v)
	}
	return rec, nil
}

func parseSource(m map[string]any) *slog.Source {
	src := &slog.Source{}
	src.Function, _ = m["function"].(string)
	src.File, _ = m["file"].(string)
	if n, ok := m["line"].(number); ok {
		line, _ := n.Int64()
		src.Line = int(line)
	}
	return src
}

// flatten adds v to mapped using key, walking nested objects
// with keys joined by '.'.
func flatten(mapped map[string]string, key string, v any) {
	obj, ok := v.(map[string]any)
	if !ok {
		mapped[key] = stringify(v)
		return
	}
	for _, k := range slices.Sorted(maps.Keys(obj)) {
		flatten(mapped, key+"."+k, obj[k])
	}
}

func stringify(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case number:
		return v.String()
	case bool:
		return fmt.Sprint(v)
	}
	s, err := json.MarshalToString(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}
