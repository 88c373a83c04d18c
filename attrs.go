package slogpattern

import (
	"log/slog"
	"strings"
)

// groupOrAttrs holds a sequence of WithGroup and WithAttrs calls.
// Nil represents no groups or attrs.
type groupOrAttrs struct {
	group  string      // Group name if non-empty.
	attrs  []slog.Attr // Attrs if group is empty.
	prefix string      // Groups opened by this and all prev, each followed by '.'.
	prev   *groupOrAttrs
}

func (g *groupOrAttrs) groupPrefix() string {
	if g == nil {
		return ""
	}
	return g.prefix
}

// withAttrs returns a groupOrAttrs that includes the given attrs.
func (g *groupOrAttrs) withAttrs(as []slog.Attr) *groupOrAttrs {
	if countEmptyGroups(as) == len(as) {
		return g
	}
	return &groupOrAttrs{
		attrs:  as,
		prefix: g.groupPrefix(),
		prev:   g,
	}
}

// withGroup returns a groupOrAttrs that includes the given group.
func (g *groupOrAttrs) withGroup(name string) *groupOrAttrs {
	if name == "" {
		return g
	}
	return &groupOrAttrs{
		group:  name,
		prefix: g.groupPrefix() + name + ".",
		prev:   g,
	}
}

// lookup returns the value of the last attr with the given key,
// which includes group names separated by '.'.
func (g *groupOrAttrs) lookup(key string) (slog.Value, bool) {
	for cur := g; cur != nil; cur = cur.prev {
		if cur.group != "" || !strings.HasPrefix(key, cur.prefix) {
			continue
		}
		if v, ok := lookupAttrs(cur.attrs, key[len(cur.prefix):]); ok {
			return v, true
		}
	}
	return slog.Value{}, false
}

// lookupRecord returns the value of the last attr in r with the given key.
// Key is relative to groups opened by g.
func (g *groupOrAttrs) lookupRecord(r *slog.Record, key string) (v slog.Value, found bool) {
	prefix := g.groupPrefix()
	if !strings.HasPrefix(key, prefix) {
		return slog.Value{}, false
	}
	key = key[len(prefix):]
	r.Attrs(func(a slog.Attr) bool {
		if val, ok := lookupAttr(a, key); ok {
			v, found = val, true
		}
		return true
	})
	return v, found
}

func lookupAttrs(attrs []slog.Attr, key string) (v slog.Value, found bool) {
	for _, a := range attrs {
		if val, ok := lookupAttr(a, key); ok {
			v, found = val, true
		}
	}
	return v, found
}

func lookupAttr(a slog.Attr, key string) (slog.Value, bool) {
	v := a.Value.Resolve()
	var group []slog.Attr
	switch v.Kind() {
	case slog.KindGroup:
		group = v.Group()
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			group = ErrorAttrs(err)
		}
	}
	if a.Key == key && v.Kind() != slog.KindGroup {
		return v, true
	}
	if group == nil {
		return slog.Value{}, false
	}
	switch {
	case a.Key == "" && v.Kind() == slog.KindGroup:
		return lookupAttrs(group, key)
	case isSubKey(key, a.Key):
		return lookupAttrs(group, key[len(a.Key)+1:])
	}
	return slog.Value{}, false
}

// isSubKey reports whether key is "parent.<something>".
func isSubKey(key, parent string) bool {
	return parent != "" && len(key) > len(parent) && key[len(parent)] == '.' && strings.HasPrefix(key, parent)
}

// countEmptyGroups returns the number of empty group values in as.
func countEmptyGroups(as []slog.Attr) int {
	n := 0
	for _, a := range as {
		if a.Value.Kind() == slog.KindGroup && len(a.Value.Group()) == 0 {
			n++
		}
	}
	return n
}
