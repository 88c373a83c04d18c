// Package datefmt formats timestamps for the %d conversion.
//
// Option of %d is either one of the named formats (ABSOLUTE, DATE, ISO8601)
// or a strftime format. The %L verb outputs milliseconds.
package datefmt

import (
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
)

// Named formats.
const (
	Absolute = "ABSOLUTE"
	Date     = "DATE"
	ISO8601  = "ISO8601"
)

var aliases = map[string]string{
	Absolute: "%H:%M:%S,%L",
	Date:     "%d %b %Y %H:%M:%S,%L",
	ISO8601:  "%Y-%m-%d %H:%M:%S,%L",
}

// Verbs understood by strftime (with milliseconds enabled).
const knownVerbs = "AaBbCcDdeFHIjklLMmnpRrSTtUuVvWwXxYyZz%"

var iso8601 = mustCompile(aliases[ISO8601])

// Formatter formats time in a fixed location. It is safe for concurrent use.
type Formatter struct {
	layout string
	loc    *time.Location
	f      *strftime.Strftime
}

// New returns a Formatter for the %d option.
// Empty option means ISO8601, named formats are case-insensitive.
// Unknown verbs are output literally.
// Nil loc means the time is formatted in its own location.
func New(option string, loc *time.Location) *Formatter {
	layout := Layout(option)
	f, err := strftime.New(layout, strftime.WithMilliseconds('L'))
	if err != nil {
		layout, f = aliases[ISO8601], iso8601
	}
	return &Formatter{layout: layout, loc: loc, f: f}
}

// Layout returns the strftime layout used for the %d option.
func Layout(option string) string {
	if option == "" {
		return aliases[ISO8601]
	}
	if layout, ok := aliases[strings.ToUpper(option)]; ok {
		return layout
	}
	return escape(option)
}

// escape doubles '%' before verbs strftime would reject.
func escape(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '%' {
			sb.WriteByte(c)
			continue
		}
		if i+1 < len(s) && strings.IndexByte(knownVerbs, s[i+1]) >= 0 {
			sb.WriteByte(c)
			sb.WriteByte(s[i+1])
			i++
			continue
		}
		sb.WriteString("%%")
	}
	return sb.String()
}

// Layout returns the strftime layout in use.
func (f *Formatter) Layout() string { return f.layout }

// Append appends formatted t to b.
func (f *Formatter) Append(b []byte, t time.Time) []byte {
	if f.loc != nil {
		t = t.In(f.loc)
	}
	return f.f.FormatBuffer(b, t)
}

// Format returns formatted t.
func (f *Formatter) Format(t time.Time) string {
	return string(f.Append(nil, t))
}

func mustCompile(layout string) *strftime.Strftime {
	f, err := strftime.New(layout, strftime.WithMilliseconds('L'))
	if err != nil {
		panic(err)
	}
	return f
}
