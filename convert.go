package slogpattern

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/powerman/slogpattern/internal/pattern"
)

// unknown is output instead of unavailable call site details.
const unknown = "?"

func (l *Layout) appendValue(b []byte, conv *converter, ev Event) []byte {
	switch conv.Kind {
	case pattern.LoggerName:
		return append(b, lastComponents(ev.LoggerName(), conv.depth)...)
	case pattern.Date:
		return conv.date.Append(b, ev.Timestamp())
	case pattern.FileName:
		src := ev.Source()
		if src == nil || src.File == "" {
			return append(b, unknown...)
		}
		return append(b, filepath.Base(src.File)...)
	case pattern.Location:
		return appendLocation(b, ev)
	case pattern.LineNumber:
		src := ev.Source()
		if src == nil || src.Line <= 0 {
			return append(b, unknown...)
		}
		return strconv.AppendInt(b, int64(src.Line), 10)
	case pattern.Message:
		return append(b, ev.RenderedMessage()...)
	case pattern.LineSeparator:
		return append(b, l.lineSeparator()...)
	case pattern.Level:
		return append(b, ev.LevelName()...)
	case pattern.Elapsed:
		return strconv.AppendInt(b, ev.Timestamp().Sub(l.startTime()).Milliseconds(), 10)
	case pattern.ThreadName:
		return append(b, ev.ThreadName()...)
	case pattern.NDC:
		return append(b, ev.NDC()...)
	case pattern.MDC:
		v, _ := ev.MDC(conv.Text)
		return append(b, v...)
	case pattern.Literal:
		return append(b, conv.Text...)
	}
	return b
}

// appendLocation outputs call site as function(file:line).
func appendLocation(b []byte, ev Event) []byte {
	src := ev.Source()
	if src == nil || (src.Function == "" && src.File == "") {
		return append(b, unknown...)
	}
	if src.Function == "" {
		b = append(b, unknown...)
	} else {
		b = append(b, src.Function...)
	}
	b = append(b, '(')
	if src.File == "" {
		b = append(b, unknown...)
	} else {
		b = append(b, filepath.Base(src.File)...)
	}
	b = append(b, ':')
	if src.Line <= 0 {
		b = append(b, unknown...)
	} else {
		b = strconv.AppendInt(b, int64(src.Line), 10)
	}
	return append(b, ')')
}

// parseDepth returns N for %c{N} or 0 if option is not a positive number.
func parseDepth(option string) int {
	n, err := strconv.Atoi(strings.TrimSpace(option))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// lastComponents returns the last n dot-separated components of name.
// Zero n or name with fewer components results in name.
func lastComponents(name string, n int) string {
	if n <= 0 {
		return name
	}
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			n--
			if n == 0 {
				return name[i+1:]
			}
		}
	}
	return name
}
