// Package pattern compiles conversion patterns like "%-5p [%t] %c{2} - %m%n"
// into a chain of nodes and implements the width modifiers shared by all
// conversions.
//
// Compile never fails: anything it does not understand is kept as literal
// text, so a broken pattern shows up in the output instead of breaking logging.
package pattern

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Kind identifies a node: literal text or one of the conversions.
type Kind byte

// Node kinds. Value of each conversion kind is its conversion character.
const (
	Literal       Kind = 0
	LoggerName    Kind = 'c'
	Date          Kind = 'd'
	FileName      Kind = 'F'
	Location      Kind = 'l'
	LineNumber    Kind = 'L'
	Message       Kind = 'm'
	LineSeparator Kind = 'n'
	Level         Kind = 'p'
	Elapsed       Kind = 'r'
	ThreadName    Kind = 't'
	NDC           Kind = 'x'
	MDC           Kind = 'X'
)

const marker = '%'

func kindOf(c byte) (Kind, bool) {
	switch k := Kind(c); k {
	case LoggerName, Date, FileName, Location, LineNumber, Message,
		LineSeparator, Level, Elapsed, ThreadName, NDC, MDC:
		return k, true
	}
	return Literal, false
}

// TakesOption reports whether a "{...}" right after the conversion
// character belongs to the conversion.
func (k Kind) TakesOption() bool {
	return k == LoggerName || k == Date || k == MDC
}

func (k Kind) String() string {
	if k == Literal {
		return "literal"
	}
	return "%" + string(rune(k))
}

// Modifiers are the optional "-", minimum width and maximum width
// between '%' and the conversion character.
type Modifiers struct {
	LeftJustify bool
	MinWidth    int // 0 means no minimum.
	MaxWidth    int // -1 means no limit.
}

// Node is one element of a compiled pattern.
type Node struct {
	Kind      Kind
	Text      string // Literal text, or the "{...}" option of a conversion.
	HasOption bool
	Modifiers
}

// Compile splits p into literal and conversion nodes.
// Adjacent literal text is merged into one node.
func Compile(p string) []Node {
	var (
		nodes []Node
		lit   strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			nodes = append(nodes, Node{Kind: Literal, Text: lit.String(), Modifiers: Modifiers{MaxWidth: -1}})
			lit.Reset()
		}
	}

	for i := 0; i < len(p); {
		c := p[i]
		if c != marker {
			end := strings.IndexByte(p[i:], marker)
			if end < 0 {
				end = len(p) - i
			}
			lit.WriteString(p[i : i+end])
			i += end
			continue
		}

		start := i
		i++
		if i < len(p) && p[i] == marker {
			lit.WriteByte(marker)
			i++
			continue
		}

		mod := Modifiers{MaxWidth: -1}
		if i < len(p) && p[i] == '-' {
			mod.LeftJustify = true
			i++
		}
		var valid, ok bool
		mod.MinWidth, i, valid = digits(p, i, 0)
		if i < len(p) && p[i] == '.' {
			mod.MaxWidth, i, ok = digits(p, i+1, -1)
			valid = valid && ok
		}

		switch {
		case i >= len(p):
			lit.WriteString(p[start:])
			continue
		case p[i] == marker:
			// Not a conversion character, but it may start the next one.
			lit.WriteString(p[start:i])
			continue
		}

		kind, known := kindOf(p[i])
		if !known {
			_, size := utf8.DecodeRuneInString(p[i:])
			i += size
			lit.WriteString(p[start:i])
			continue
		}
		i++

		n := Node{Kind: kind, Modifiers: mod}
		if kind.TakesOption() && i < len(p) && p[i] == '{' {
			end := strings.IndexByte(p[i+1:], '}')
			if end < 0 {
				lit.WriteString(p[start:])
				break
			}
			n.Text = p[i+1 : i+1+end]
			n.HasOption = true
			i += end + 2
		}
		if !valid {
			lit.WriteString(p[start:i])
			continue
		}

		flush()
		nodes = append(nodes, n)
	}
	flush()
	return nodes
}

// digits parses a run of decimal digits starting at p[i].
// It returns def if there are no digits and ok=false on overflow.
func digits(p string, i, def int) (n, next int, ok bool) {
	start := i
	for i < len(p) && '0' <= p[i] && p[i] <= '9' {
		d := int(p[i] - '0')
		if n > (math.MaxInt-d)/10 {
			for i < len(p) && '0' <= p[i] && p[i] <= '9' {
				i++
			}
			return 0, i, false
		}
		n = n*10 + d
		i++
	}
	if i == start {
		return def, i, true
	}
	return n, i, true
}
