package pattern_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/powerman/check"

	"github.com/powerman/slogpattern/internal/pattern"
)

func lit(s string) pattern.Node {
	return pattern.Node{Kind: pattern.Literal, Text: s, Modifiers: pattern.Modifiers{MaxWidth: -1}}
}

func conv(k pattern.Kind) pattern.Node {
	return pattern.Node{Kind: k, Modifiers: pattern.Modifiers{MaxWidth: -1}}
}

func opt(k pattern.Kind, option string) pattern.Node {
	n := conv(k)
	n.Text = option
	n.HasOption = true
	return n
}

func mod(n pattern.Node, left bool, minWidth, maxWidth int) pattern.Node {
	n.Modifiers = pattern.Modifiers{LeftJustify: left, MinWidth: minWidth, MaxWidth: maxWidth}
	return n
}

func TestCompile(tt *testing.T) {
	t := check.T(tt)
	t.Parallel()

	type N = []pattern.Node
	tests := []struct {
		pattern string
		want    N
	}{
		{"", nil},
		{"plain text", N{lit("plain text")}},
		{"%m%n", N{conv(pattern.Message), conv(pattern.LineSeparator)}},
		{"%r [%t] %p %c %x - %m%n", N{
			conv(pattern.Elapsed), lit(" ["), conv(pattern.ThreadName), lit("] "),
			conv(pattern.Level), lit(" "), conv(pattern.LoggerName), lit(" "),
			conv(pattern.NDC), lit(" - "), conv(pattern.Message), conv(pattern.LineSeparator),
		}},
		{"%-5p [%t]: %m%n", N{
			mod(conv(pattern.Level), true, 5, -1), lit(" ["), conv(pattern.ThreadName),
			lit("]: "), conv(pattern.Message), conv(pattern.LineSeparator),
		}},
		{"%20.30c", N{mod(conv(pattern.LoggerName), false, 20, 30)}},
		{"%.30c", N{mod(conv(pattern.LoggerName), false, 0, 30)}},
		{"%-.0c", N{mod(conv(pattern.LoggerName), true, 0, 0)}},
		{"%10.c", N{mod(conv(pattern.LoggerName), false, 10, -1)}},
		{"%c{2}", N{opt(pattern.LoggerName, "2")}},
		{"%d{ISO8601}%d{}", N{opt(pattern.Date, "ISO8601"), opt(pattern.Date, "")}},
		{"%-10X{user}|", N{mod(opt(pattern.MDC, "user"), true, 10, -1), lit("|")}},
		{"%F:%L %l", N{conv(pattern.FileName), lit(":"), conv(pattern.LineNumber), lit(" "), conv(pattern.Location)}},
		// Options only for c, d, X.
		{"%m{x}", N{conv(pattern.Message), lit("{x}")}},
		{"%X", N{conv(pattern.MDC)}},
		// Escapes.
		{"%%", N{lit("%")}},
		{"100%% done", N{lit("100% done")}},
		{"%%%m", N{lit("%"), conv(pattern.Message)}},
		{"%%m", N{lit("%m")}},
		// Malformed.
		{"%", N{lit("%")}},
		{"abc%", N{lit("abc%")}},
		{"%-5", N{lit("%-5")}},
		{"%5.", N{lit("%5.")}},
		{"%z", N{lit("%z")}},
		{"a%-5.3zb", N{lit("a%-5.3zb")}},
		{"%ё%m", N{lit("%ё"), conv(pattern.Message)}},
		{"%5%m", N{lit("%5"), conv(pattern.Message)}},
		{"%X{", N{lit("%X{")}},
		{"%m %X{user %m", N{conv(pattern.Message), lit(" %X{user %m")}},
		{"%99999999999999999999999m.", N{lit("%99999999999999999999999m.")}},
		{"%.99999999999999999999999c{1}", N{lit("%.99999999999999999999999c{1}")}},
	}
	for _, tc := range tests {
		t.Run(tc.pattern, func(tt *testing.T) {
			t := check.T(tt)
			t.DeepEqual(pattern.Compile(tc.pattern), tc.want)
		})
	}
}

// Adjacent literals are merged and rejoining them restores
// the pattern for any text without conversions.
func TestCompileLiteralOnly(tt *testing.T) {
	t := check.T(tt)
	t.Parallel()

	const alphabet = "abc {}.-0123456789\t\nё"
	r := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		var sb strings.Builder
		for range r.IntN(40) {
			runes := []rune(alphabet)
			sb.WriteRune(runes[r.IntN(len(runes))])
		}
		p := sb.String()
		nodes := pattern.Compile(p)
		if p == "" {
			t.Len(nodes, 0)
			continue
		}
		t.DeepEqual(nodes, []pattern.Node{lit(p)}, p)
	}
}

func TestCompileIdempotent(tt *testing.T) {
	t := check.T(tt)
	t.Parallel()

	for _, p := range []string{
		"%r [%t] %p %c %x - %m%n",
		"%d{ABSOLUTE} %-5p %.10c{2} %X{a} %%%z%X{",
	} {
		t.DeepEqual(pattern.Compile(p), pattern.Compile(p), p)
	}
}

func TestKind(tt *testing.T) {
	t := check.T(tt)
	t.Parallel()

	t.Equal(pattern.Literal.String(), "literal")
	t.Equal(pattern.MDC.String(), "%X")
	t.True(pattern.LoggerName.TakesOption())
	t.True(pattern.Date.TakesOption())
	t.True(pattern.MDC.TakesOption())
	t.False(pattern.Message.TakesOption())
	t.False(pattern.NDC.TakesOption())
}
