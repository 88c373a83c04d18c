package pattern

import (
	"slices"
	"unicode/utf8"
)

// Justify applies m to the value already appended at b[pos:] and returns
// the updated b. Widths are counted in runes.
//
// A value longer than MaxWidth loses runes from its beginning, then
// a value shorter than MinWidth is padded with spaces on the left
// (on the right if LeftJustify is set).
func (m Modifiers) Justify(b []byte, pos int) []byte {
	if m.MinWidth <= 0 && m.MaxWidth < 0 {
		return b
	}

	// Count runes up to the amount needed for next checks.
	nMax := max(m.MinWidth, m.MaxWidth+1)
	n := 0
	for i := pos; i < len(b) && n < nMax; n++ {
		_, size := utf8.DecodeRune(b[i:])
		i += size
	}

	if w := m.MaxWidth; w >= 0 && n > w {
		n = utf8.RuneCount(b[pos:])
		cut := pos
		for range n - w {
			_, size := utf8.DecodeRune(b[cut:])
			cut += size
		}
		b = append(b[:pos], b[cut:]...)
		n = w
	}

	if pad := m.MinWidth - n; pad > 0 {
		end := len(b)
		b = slices.Grow(b, pad)[:end+pad]
		padStart := end
		if !m.LeftJustify {
			padStart = pos
			copy(b[pos+pad:], b[pos:end])
		}
		for i := range pad {
			b[padStart+i] = ' '
		}
	}
	return b
}
