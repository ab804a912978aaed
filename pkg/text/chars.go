package text

import (
	"math/rand/v2"
	"strings"

	"github.com/rivo/uniseg"
)

// index resolves a possibly negative character index against n, clamped to
// [0, n].
func index(i, n int) int {
	if i < 0 {
		i += n
	}
	return min(max(i, 0), n)
}

// substr returns up to length characters from start. A negative start counts
// from the end; a negative length stops that many characters before the end.
func substr(rs []rune, start, length int, bounded bool) string {
	n := len(rs)
	if start > n {
		return ""
	}
	start = index(start, n)
	end := n
	if bounded {
		if length < 0 {
			end = n + length
		} else {
			end = min(n, start+length)
		}
	}
	if end <= start {
		return ""
	}
	return string(rs[start:end])
}

// Slice returns the characters from start to the end.
func (t Text) Slice(start int) Text {
	return t.with(substr([]rune(t.s), start, 0, false))
}

// SliceN returns length characters from start.
func (t Text) SliceN(start, length int) Text {
	return t.with(substr([]rune(t.s), start, length, true))
}

// Char returns the character at i.
func (t Text) Char(i int) Text { return t.SliceN(i, 1) }

// HasCharAt reports whether a character exists at i.
func (t Text) HasCharAt(i int) bool {
	n := t.Len()
	if i < 0 {
		i += n
	}
	return i >= 0 && i < n
}

// ReplaceChar replaces the character at i with s. An index past the end
// appends s.
func (t Text) ReplaceChar(i int, s string) Text {
	rs := []rune(t.s)
	i = index(i, len(rs))
	return t.with(string(rs[:i]) + s + string(rs[min(i+1, len(rs)):]))
}

// Insert inserts s before the character at i.
func (t Text) Insert(i int, s string) Text {
	rs := []rune(t.s)
	i = index(i, len(rs))
	return t.with(string(rs[:i]) + s + string(rs[i:]))
}

// RemoveChar removes the character at i.
func (t Text) RemoveChar(i int) Text {
	rs := []rune(t.s)
	i = index(i, len(rs))
	return t.with(string(rs[:i]) + string(rs[min(i+1, len(rs)):]))
}

// SliceRandom returns length consecutive characters from a random position.
func (t Text) SliceRandom(length int) Text {
	n := t.Len()
	if length >= n {
		return t
	}
	if length <= 0 {
		return t.with("")
	}
	return t.SliceN(rand.IntN(n-length+1), length)
}

// SliceDelimited returns the text between the first start found at or after
// offset and the following end. It returns an empty Text when either
// delimiter is missing.
func (t Text) SliceDelimited(start, end string, offset int) Text {
	from, ok := t.IndexOf(start, offset)
	if !ok {
		return t.with("")
	}
	from += len([]rune(start))
	to, ok := t.IndexOf(end, from)
	if !ok {
		return t.with("")
	}
	return t.SliceN(from, to-from)
}

// Truncate limits t to length characters including marker, which is
// appended when anything is cut.
func (t Text) Truncate(length int, marker string) Text {
	if length >= t.Len() {
		return t
	}
	keep := max(length-len([]rune(marker)), 0)
	return t.with(substr([]rune(t.s), 0, keep, true) + marker)
}

// Graphemes splits t into user-perceived characters.
func (t Text) Graphemes() []string {
	out := make([]string, 0, len(t.s))
	g := uniseg.NewGraphemes(t.s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// GraphemeLen counts user-perceived characters.
func (t Text) GraphemeLen() int { return uniseg.GraphemeClusterCount(t.s) }

// Width returns the monospace display width.
func (t Text) Width() int { return uniseg.StringWidth(t.s) }

func (t Text) pad(size int, pad string, left, right bool) Text {
	size = max(size, -size)
	n := t.Len()
	if n >= size || pad == "" {
		return t
	}
	fill := size - n
	var l, r int
	switch {
	case left && right:
		l = fill / 2
		r = fill - l
	case left:
		l = fill
	default:
		r = fill
	}
	return t.with(repeatTo(pad, l) + t.s + repeatTo(pad, r))
}

func repeatTo(pad string, n int) string {
	if n <= 0 {
		return ""
	}
	rs := []rune(strings.Repeat(pad, n/len([]rune(pad))+1))
	return string(rs[:n])
}

// PadLeft left pads t with pad until it is size characters long.
func (t Text) PadLeft(size int, pad string) Text { return t.pad(size, pad, true, false) }

// PadRight right pads t with pad until it is size characters long.
func (t Text) PadRight(size int, pad string) Text { return t.pad(size, pad, false, true) }

// PadBoth centers t, putting the odd pad character on the right.
func (t Text) PadBoth(size int, pad string) Text { return t.pad(size, pad, true, true) }
