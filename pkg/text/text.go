package text

import (
	"strings"
	"unicode/utf8"
)

// DefaultEncoding is the encoding tag of a Text created without WithEncoding.
const DefaultEncoding = "UTF-8"

// Text is an immutable sequence of Unicode characters tagged with a declared
// character encoding. The zero value is an empty UTF-8 Text.
type Text struct {
	s   string
	enc string
}

// Option configures a Text at construction.
type Option func(*Text)

// WithEncoding sets the declared encoding tag. Unknown names are stored as
// given; Encode and ConvertEncoding report them as ErrInvalidEncoding.
func WithEncoding(name string) Option {
	return func(t *Text) {
		if canonical, err := canonicalEncoding(name); err == nil {
			t.enc = canonical
			return
		}
		t.enc = name
	}
}

// New wraps s. Invalid UTF-8 sequences are replaced with U+FFFD.
func New(s string, opts ...Option) Text {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "�")
	}
	t := Text{s: s}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// String returns the content as a Go string.
func (t Text) String() string { return t.s }

// Encoding returns the declared encoding tag.
func (t Text) Encoding() string {
	if t.enc == "" {
		return DefaultEncoding
	}
	return t.enc
}

// Len returns the number of characters.
func (t Text) Len() int { return utf8.RuneCountInString(t.s) }

// IsEmpty reports whether t has no characters.
func (t Text) IsEmpty() bool { return t.s == "" }

// Equal reports whether t and o hold the same characters.
func (t Text) Equal(o Text) bool { return t.s == o.s }

// Runes returns the characters of t.
func (t Text) Runes() []rune { return []rune(t.s) }

// Chars returns each character of t as its own string.
func (t Text) Chars() []string {
	out := make([]string, 0, len(t.s))
	for _, r := range t.s {
		out = append(out, string(r))
	}
	return out
}

// MarshalText implements encoding.TextMarshaler.
func (t Text) MarshalText() ([]byte, error) { return []byte(t.s), nil }

func (t Text) with(s string) Text {
	return Text{s: s, enc: t.enc}
}

// Append adds s to the end.
func (t Text) Append(s string) Text { return t.with(t.s + s) }

// Prepend adds s to the start.
func (t Text) Prepend(s string) Text { return t.with(s + t.s) }

// SurroundWith adds s to both ends.
func (t Text) SurroundWith(s string) Text { return t.with(s + t.s + s) }

// Replace replaces every literal occurrence of old with repl.
func (t Text) Replace(old, repl string) Text {
	if old == "" {
		return t
	}
	return t.with(strings.ReplaceAll(t.s, old, repl))
}

// ReplaceEach performs several literal replacements in one pass. oldnew holds
// old, new pairs; a trailing unpaired value is ignored.
func (t Text) ReplaceEach(oldnew ...string) Text {
	if len(oldnew)%2 == 1 {
		oldnew = oldnew[:len(oldnew)-1]
	}
	if len(oldnew) == 0 {
		return t
	}
	return t.with(strings.NewReplacer(oldnew...).Replace(t.s))
}

// Split splits around sep. A limit above zero caps the number of parts, the
// last part holding the remainder.
func (t Text) Split(sep string, limit int) []Text {
	if limit <= 0 {
		limit = -1
	}
	parts := strings.SplitN(t.s, sep, limit)
	out := make([]Text, len(parts))
	for i, p := range parts {
		out[i] = t.with(p)
	}
	return out
}

// TabsToSpaces replaces each tab with width spaces.
func (t Text) TabsToSpaces(width int) Text {
	return t.with(strings.ReplaceAll(t.s, "\t", strings.Repeat(" ", max(width, 0))))
}

// SpacesToTabs replaces each run of width spaces with a tab.
func (t Text) SpacesToTabs(width int) Text {
	if width <= 0 {
		return t
	}
	return t.with(strings.ReplaceAll(t.s, strings.Repeat(" ", width), "\t"))
}

var msWordReplacer = strings.NewReplacer(
	"…", "...",
	"“", `"`, "”", `"`,
	"‘", "'", "’", "'",
	"–", "-", "—", "-",
)

// TidyMsWord replaces typographic ellipses, curly quotes and dashes with
// their plain ASCII counterparts.
func (t Text) TidyMsWord() Text { return t.with(msWordReplacer.Replace(t.s)) }
