package normalize

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/textkit/pkg/text"
)

// ToBoolean interprets v as a flag. Numbers are true when non-zero, null is
// false and text follows text.Text.ToBoolean.
func ToBoolean(v Value) bool {
	switch v.kind {
	case KindNull:
		return false
	case KindInt:
		return v.n != 0
	case KindFloat:
		f, err := strconv.ParseFloat(v.s, 64)
		return err == nil && f != 0
	}
	t, _ := Text(v)
	return t.ToBoolean()
}

// Compare reports whether a and b hold the same text, treating CRLF and LF
// line endings as equal. Two nulls are equal; null never equals a non-null.
func Compare(a, b Value) bool {
	if a.IsNull() || b.IsNull() {
		return a.IsNull() == b.IsNull()
	}
	return strings.ReplaceAll(a.s, "\r\n", "\n") == strings.ReplaceAll(b.s, "\r\n", "\n")
}

func check(v Value, fn func(text.Text) bool) bool {
	t, ok := Text(v)
	return ok && fn(t)
}

// IsAlpha reports whether v is non-empty and made of letters only.
func IsAlpha(v Value) bool { return check(v, text.Text.IsAlpha) }

// IsAlphaNumeric reports whether v is non-empty and made of letters and digits.
func IsAlphaNumeric(v Value) bool { return check(v, text.Text.IsAlphaNumeric) }

// IsDigit reports whether v is non-empty and made of ASCII digits.
func IsDigit(v Value) bool { return check(v, text.Text.IsDigit) }

// IsWhitespace reports whether v is non-empty and made of whitespace.
func IsWhitespace(v Value) bool { return check(v, text.Text.IsWhitespace) }

// IsHex reports whether v is a non-empty hexadecimal string.
func IsHex(v Value) bool { return check(v, text.Text.IsHex) }

// IsBlank reports whether v is null, empty or whitespace only.
func IsBlank(v Value) bool {
	t, ok := Text(v)
	return !ok || t.IsBlank()
}

// CountWords counts the words of v; null has none.
func CountWords(v Value) int {
	t, ok := Text(v)
	if !ok {
		return 0
	}
	return t.CountWords()
}
