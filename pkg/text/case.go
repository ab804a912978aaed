package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToLower lowercases every character.
func (t Text) ToLower() Text { return t.with(strings.ToLower(t.s)) }

// ToUpper uppercases every character.
func (t Text) ToUpper() Text { return t.with(strings.ToUpper(t.s)) }

// ToTitle uppercases the first letter of each word and lowercases the rest.
// Word boundaries follow Unicode rules, so "o'neil" becomes "O'neil".
func (t Text) ToTitle() Text {
	// Casers keep state and cannot be shared.
	return t.with(cases.Title(language.Und).String(t.s))
}

// FirstToUpper uppercases the first character.
func (t Text) FirstToUpper() Text { return t.mapFirst(unicode.ToUpper) }

// FirstToLower lowercases the first character.
func (t Text) FirstToLower() Text { return t.mapFirst(unicode.ToLower) }

func (t Text) mapFirst(fn func(rune) rune) Text {
	r, size := utf8.DecodeRuneInString(t.s)
	if size == 0 {
		return t
	}
	return t.with(string(fn(r)) + t.s[size:])
}

// SwapCase inverts the case of every letter.
func (t Text) SwapCase() Text {
	return t.with(strings.Map(func(r rune) rune {
		if unicode.ToUpper(r) == r {
			return unicode.ToLower(r)
		}
		return unicode.ToUpper(r)
	}, t.s))
}

// IsLower reports whether every character is a lowercase letter. It is true
// for an empty Text.
func (t Text) IsLower() bool { return all(t.s, unicode.IsLower) }

// HasLower reports whether t contains a lowercase letter.
func (t Text) HasLower() bool { return strings.IndexFunc(t.s, unicode.IsLower) >= 0 }

// IsUpper reports whether every character is an uppercase letter. It is true
// for an empty Text.
func (t Text) IsUpper() bool { return all(t.s, unicode.IsUpper) }

// HasUpper reports whether t contains an uppercase letter.
func (t Text) HasUpper() bool { return strings.IndexFunc(t.s, unicode.IsUpper) >= 0 }

func all(s string, fn func(rune) bool) bool {
	for _, r := range s {
		if !fn(r) {
			return false
		}
	}
	return true
}
