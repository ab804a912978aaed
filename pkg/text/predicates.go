package text

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
)

// IsAlpha reports whether t is non-empty and made of letters only.
func (t Text) IsAlpha() bool { return t.s != "" && all(t.s, unicode.IsLetter) }

// IsAlphaNumeric reports whether t is non-empty and made of letters and
// digits only.
func (t Text) IsAlphaNumeric() bool {
	return t.s != "" && all(t.s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})
}

// IsDigit reports whether t is non-empty and made of ASCII digits only.
func (t Text) IsDigit() bool {
	return t.s != "" && all(t.s, func(r rune) bool { return r >= '0' && r <= '9' })
}

// IsWhitespace reports whether t is non-empty and made of whitespace only.
func (t Text) IsWhitespace() bool { return t.s != "" && all(t.s, unicode.IsSpace) }

// IsBlank reports whether t is empty or whitespace only.
func (t Text) IsBlank() bool { return all(t.s, unicode.IsSpace) }

// IsHex reports whether t is non-empty and made of hexadecimal digits only.
func (t Text) IsHex() bool {
	return t.s != "" && all(t.s, func(r rune) bool {
		return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
	})
}

// IsJSON reports whether t is a valid JSON document.
func (t Text) IsJSON() bool { return t.s != "" && json.Valid([]byte(t.s)) }

var (
	nonWordRun  = MustCompile(`[^\w\s]+`)
	leadingWord = MustCompile(`^(\S)`)
)

// CountWords counts whitespace separated words, ignoring punctuation.
func (t Text) CountWords() int {
	return t.Trim().
		MustReplace(nonWordRun, "").
		MustReplace(leadingWord, " $1").
		MustReplace(whitespaceRun, " ").
		Count(" ")
}

// ToBoolean interprets t as a flag. "true", "1", "yes", "y", "on" and
// "enabled" are true; "false", "0", "no", "n", "off" and "disabled" are
// false, compared case-insensitively after trimming. Other numbers are true
// when their integer part is positive; anything else is true when non-empty.
func (t Text) ToBoolean() bool {
	if v, ok := t.flag(); ok {
		return v
	}
	s := strings.TrimSpace(t.s)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f) > 0
	}
	return t.s != ""
}

// ToBooleanOr is ToBoolean with def returned for anything that is not one of
// the recognized flag words.
func (t Text) ToBooleanOr(def bool) bool {
	if v, ok := t.flag(); ok {
		return v
	}
	return def
}

func (t Text) flag() (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(t.s)) {
	case "false", "0", "no", "n", "off", "disabled":
		return false, true
	case "true", "1", "yes", "y", "on", "enabled":
		return true, true
	}
	return false, false
}
