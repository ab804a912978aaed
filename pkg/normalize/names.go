package normalize

import (
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/textkit/pkg/text"
)

var (
	nonNameChars  = text.MustCompile(`[^\p{L}\p{Nd}\s]`)
	innerCapital  = text.MustCompile(`([^ ])(\p{Lu})`)
	nonInitial    = text.MustCompile(`[^\p{Lu}\p{Nd}]`)
	titlePrefixes = map[string]struct{}{"mr": {}, "ms": {}, "mrs": {}, "miss": {}, "dr": {}}
)

func isTitle(token string) bool {
	_, ok := titlePrefixes[strings.ToLower(token)]
	return ok
}

func capitalize(s string) string { return text.New(s).FirstToUpper().String() }

// nameText returns the string form of v for the token based name pipelines,
// which treat the empty string as null.
func nameText(v Value) (string, bool) {
	if v.IsNull() || v.s == "" {
		return "", false
	}
	return v.s, true
}

// FirstName extracts a first name from a full name. A leading title ("Dr",
// "Mrs", ...) is skipped when another token follows it. First names shorter
// than three characters are extended with the last remaining token.
func FirstName(v Value) (string, bool) {
	full, ok := nameText(v)
	if !ok {
		return "", false
	}
	parts := strings.Split(full, " ")
	out, rest := parts[0], parts[1:]
	if isTitle(out) {
		if len(rest) == 0 {
			out = full
		} else {
			out, rest = rest[0], rest[1:]
		}
	}
	if utf8.RuneCountInString(out) < 3 && len(rest) > 0 {
		out += " " + rest[len(rest)-1]
	}
	return capitalize(out), true
}

// Initials returns one upper-case letter or digit per word of v: "John
// Michael Smith" becomes "JMS". With extendShort a single initial is followed
// by the second character of the transliterated name once its lower-case
// vowels are removed, so "john" becomes "Jh".
func Initials(v Value, extendShort bool) (string, bool) {
	if v.IsNull() {
		return "", false
	}
	return initials(v.s, extendShort), true
}

func initials(name string, extendShort bool) string {
	out := text.New(name).ReplaceEach("-", " ", "_", " ").MustReplace(nonNameChars, "")
	if out.Contains(" ") {
		out = out.ToTitle()
	}
	out = out.MustReplace(innerCapital, "$1 $2").ToTitle().MustReplace(nonInitial, "")

	if extendShort && out.Len() == 1 {
		out = out.Append(text.New(name).
			ToASCII("", true).
			ReplaceEach("a", "", "e", "", "i", "", "o", "", "u", "").
			Char(1).
			String())
	}
	return out.String()
}

// splitName separates the surname (last token) from the leading tokens,
// dropping a title prefix.
func splitName(full string) (rest []string, surname string) {
	parts := strings.Split(full, " ")
	rest, surname = parts[:len(parts)-1], parts[len(parts)-1]
	if len(rest) > 0 && isTitle(rest[0]) {
		rest = rest[1:]
	}
	return rest, surname
}

// InitialsAndSurname abbreviates every name but the surname: "Dr John
// Michael smith" becomes "JM Smith".
func InitialsAndSurname(v Value) (string, bool) {
	full, ok := nameText(v)
	if !ok {
		return "", false
	}
	rest, surname := splitName(full)
	if in := initials(strings.Join(rest, " "), false); in != "" {
		return in + " " + capitalize(surname), true
	}
	return capitalize(surname), true
}

// InitialMiddleNames abbreviates the middle names only: "john Michael Peter
// smith" becomes "John MP Smith".
func InitialMiddleNames(v Value) (string, bool) {
	full, ok := nameText(v)
	if !ok {
		return "", false
	}
	rest, surname := splitName(full)

	out := make([]string, 0, 3)
	if len(rest) > 0 {
		if first := capitalize(rest[0]); first != "" {
			out = append(out, first)
		}
		if middle := initials(strings.Join(rest[1:], " "), false); middle != "" {
			out = append(out, middle)
		}
	}
	out = append(out, capitalize(surname))
	return strings.Join(out, " "), true
}
