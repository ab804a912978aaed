package text

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace.
func (t Text) Trim() Text { return t.with(strings.TrimSpace(t.s)) }

// TrimLeft removes leading whitespace.
func (t Text) TrimLeft() Text { return t.with(strings.TrimLeftFunc(t.s, unicode.IsSpace)) }

// TrimRight removes trailing whitespace.
func (t Text) TrimRight() Text { return t.with(strings.TrimRightFunc(t.s, unicode.IsSpace)) }

// TrimChars removes any of the characters in cutset from both ends. An empty
// cutset trims whitespace.
func (t Text) TrimChars(cutset string) Text {
	if cutset == "" {
		return t.Trim()
	}
	return t.with(strings.Trim(t.s, cutset))
}

// TrimLeftChars removes any of the characters in cutset from the start.
func (t Text) TrimLeftChars(cutset string) Text {
	if cutset == "" {
		return t.TrimLeft()
	}
	return t.with(strings.TrimLeft(t.s, cutset))
}

// TrimRightChars removes any of the characters in cutset from the end.
func (t Text) TrimRightChars(cutset string) Text {
	if cutset == "" {
		return t.TrimRight()
	}
	return t.with(strings.TrimRight(t.s, cutset))
}

// CollapseWhitespace trims t and replaces each inner whitespace run with a
// single space.
func (t Text) CollapseWhitespace() Text {
	return t.with(strings.Join(strings.Fields(t.s), " "))
}

// StripWhitespace removes all whitespace.
func (t Text) StripWhitespace() Text {
	return t.with(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, t.s))
}

var (
	delimitBoundary    = MustCompile(`\B(\p{Lu})`)
	delimitSeparators  = MustCompile(`[-_]+`)
	delimitPunctuation = MustCompile(`\p{P}`)
	whitespaceRun      = MustCompile(`\s+`)
)

// Delimit lowercases t and joins its words with sep. Words are split on
// whitespace, hyphens, underscores and inner capitals; punctuation is dropped.
//
//	text.New("HelloWorld foo_bar").Delimit(".") // "hello.world.foo.bar"
func (t Text) Delimit(sep string) Text {
	return t.Trim().
		MustReplace(delimitBoundary, "-$1").
		ToLower().
		MustReplace(delimitSeparators, " ").
		MustReplace(delimitPunctuation, "").
		Trim().
		MustReplaceFunc(whitespaceRun, func(Match) string { return sep })
}
