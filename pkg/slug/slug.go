package slug

import (
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/textkit/pkg/text"
)

var (
	wordBoundary   = text.MustCompile(`([a-z][a-z])([A-Z][a-z])`)
	wordSeparators = text.MustCompile(`[\s_/]`)
	dashRun        = text.MustCompile(`-+`)
	upperBoundary  = text.MustCompile(`([^ ])([A-Z])`)
)

// Make converts s to a URL-safe slug.
//
// The input is transliterated to ASCII, word boundaries inside camel-cased
// words are split, whitespace, underscores and slashes become separators and
// anything outside a-z, 0-9, '_' and '-' is dropped. Separator runs are
// collapsed and trimmed from both ends.
func Make(s string, opts ...Option) string {
	cfg := newConfig(opts)
	return cfg.finish(cfg.base(s))
}

// Path slugs every '/'-separated segment of s and joins the non-empty
// results with '/'. Options apply to each segment.
func Path(s string, opts ...Option) string {
	segments := strings.Split(s, "/")
	out := segments[:0]
	for _, seg := range segments {
		if seg = Make(seg, opts...); seg != "" {
			out = append(out, seg)
		}
	}
	return strings.Join(out, "/")
}

// Action converts s to a dash-separated lowercase action name, splitting
// before every inner capital: "ArchiveAll items" becomes "archive-all-items".
// Unlike Make it keeps punctuation.
func Action(s string) string {
	return text.New(s).
		ToASCII("", true).
		MustReplace(upperBoundary, "$1-$2").
		Replace(" ", "-").
		ToLower().
		MustReplace(dashRun, "-").
		TrimChars(" -").
		String()
}

func (c *config) base(s string) string {
	if r := c.replacer(); r != nil {
		s = r.Replace(s)
	}
	if c.strip != "" {
		s = strings.Map(func(r rune) rune {
			if strings.ContainsRune(c.strip, r) {
				return -1
			}
			return r
		}, s)
	}

	t := text.New(s).ToASCII(c.lang, true).MustReplace(wordBoundary, "$1 $2")
	if c.lowercase {
		t = t.ToLower()
	}
	out := t.MustReplace(wordSeparators, "-").
		MustReplace(c.disallowed(), "").
		MustReplace(dashRun, "-").
		TrimChars(" -").
		String()

	if c.separator != "-" {
		out = strings.ReplaceAll(out, "-", c.separator)
	}
	return out
}

func (c *config) disallowed() *text.Pattern {
	class := `a-z0-9_\-`
	if !c.lowercase {
		class = `a-zA-Z0-9_\-`
	}
	return text.MustCompile("[^" + class + escapeClass(c.allowed) + "]")
}

// escapeClass quotes the characters that are special inside a bracket
// expression.
func escapeClass(chars string) string {
	var b strings.Builder
	for _, r := range chars {
		switch r {
		case '\\', ']', '[', '^', '-':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// finish applies the length limits and suffix rules to a base slug.
func (c *config) finish(s string) string {
	if c.suffixLen > 0 {
		s = c.appendSuffix(s, c.suffixLen, false)
	} else if truncated := c.truncate(s, c.maxLength); c.isReserved(s) || c.isReserved(truncated) {
		s = c.appendSuffix(s, defaultSuffixLength, true)
	} else {
		s = truncated
	}

	if c.minLength > 0 && utf8.RuneCountInString(s) < c.minLength {
		s = c.appendSuffix(s, defaultSuffixLength, true)
	}
	return s
}

// appendSuffix adds a random suffix of n characters while honouring
// maxLength. With shrink set the suffix gives way before the base does.
func (c *config) appendSuffix(s string, n int, shrink bool) string {
	if s == "" {
		if c.maxLength > 0 {
			n = min(n, c.maxLength)
		}
		return randomSuffix(n, c.lowercase)
	}

	if c.maxLength > 0 {
		sepLen := utf8.RuneCountInString(c.separator)
		room := c.maxLength - utf8.RuneCountInString(s) - sepLen
		switch {
		case room >= n:
		case shrink && room > 0:
			n = room
		case c.maxLength-sepLen-n > 0:
			s = c.truncate(s, c.maxLength-sepLen-n)
		default:
			return randomSuffix(min(n, c.maxLength), c.lowercase)
		}
	}
	return s + c.separator + randomSuffix(n, c.lowercase)
}

// truncate cuts s to n characters and drops any dangling separator. A
// non-positive n leaves s unchanged.
func (c *config) truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	s = string([]rune(s)[:n])
	if c.separator != "" {
		s = strings.TrimRight(s, c.separator)
	}
	return s
}
