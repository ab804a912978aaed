package slug

import (
	"slices"
	"strings"
)

const defaultSuffixLength = 6

// Option configures Make and Path.
type Option func(*config)

type config struct {
	allowed   string
	lang      string
	separator string
	strip     string
	replace   map[string]string
	reserved  map[string]struct{}
	maxLength int
	minLength int
	suffixLen int
	lowercase bool
}

func newConfig(opts []Option) *config {
	cfg := &config{
		separator: "-",
		lowercase: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// AllowedChars keeps the given characters in the slug in addition to
// a-z, 0-9, '_' and '-'.
func AllowedChars(chars string) Option {
	return func(c *config) { c.allowed = chars }
}

// Language selects transliteration overrides, e.g. "de" turns "ü" into "ue".
func Language(lang string) Option {
	return func(c *config) { c.lang = lang }
}

// MaxLength limits the slug length in characters. Zero disables the limit.
func MaxLength(n int) Option {
	return func(c *config) { c.maxLength = max(n, 0) }
}

// MinLength pads slugs shorter than n characters with a random suffix.
func MinLength(n int) Option {
	return func(c *config) { c.minLength = max(n, 0) }
}

// Separator sets the string placed between words. It may be empty.
func Separator(sep string) Option {
	return func(c *config) { c.separator = sep }
}

// Lowercase controls case folding. With false, upper-case letters survive and
// random suffixes may contain them.
func Lowercase(lower bool) Option {
	return func(c *config) { c.lowercase = lower }
}

// StripChars removes every character in chars before processing.
func StripChars(chars string) Option {
	return func(c *config) { c.strip = chars }
}

// CustomReplace applies literal replacements before processing. Longer keys
// are replaced first.
func CustomReplace(m map[string]string) Option {
	return func(c *config) { c.replace = m }
}

// WithSuffix appends a random alphanumeric suffix of n characters.
func WithSuffix(n int) Option {
	return func(c *config) { c.suffixLen = max(n, 0) }
}

// ReservedSlugs lists slugs that must not be produced as-is. A matching slug,
// compared case-insensitively, gets a random suffix.
func ReservedSlugs(slugs ...string) Option {
	return func(c *config) {
		if len(slugs) == 0 {
			return
		}
		c.reserved = make(map[string]struct{}, len(slugs))
		for _, s := range slugs {
			c.reserved[strings.ToLower(s)] = struct{}{}
		}
	}
}

func (c *config) isReserved(s string) bool {
	if c.reserved == nil {
		return false
	}
	_, ok := c.reserved[strings.ToLower(s)]
	return ok
}

// replacer builds a deterministic replacer from the custom map.
func (c *config) replacer() *strings.Replacer {
	if len(c.replace) == 0 {
		return nil
	}
	keys := make([]string, 0, len(c.replace))
	for k := range c.replace {
		if k != "" {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, func(a, b string) int {
		if d := len(b) - len(a); d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})
	oldnew := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		oldnew = append(oldnew, k, c.replace[k])
	}
	return strings.NewReplacer(oldnew...)
}
