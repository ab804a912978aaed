package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// fold lowercases rune by rune so character offsets are preserved.
func fold(s string) string { return strings.Map(unicode.ToLower, s) }

func indexFrom(haystack, needle string, offset int) (int, bool) {
	rs := []rune(haystack)
	offset = index(offset, len(rs))
	rest := string(rs[offset:])
	i := strings.Index(rest, needle)
	if i < 0 {
		return 0, false
	}
	return offset + utf8.RuneCountInString(rest[:i]), true
}

func lastIndexFrom(haystack, needle string, offset int) (int, bool) {
	rs := []rune(haystack)
	offset = index(offset, len(rs))
	i := strings.LastIndex(haystack, needle)
	if i < 0 {
		return 0, false
	}
	pos := utf8.RuneCountInString(haystack[:i])
	if pos < offset {
		return 0, false
	}
	return pos, true
}

// IndexOf returns the character index of the first needle at or after
// offset.
func (t Text) IndexOf(needle string, offset int) (int, bool) {
	return indexFrom(t.s, needle, offset)
}

// IndexOfFold is the case-insensitive IndexOf.
func (t Text) IndexOfFold(needle string, offset int) (int, bool) {
	return indexFrom(fold(t.s), fold(needle), offset)
}

// LastIndexOf returns the character index of the last needle, provided it
// starts at or after offset.
func (t Text) LastIndexOf(needle string, offset int) (int, bool) {
	return lastIndexFrom(t.s, needle, offset)
}

// LastIndexOfFold is the case-insensitive LastIndexOf.
func (t Text) LastIndexOfFold(needle string, offset int) (int, bool) {
	return lastIndexFrom(fold(t.s), fold(needle), offset)
}

// Contains reports whether any of needles occurs in t.
func (t Text) Contains(needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(t.s, n) {
			return true
		}
	}
	return false
}

// ContainsFold is the case-insensitive Contains.
func (t Text) ContainsFold(needles ...string) bool {
	s := fold(t.s)
	for _, n := range needles {
		if strings.Contains(s, fold(n)) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every needle occurs in t.
func (t Text) ContainsAll(needles ...string) bool {
	for _, n := range needles {
		if !strings.Contains(t.s, n) {
			return false
		}
	}
	return true
}

// ContainsAllFold is the case-insensitive ContainsAll.
func (t Text) ContainsAllFold(needles ...string) bool {
	s := fold(t.s)
	for _, n := range needles {
		if !strings.Contains(s, fold(n)) {
			return false
		}
	}
	return true
}

// HasPrefix reports whether t starts with any of prefixes.
func (t Text) HasPrefix(prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(t.s, p) {
			return true
		}
	}
	return false
}

// HasPrefixFold is the case-insensitive HasPrefix.
func (t Text) HasPrefixFold(prefixes ...string) bool {
	s := fold(t.s)
	for _, p := range prefixes {
		if strings.HasPrefix(s, fold(p)) {
			return true
		}
	}
	return false
}

// HasSuffix reports whether t ends with any of suffixes.
func (t Text) HasSuffix(suffixes ...string) bool {
	for _, p := range suffixes {
		if strings.HasSuffix(t.s, p) {
			return true
		}
	}
	return false
}

// HasSuffixFold is the case-insensitive HasSuffix.
func (t Text) HasSuffixFold(suffixes ...string) bool {
	s := fold(t.s)
	for _, p := range suffixes {
		if strings.HasSuffix(s, fold(p)) {
			return true
		}
	}
	return false
}

// Count returns the number of non-overlapping occurrences of needle.
func (t Text) Count(needle string) int {
	if needle == "" {
		return 0
	}
	return strings.Count(t.s, needle)
}

// CountFold is the case-insensitive Count.
func (t Text) CountFold(needle string) int {
	if needle == "" {
		return 0
	}
	return strings.Count(fold(t.s), fold(needle))
}
