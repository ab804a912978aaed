package translit

import (
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var generic = sync.OnceValue(func() *strings.Replacer {
	pairs := make([]string, 0, 1024)
	for _, e := range table {
		for _, src := range e.sources {
			pairs = append(pairs, src, e.ascii)
		}
	}
	return strings.NewReplacer(pairs...)
})

var languageReplacers = sync.OnceValue(func() map[string]*strings.Replacer {
	m := make(map[string]*strings.Replacer, len(overrides))
	for lang, o := range overrides {
		pairs := make([]string, 0, len(o.sources)*2)
		for i, src := range o.sources {
			pairs = append(pairs, src, o.targets[i])
		}
		m[lang] = strings.NewReplacer(pairs...)
	}
	return m
})

var runeIndex = sync.OnceValue(func() map[rune]string {
	m := make(map[rune]string, 1024)
	for _, e := range table {
		for _, src := range e.sources {
			r, size := utf8.DecodeRuneInString(src)
			if size != len(src) {
				continue
			}
			if _, taken := m[r]; !taken {
				m[r] = e.ascii
			}
		}
	}
	return m
})

// ToASCII transliterates s to ASCII. lang selects an optional set of
// language overrides ("de", "de-AT" and "de_AT" are equivalent); an unknown or
// empty lang uses the generic table only. When removeUnsupported is true any
// rune left outside 0x20-0x7E is removed.
func ToASCII(s, lang string, removeUnsupported bool) string {
	if s == "" {
		return s
	}

	out := norm.NFC.String(s)
	if r, ok := languageReplacers()[baseLanguage(lang)]; ok {
		out = r.Replace(out)
	}
	out = generic().Replace(out)

	// A mapped base letter may now compose with a trailing combining mark.
	if !norm.NFC.IsNormalString(out) {
		out = generic().Replace(norm.NFC.String(out))
	}

	if removeUnsupported {
		out = StripUnsupported(out)
	}
	return out
}

// StripUnsupported removes every rune outside printable ASCII.
func StripUnsupported(s string) string {
	t := runes.Remove(runes.Predicate(func(r rune) bool {
		return r < 0x20 || r > 0x7E
	}))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Lookup returns the generic ASCII replacement for a single rune.
func Lookup(r rune) (string, bool) {
	if r >= 0x20 && r <= 0x7E {
		return string(r), true
	}
	ascii, ok := runeIndex()[r]
	return ascii, ok
}

// Languages lists the language tags that carry overrides, sorted.
func Languages() []string {
	langs := make([]string, 0, len(overrides))
	for lang := range overrides {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// HasLanguage reports whether lang has language specific overrides.
func HasLanguage(lang string) bool {
	_, ok := overrides[baseLanguage(lang)]
	return ok
}

func baseLanguage(lang string) string {
	if lang == "" {
		return ""
	}
	if tag, err := language.Parse(lang); err == nil {
		base, _ := tag.Base()
		return base.String()
	}
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	return strings.ToLower(lang)
}
