package text

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/textkit/pkg/basen"
	"github.com/dmitrymomot/textkit/pkg/translit"
)

// ToASCII transliterates t to ASCII using the overrides registered for lang,
// if any. With removeUnsupported set, characters without an ASCII mapping are
// dropped.
func (t Text) ToASCII(lang string, removeUnsupported bool) Text {
	return t.with(translit.ToASCII(t.s, lang, removeUnsupported))
}

// HTMLEncode escapes <, >, &, ' and ".
func (t Text) HTMLEncode() Text { return t.with(html.EscapeString(t.s)) }

// HTMLDecode resolves HTML entities.
func (t Text) HTMLDecode() Text { return t.with(html.UnescapeString(t.s)) }

var strictPolicy = sync.OnceValue(bluemonday.StrictPolicy)

// StripTags removes HTML markup, keeping the text content. Elements named in
// allowed survive without their attributes. Script and style bodies are
// dropped along with their tags. The result is still HTML: entities stay
// escaped, so HTMLDecode it before treating it as plain text.
func (t Text) StripTags(allowed ...string) Text {
	p := strictPolicy()
	if len(allowed) > 0 {
		p = bluemonday.NewPolicy()
		p.AllowElements(allowed...)
	}
	return t.with(p.Sanitize(t.s))
}

// NumericToAlpha encodes n in bijective base-26 ("a" is 0, "z" 25, "aa" 26).
// A negative n yields an empty Text.
func NumericToAlpha(n int64) Text {
	s, err := basen.NumericToAlpha(n)
	if err != nil {
		return Text{}
	}
	return New(s)
}

// AlphaToNumeric decodes the letters of t as bijective base-26, ignoring any
// other character. It reports false when t has no letters or the value does
// not fit in an int64.
func (t Text) AlphaToNumeric() (int64, bool) {
	n, err := basen.AlphaToNumeric(t.s)
	if err != nil {
		return 0, false
	}
	return n, true
}
