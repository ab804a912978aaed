package translit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkit/pkg/translit"
)

func TestToASCII(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		lang     string
		remove   bool
		expected string
	}{
		{name: "plain ascii", input: "Hello, World!", remove: true, expected: "Hello, World!"},
		{name: "latin diacritics", input: "Ça va? Ünïcödé", remove: true, expected: "Ca va? Unicode"},
		{name: "sharp s", input: "Straße", remove: true, expected: "Strasse"},
		{name: "german override", input: "Müller", lang: "de", remove: true, expected: "Mueller"},
		{name: "german region tag", input: "Größe", lang: "de-AT", remove: true, expected: "Groesse"},
		{name: "german underscore tag", input: "Über", lang: "de_CH", remove: true, expected: "UEber"},
		{name: "unknown language uses generic table", input: "Müller", lang: "xx", remove: true, expected: "Muller"},
		{name: "cyrillic", input: "Привет мир", remove: true, expected: "Privet mir"},
		{name: "cyrillic digraphs", input: "Щука и ёж", remove: true, expected: "Shchuka i ezh"},
		{name: "bulgarian override", input: "щастие", lang: "bg", remove: true, expected: "shtastie"},
		{name: "danish override", input: "Ærøskøbing", lang: "da", remove: true, expected: "Aeroeskoebing"},
		{name: "danish without override", input: "Ærøskøbing", remove: true, expected: "AEroskobing"},
		{name: "greek", input: "Ελλάδα", remove: true, expected: "Ellada"},
		{name: "copyright", input: "© 2024", remove: true, expected: "(c) 2024"},
		{name: "superscript digits", input: "x² + y³", remove: true, expected: "x2 + y3"},
		{name: "full width", input: "ＡＢＣ１２３", remove: true, expected: "ABC123"},
		{name: "typographic spaces", input: "a\u00a0b\u2009c", remove: true, expected: "a b c"},
		{name: "decomposed accents", input: "Cafe\u0301", remove: true, expected: "Cafe"},
		{name: "emoji removed", input: "hi 👋", remove: true, expected: "hi "},
		{name: "control characters removed", input: "a\tb\nc", remove: true, expected: "abc"},
		{name: "unsupported kept", input: "日本 café", remove: false, expected: "日本 cafe"},
		{name: "empty", input: "", remove: true, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, translit.ToASCII(tt.input, tt.lang, tt.remove))
		})
	}
}

func TestToASCIIIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Hello World",
		"Żółć gęślą jaźń",
		"Привет, мир!",
		"Αθήνα ☃ 東京",
		"а́бв",
		"Ærøskøbing © ẞ",
	}

	for _, in := range inputs {
		for _, remove := range []bool{true, false} {
			once := translit.ToASCII(in, "", remove)
			assert.Equal(t, once, translit.ToASCII(once, "", remove), "input %q remove=%v", in, remove)
		}
	}
}

func TestStripUnsupported(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc ~", translit.StripUnsupported("a\x01bc é~"))
}

func TestLookup(t *testing.T) {
	t.Parallel()

	got, ok := translit.Lookup('ß')
	require.True(t, ok)
	assert.Equal(t, "ss", got)

	got, ok = translit.Lookup('đ')
	require.True(t, ok)
	assert.Equal(t, "d", got, "earlier entry wins")

	got, ok = translit.Lookup('q')
	require.True(t, ok)
	assert.Equal(t, "q", got)

	_, ok = translit.Lookup('☃')
	assert.False(t, ok)
}

func TestLanguages(t *testing.T) {
	t.Parallel()

	langs := translit.Languages()
	assert.Contains(t, langs, "de")
	assert.Contains(t, langs, "bg")
	assert.IsNonDecreasing(t, langs)

	assert.True(t, translit.HasLanguage("de-DE"))
	assert.False(t, translit.HasLanguage("en"))
	assert.False(t, translit.HasLanguage(""))
}
