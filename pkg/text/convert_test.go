package text_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkit/pkg/text"
)

func TestDecodeAndEncode(t *testing.T) {
	t.Parallel()

	tx, err := text.Decode([]byte{'c', 'a', 'f', 0xE9}, "latin1")
	require.NoError(t, err)
	assert.Equal(t, "café", tx.String())
	assert.Equal(t, "WINDOWS-1252", tx.Encoding())

	raw, err := tx.Encode()
	require.NoError(t, err)
	assert.Equal(t, []byte{'c', 'a', 'f', 0xE9}, raw)

	_, err = text.Decode([]byte("x"), "no-such-charset")
	require.ErrorIs(t, err, text.ErrInvalidEncoding)
}

func TestText_ConvertEncoding(t *testing.T) {
	t.Parallel()

	t.Run("representable", func(t *testing.T) {
		t.Parallel()
		got, err := text.New("café").ConvertEncoding("iso-8859-1")
		require.NoError(t, err)
		assert.Equal(t, "café", got.String())
		assert.Equal(t, "WINDOWS-1252", got.Encoding())
		assert.Equal(t, "UTF-8", got.ToUTF8().Encoding())
	})

	t.Run("unencodable", func(t *testing.T) {
		t.Parallel()
		orig := text.New("日本")
		got, err := orig.ConvertEncoding("windows-1252")
		require.ErrorIs(t, err, text.ErrUnencodable)
		assert.Equal(t, "UTF-8", got.Encoding())
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()
		_, err := text.New("x").ConvertEncoding("bogus")
		require.ErrorIs(t, err, text.ErrInvalidEncoding)
	})

	t.Run("unknown tag kept until encoding", func(t *testing.T) {
		t.Parallel()
		tx := text.New("x", text.WithEncoding("bogus"))
		assert.Equal(t, "bogus", tx.Encoding())
		_, err := tx.Encode()
		require.ErrorIs(t, err, text.ErrInvalidEncoding)
	})
}

func TestText_ToASCII(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Mueller", text.New("Müller").ToASCII("de", true).String())
	assert.Equal(t, "Muller", text.New("Müller").ToASCII("", true).String())
	assert.Equal(t, "a 日", text.New("á 日").ToASCII("", false).String())
}

func TestText_StripTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		allowed  []string
		expected string
	}{
		{name: "inline markup", input: "Hello <strong>World</strong>", expected: "Hello World"},
		{name: "entities stay escaped", input: "<p>Fish &amp; Chips</p>", expected: "Fish &amp; Chips"},
		{name: "escaped tags stay inert", input: "<p>Hi &lt;script&gt;alert(1)&lt;/script&gt;</p>", expected: "Hi &lt;script&gt;alert(1)&lt;/script&gt;"},
		{name: "escaped tags inert with allowed", input: "<p><b>Hi</b> &lt;script&gt;alert(1)&lt;/script&gt;</p>", allowed: []string{"b"}, expected: "<b>Hi</b> &lt;script&gt;alert(1)&lt;/script&gt;"},
		{name: "script body dropped", input: "safe<script>alert('x')</script>", expected: "safe"},
		{name: "allowed element kept", input: `<p><b class="x">bold</b> <i>it</i></p>`, allowed: []string{"b"}, expected: "<b>bold</b> it"},
		{name: "plain text", input: "no tags", expected: "no tags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, text.New(tt.input).StripTags(tt.allowed...).String())
		})
	}
}

func TestText_HTMLEncoding(t *testing.T) {
	t.Parallel()

	enc := text.New(`<a href="x">&</a>`).HTMLEncode()
	assert.Equal(t, "&lt;a href=&#34;x&#34;&gt;&amp;&lt;/a&gt;", enc.String())
	assert.Equal(t, `<a href="x">&</a>`, enc.HTMLDecode().String())
}

func TestAlphaConversions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a", text.NumericToAlpha(0).String())
	assert.Equal(t, "aa", text.NumericToAlpha(26).String())
	assert.True(t, text.NumericToAlpha(-1).IsEmpty())

	n, ok := text.New("AB").AlphaToNumeric()
	require.True(t, ok)
	assert.Equal(t, int64(27), n)

	_, ok = text.New("123").AlphaToNumeric()
	assert.False(t, ok)
}
