package normalize_test

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkit/pkg/normalize"
	"github.com/dmitrymomot/textkit/pkg/text"
)

func TestOf(t *testing.T) {
	t.Parallel()

	str := "hello"
	var nilStr *string

	tests := []struct {
		name   string
		input  any
		kind   normalize.Kind
		string string
	}{
		{name: "nil", input: nil, kind: normalize.KindNull},
		{name: "string", input: "x", kind: normalize.KindText, string: "x"},
		{name: "string pointer", input: &str, kind: normalize.KindText, string: "hello"},
		{name: "nil string pointer", input: nilStr, kind: normalize.KindNull},
		{name: "bytes", input: []byte("ab"), kind: normalize.KindText, string: "ab"},
		{name: "text", input: text.New("é"), kind: normalize.KindText, string: "é"},
		{name: "int", input: 42, kind: normalize.KindInt, string: "42"},
		{name: "int8", input: int8(-3), kind: normalize.KindInt, string: "-3"},
		{name: "uint16", input: uint16(7), kind: normalize.KindInt, string: "7"},
		{name: "huge uint64", input: uint64(math.MaxUint64), kind: normalize.KindText, string: "18446744073709551615"},
		{name: "float", input: 1.5, kind: normalize.KindFloat, string: "1.5"},
		{name: "float32", input: float32(0.25), kind: normalize.KindFloat, string: "0.25"},
		{name: "large float", input: 1e6, kind: normalize.KindFloat, string: "1000000"},
		{name: "stringer", input: &url.URL{Scheme: "https", Host: "example.com"}, kind: normalize.KindText, string: "https://example.com"},
		{name: "value", input: normalize.Int(3), kind: normalize.KindInt, string: "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v, err := normalize.Of(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.string, v.String())
			assert.Equal(t, tt.kind == normalize.KindNull, v.IsNull())
		})
	}

	_, err := normalize.Of(true)
	require.ErrorIs(t, err, normalize.ErrUnsupportedType)
	assert.Panics(t, func() { normalize.MustOf(struct{}{}) })
}

func TestValue_Int(t *testing.T) {
	t.Parallel()

	n, err := normalize.String("-12").Int()
	require.NoError(t, err)
	assert.Equal(t, int64(-12), n)

	n, err = normalize.Float(3).Int()
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	_, err = normalize.Float(3.5).Int()
	require.ErrorIs(t, err, normalize.ErrNotInteger)

	_, err = normalize.String("1.5").Int()
	require.ErrorIs(t, err, normalize.ErrNotInteger)

	_, err = normalize.Null().Int()
	require.ErrorIs(t, err, normalize.ErrNotInteger)
}

func TestEncoded(t *testing.T) {
	t.Parallel()

	v, err := normalize.Encoded([]byte{'n', 0xE9}, "latin1")
	require.NoError(t, err)
	assert.Equal(t, "né", v.String())

	tx, ok := normalize.Text(v)
	require.True(t, ok)
	assert.Equal(t, "WINDOWS-1252", tx.Encoding())

	got, ok := normalize.ID(v)
	require.True(t, ok)
	assert.Equal(t, "Ne", got)

	_, err = normalize.Encoded([]byte("x"), "klingon")
	require.ErrorIs(t, err, text.ErrInvalidEncoding)

	_, ok = normalize.Text(normalize.Null())
	assert.False(t, ok)
}

func TestToBoolean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    normalize.Value
		expected bool
	}{
		{name: "null", input: normalize.Null(), expected: false},
		{name: "zero", input: normalize.Int(0), expected: false},
		{name: "negative int", input: normalize.Int(-2), expected: true},
		{name: "fraction", input: normalize.Float(0.5), expected: true},
		{name: "float zero", input: normalize.Float(0), expected: false},
		{name: "yes", input: normalize.String("yes"), expected: true},
		{name: "off", input: normalize.String(" OFF "), expected: false},
		{name: "disabled", input: normalize.String("disabled"), expected: false},
		{name: "free text", input: normalize.String("anything"), expected: true},
		{name: "empty", input: normalize.String(""), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, normalize.ToBoolean(tt.input))
		})
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	assert.True(t, normalize.Compare(normalize.String("a\r\nb"), normalize.String("a\nb")))
	assert.True(t, normalize.Compare(normalize.Int(5), normalize.String("5")))
	assert.True(t, normalize.Compare(normalize.Null(), normalize.Null()))
	assert.False(t, normalize.Compare(normalize.Null(), normalize.String("")))
	assert.False(t, normalize.Compare(normalize.String("a"), normalize.String("A")))
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, normalize.IsBlank(normalize.Null()))
	assert.True(t, normalize.IsBlank(normalize.String(" \t")))
	assert.False(t, normalize.IsBlank(normalize.String("x")))

	assert.False(t, normalize.IsAlpha(normalize.Null()))
	assert.True(t, normalize.IsAlpha(normalize.String("Żółw")))
	assert.False(t, normalize.IsAlpha(normalize.String("abc1")))

	assert.True(t, normalize.IsAlphaNumeric(normalize.String("abc1")))
	assert.True(t, normalize.IsDigit(normalize.Int(123)))
	assert.False(t, normalize.IsDigit(normalize.Int(-1)))
	assert.True(t, normalize.IsHex(normalize.String("ff0A")))
	assert.False(t, normalize.IsHex(normalize.String("xyz")))
	assert.True(t, normalize.IsWhitespace(normalize.String("\n ")))
	assert.False(t, normalize.IsWhitespace(normalize.Null()))

	assert.Equal(t, 0, normalize.CountWords(normalize.Null()))
	assert.Equal(t, 3, normalize.CountWords(normalize.String("Hello, big world")))
}
