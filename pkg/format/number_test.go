package format_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkit/pkg/format"
)

func newNumber() *format.Number {
	return format.NewNumber(format.StaticProvider{Lang: "en-US"})
}

func TestNumber_Format(t *testing.T) {
	t.Parallel()

	n := newNumber()

	assert.Equal(t, "1,234.568", n.Format(1234.5678, "", ""))
	assert.Equal(t, "12 kg", n.Format(12, "kg", ""))
	assert.Equal(t, "1.234,5 m", n.Format(1234.5, "m", "de-DE"))
	assert.Equal(t, "1,234.5", n.Format(1234.5, "", "it-IT"), "unknown locales use en-US conventions")

	assert.Equal(t, "3.10", n.Decimal(3.1, 2, ""))
	assert.Equal(t, "3", n.Decimal(3.1, 0, ""))
	assert.Equal(t, "9\u00a0876,25", n.Decimal(9876.25, -1, "pl"))
}

func TestNumber_Currency(t *testing.T) {
	t.Parallel()

	n := newNumber()

	tests := []struct {
		name     string
		v        float64
		code     string
		rounded  bool
		locale   string
		expected string
	}{
		{name: "usd", v: 1234.5, code: "USD", expected: "$1,234.50"},
		{name: "lowercase code", v: 10, code: " usd ", expected: "$10.00"},
		{name: "rounded", v: 1234.56, code: "USD", rounded: true, expected: "$1,235"},
		{name: "german euro", v: 9.5, code: "EUR", locale: "de-DE", expected: "9,50\u00a0€"},
		{name: "negative", v: -5, code: "USD", expected: "-$5.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := n.Currency(tt.v, tt.code, tt.rounded, tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}

	t.Run("yen has no minor unit", func(t *testing.T) {
		t.Parallel()
		out, err := n.Currency(1500.4, "JPY", false, "")
		require.NoError(t, err)
		assert.Contains(t, out, "1,500")
		assert.NotContains(t, out, ".")
	})

	t.Run("invalid code", func(t *testing.T) {
		t.Parallel()
		_, err := n.Currency(1, "XXXX", false, "")
		require.ErrorIs(t, err, format.ErrInvalidCurrency)

		var ferr *format.Error
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, "currency", ferr.Op)
		assert.Equal(t, "en-US", ferr.Locale)
	})
}

func TestNumber_Percent(t *testing.T) {
	t.Parallel()

	n := newNumber()

	out, err := n.Percent(25, 100, 0, "")
	require.NoError(t, err)
	assert.Equal(t, "25%", out)

	out, err = n.Percent(1, 3, 2, "")
	require.NoError(t, err)
	assert.Equal(t, "33.33%", out)

	out, err = n.Percent(1, 2, 0, "de")
	require.NoError(t, err)
	assert.Equal(t, "50\u00a0%", out)

	_, err = n.Percent(1, 0, 0, "")
	require.ErrorIs(t, err, format.ErrInvalidTotal)
}

func TestNumber_Scientific(t *testing.T) {
	t.Parallel()

	n := newNumber()

	assert.Equal(t, "1.2345E3", n.Scientific(1234.5, ""))
	assert.Equal(t, "1E0", n.Scientific(1, ""))
	assert.Equal(t, "-2.5E-3", n.Scientific(-0.0025, ""))
	assert.Equal(t, "1,5E2", n.Scientific(150, "de"))
	assert.Equal(t, "∞", n.Scientific(math.Inf(1), ""))
}

func TestNumber_Spellout(t *testing.T) {
	t.Parallel()

	n := newNumber()

	tests := []struct {
		v        float64
		expected string
	}{
		{0, "zero"},
		{7, "seven"},
		{42, "forty-two"},
		{100, "one hundred"},
		{115, "one hundred fifteen"},
		{2024, "two thousand twenty-four"},
		{1000001, "one million one"},
		{-3, "minus three"},
		{1.25, "one point two five"},
		{3000000000, "three billion"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			out, err := n.Spellout(tt.v, "")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}

	_, err := n.Spellout(1, "de")
	require.ErrorIs(t, err, format.ErrUnsupportedLocale)
}

func TestNumber_Ordinal(t *testing.T) {
	t.Parallel()

	n := newNumber()

	tests := []struct {
		v        int64
		locale   string
		expected string
	}{
		{1, "en", "1st"},
		{2, "en", "2nd"},
		{3, "en-GB", "3rd"},
		{11, "en", "11th"},
		{22, "en", "22nd"},
		{3, "de", "3."},
		{1, "fr", "1er"},
		{2, "fr", "2e"},
		{4, "es", "4.º"},
		{5, "ja", "第5"},
		{6, "ko", "6번째"},
		{1000, "de", "1.000."},
	}

	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.expected, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, n.Ordinal(tt.v, tt.locale))
		})
	}
}

func TestNumber_Diff(t *testing.T) {
	t.Parallel()

	n := newNumber()

	assert.Equal(t, "⬆ 5", n.Diff(5, false, ""))
	assert.Equal(t, "⬇ 2.5", n.Diff(-2.5, false, ""))
	assert.Equal(t, "⬇ 5", n.Diff(5, true, ""))
	assert.Equal(t, "⬌ 0", n.Diff(0, false, ""))
}

func TestNumber_FileSize(t *testing.T) {
	t.Parallel()

	n := newNumber()

	assert.Equal(t, "1.5 KiB", n.FileSize(1536, ""))
	assert.Equal(t, "1,5 KiB", n.FileSize(1536, "de"))
	assert.Equal(t, "1.5 kB", n.FileSizeDec(1500, ""))
	assert.Equal(t, "-1.5 kB", n.FileSizeDec(-1500, ""))
	assert.Equal(t, "0 B", n.FileSize(0, ""))
}

func TestNumber_Counter(t *testing.T) {
	t.Parallel()

	n := newNumber()

	tests := []struct {
		v        float64
		expected string
	}{
		{950, "950"},
		{1234, "1.2K"},
		{3_400_000, "3.4M"},
		{1_200_000_000, "1.2B"},
		{999_999, "1M"},
		{-1500, "-1.5K"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, n.Counter(tt.v, ""))
		})
	}

	assert.Equal(t, "1,2K", n.Counter(1234, "de"))
}

func TestNumber_Pattern(t *testing.T) {
	t.Parallel()

	n := newNumber()

	tests := []struct {
		name     string
		v        float64
		pattern  string
		locale   string
		expected string
	}{
		{name: "grouped two digits", v: 1234.5, pattern: "#,##0.00", expected: "1,234.50"},
		{name: "padded integer", v: 7.25, pattern: "000.#", expected: "007.2"},
		{name: "optional fraction", v: 3, pattern: "0.##", expected: "3"},
		{name: "percent suffix", v: 0.256, pattern: "#,##0.0 %", expected: "25.6 %"},
		{name: "literal prefix", v: 42, pattern: "No. 0", expected: "No. 42"},
		{name: "negative", v: -1234, pattern: "#,##0", expected: "-1,234"},
		{name: "german separators", v: 1234.5, pattern: "#,##0.00", locale: "de", expected: "1.234,50"},
		{name: "no integer digits", v: 0.5, pattern: "#.00", expected: ".50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := n.Pattern(tt.v, tt.pattern, tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}

	for _, bad := range []string{"abc", "#.#.#", "0.0,0", "#x0"} {
		_, err := n.Pattern(1, bad, "")
		require.ErrorIs(t, err, format.ErrInvalidPattern, bad)
	}
}
