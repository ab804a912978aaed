package basen_test

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkit/pkg/basen"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		from     int
		to       int
		pad      int
		expected string
	}{
		{name: "hex to decimal", input: "ff", from: 16, to: 10, pad: 1, expected: "255"},
		{name: "decimal to hex", input: "255", from: 10, to: 16, pad: 1, expected: "ff"},
		{name: "decimal to binary", input: "10", from: 10, to: 2, pad: 1, expected: "1010"},
		{name: "binary padded", input: "101", from: 2, to: 2, pad: 8, expected: "00000101"},
		{name: "base62 uses uppercase", input: "61", from: 10, to: 62, pad: 1, expected: "Z"},
		{name: "base62 padded", input: "255", from: 10, to: 62, pad: 4, expected: "0047"},
		{name: "from base62", input: "Z", from: 62, to: 10, pad: 0, expected: "61"},
		{name: "zero", input: "0", from: 10, to: 2, pad: 1, expected: "0"},
		{name: "leading zeros dropped", input: "000ff", from: 16, to: 10, pad: 1, expected: "255"},
		{name: "pad shorter than result", input: "ff", from: 16, to: 2, pad: 3, expected: "11111111"},
		{
			name:     "beyond uint64",
			input:    "ffffffffffffffffffffffffffffffff",
			from:     16,
			to:       10,
			pad:      1,
			expected: "340282366920938463463374607431768211455",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := basen.Convert(tt.input, tt.from, tt.to, tt.pad)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestConvertErrors(t *testing.T) {
	t.Parallel()

	t.Run("base too small", func(t *testing.T) {
		t.Parallel()
		_, err := basen.Convert("1", 1, 10, 1)
		require.ErrorIs(t, err, basen.ErrBaseOutOfRange)
	})

	t.Run("base too large", func(t *testing.T) {
		t.Parallel()
		_, err := basen.Convert("1", 10, 63, 1)
		require.ErrorIs(t, err, basen.ErrBaseOutOfRange)
	})

	t.Run("digit outside base", func(t *testing.T) {
		t.Parallel()
		_, err := basen.Convert("19", 8, 10, 1)
		require.ErrorIs(t, err, basen.ErrInvalidDigit)
	})

	t.Run("uppercase is not hex", func(t *testing.T) {
		t.Parallel()
		_, err := basen.Convert("FF", 16, 10, 1)
		require.ErrorIs(t, err, basen.ErrInvalidDigit)
	})

	t.Run("symbol", func(t *testing.T) {
		t.Parallel()
		_, err := basen.Convert("1-2", 10, 2, 1)
		require.ErrorIs(t, err, basen.ErrInvalidDigit)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		_, err := basen.Convert("", 10, 2, 1)
		require.ErrorIs(t, err, basen.ErrEmptyInput)
	})
}

func TestConvertRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{"0", "1", "7", "42", "1000", "65535", "18446744073709551615", "98765432109876543210"}

	for from := basen.MinBase; from <= basen.MaxBase; from++ {
		for to := basen.MinBase; to <= basen.MaxBase; to++ {
			for _, dec := range inputs {
				src, err := basen.Convert(dec, 10, from, 1)
				require.NoError(t, err)

				mid, err := basen.Convert(src, from, to, 1)
				require.NoError(t, err)

				back, err := basen.Convert(mid, to, from, 1)
				require.NoError(t, err)
				require.Equal(t, src, back, "from %d to %d for %s", from, to, dec)

				manual, err := basen.ConvertManual(src, from, to)
				require.NoError(t, err)
				require.Equal(t, mid, manual, "manual path differs from %d to %d for %s", from, to, dec)
			}
		}
	}
}

func TestNumericToAlpha(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n        int64
		expected string
	}{
		{0, "a"},
		{1, "b"},
		{25, "z"},
		{26, "aa"},
		{27, "ab"},
		{51, "az"},
		{52, "ba"},
		{701, "zz"},
		{702, "aaa"},
		{18277, "zzz"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.n), func(t *testing.T) {
			t.Parallel()
			got, err := basen.NumericToAlpha(tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := basen.NumericToAlpha(-1)
	require.ErrorIs(t, err, basen.ErrNegative)
}

func TestAlphaToNumeric(t *testing.T) {
	t.Parallel()

	got, err := basen.AlphaToNumeric("ab")
	require.NoError(t, err)
	assert.Equal(t, int64(27), got)

	got, err = basen.AlphaToNumeric("ZZ")
	require.NoError(t, err)
	assert.Equal(t, int64(701), got)

	got, err = basen.AlphaToNumeric("a-a")
	require.NoError(t, err)
	assert.Equal(t, int64(26), got)

	_, err = basen.AlphaToNumeric("")
	require.ErrorIs(t, err, basen.ErrNoLetters)

	_, err = basen.AlphaToNumeric("123")
	require.ErrorIs(t, err, basen.ErrNoLetters)

	_, err = basen.AlphaToNumeric(strings.Repeat("z", 20))
	require.ErrorIs(t, err, basen.ErrOverflow)
}

func TestAlphaRoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int64{0, 1, 25, 26, 675, 676, 702, 12345, 1 << 40, math.MaxInt64} {
		s, err := basen.NumericToAlpha(n)
		require.NoError(t, err)
		back, err := basen.AlphaToNumeric(s)
		require.NoError(t, err)
		assert.Equal(t, n, back, "round trip of %d via %q", n, s)
	}
}
