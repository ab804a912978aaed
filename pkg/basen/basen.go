package basen

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

const (
	// Digits lists the numeral alphabet in value order.
	Digits = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	MinBase = 2
	MaxBase = len(Digits)
)

// digitValue returns the value of c in Digits, or -1.
func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 36
	}
	return -1
}

// parse validates input against base and returns its digit values, most
// significant first, with leading zeros removed.
func parse(input string, base int) ([]int, error) {
	if input == "" {
		return nil, ErrEmptyInput
	}
	digits := make([]int, 0, len(input))
	for i := 0; i < len(input); i++ {
		v := digitValue(input[i])
		if v < 0 || v >= base {
			return nil, fmt.Errorf("%w: %q in base %d", ErrInvalidDigit, input[i], base)
		}
		if v == 0 && len(digits) == 0 {
			continue
		}
		digits = append(digits, v)
	}
	return digits, nil
}

func checkBase(base int) error {
	if base < MinBase || base > MaxBase {
		return fmt.Errorf("%w: got %d", ErrBaseOutOfRange, base)
	}
	return nil
}

// Convert rewrites the numeral input from base `from` to base `to`, left
// padding the result with zeros to at least pad characters.
func Convert(input string, from, to, pad int) (string, error) {
	if err := checkBase(from); err != nil {
		return "", err
	}
	if err := checkBase(to); err != nil {
		return "", err
	}
	digits, err := parse(input, from)
	if err != nil {
		return "", err
	}
	return padLeft(convertBig(digits, from, to), pad), nil
}

// convertBig delegates to math/big. Input digits were validated by parse,
// which matters below base 37 where big.Int also accepts uppercase letters.
func convertBig(digits []int, from, to int) string {
	if len(digits) == 0 {
		return "0"
	}
	var b strings.Builder
	for _, d := range digits {
		b.WriteByte(Digits[d])
	}
	n, ok := new(big.Int).SetString(b.String(), from)
	if !ok {
		return convertManual(digits, from, to)
	}
	return n.Text(to)
}

// convertManual performs schoolbook long division of the digit array by the
// target base, collecting remainders least significant first.
func convertManual(digits []int, from, to int) string {
	if len(digits) == 0 {
		return "0"
	}
	num := append([]int(nil), digits...)
	var out []byte
	for len(num) > 0 {
		quotient := num[:0:0]
		rem := 0
		for _, d := range num {
			acc := rem*from + d
			q := acc / to
			rem = acc % to
			if q > 0 || len(quotient) > 0 {
				quotient = append(quotient, q)
			}
		}
		out = append(out, Digits[rem])
		num = quotient
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

func padLeft(s string, pad int) string {
	if len(s) >= pad {
		return s
	}
	return strings.Repeat("0", pad-len(s)) + s
}

// NumericToAlpha encodes n as lowercase bijective base-26.
func NumericToAlpha(n int64) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegative, n)
	}
	var out []byte
	for n >= 0 {
		key := n % 26
		out = append(out, byte('a'+key))
		n = (n-key)/26 - 1
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}

// AlphaToNumeric decodes bijective base-26. Letters are case-insensitive and
// every other character is skipped.
func AlphaToNumeric(s string) (int64, error) {
	out := int64(-1)
	for _, r := range s {
		var v int64
		switch {
		case r >= 'a' && r <= 'z':
			v = int64(r - 'a')
		case r >= 'A' && r <= 'Z':
			v = int64(r - 'A')
		default:
			continue
		}
		if out > (math.MaxInt64-v)/26-1 {
			return 0, fmt.Errorf("%w: %q", ErrOverflow, s)
		}
		out = (out+1)*26 + v
	}
	if out < 0 {
		return 0, ErrNoLetters
	}
	return out, nil
}
