package basen

import "errors"

// Sentinel errors for the basen package.
var (
	// ErrBaseOutOfRange is returned when a base lies outside 2-62.
	ErrBaseOutOfRange = errors.New("basen: base must be between 2 and 62")

	// ErrInvalidDigit is returned when a numeral holds a digit that is not
	// valid in its base.
	ErrInvalidDigit = errors.New("basen: invalid digit for base")

	// ErrEmptyInput is returned by Convert for an empty numeral.
	ErrEmptyInput = errors.New("basen: empty numeral")

	// ErrNegative is returned by NumericToAlpha for n < 0.
	ErrNegative = errors.New("basen: negative number")

	// ErrNoLetters is returned by AlphaToNumeric when the input has no letters.
	ErrNoLetters = errors.New("basen: no letters to decode")

	// ErrOverflow is returned when a decoded value does not fit in an int64.
	ErrOverflow = errors.New("basen: value overflows int64")
)
