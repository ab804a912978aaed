package format

import (
	"errors"
	"fmt"
)

// Sentinel errors for the format package. Formatting calls wrap them in
// *Error.
var (
	ErrInvalidSize          = errors.New("format: invalid locale size")
	ErrInvalidCurrency      = errors.New("format: invalid currency code")
	ErrInvalidPattern       = errors.New("format: invalid number pattern")
	ErrInvalidTotal         = errors.New("format: total must be positive")
	ErrInvalidTimezone      = errors.New("format: invalid timezone")
	ErrUnsupportedLocale    = errors.New("format: operation not supported for locale")
	ErrHumanizerUnavailable = errors.New("format: interval humanizer unavailable")
)

// Error reports a failed formatting call with the operation and locale that
// produced it. It unwraps to one of the sentinel errors above.
type Error struct {
	Op     string
	Locale string
	Err    error
}

func (e *Error) Error() string {
	if e.Locale == "" {
		return fmt.Sprintf("format: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("format: %s [%s]: %v", e.Op, e.Locale, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func fail(op, locale string, err error) error {
	return &Error{Op: op, Locale: locale, Err: err}
}
