package text

import "errors"

// Sentinel errors for the text package.
var (
	// ErrInvalidPattern is returned when a regular expression does not compile.
	ErrInvalidPattern = errors.New("text: invalid regular expression")

	// ErrRegexFailed is returned when matching fails, including a match that
	// runs past its timeout.
	ErrRegexFailed = errors.New("text: regular expression evaluation failed")

	// ErrInvalidEncoding is returned for an encoding name that is not known.
	ErrInvalidEncoding = errors.New("text: unknown character encoding")

	// ErrUnencodable is returned when the content has characters the target
	// encoding cannot represent.
	ErrUnencodable = errors.New("text: content cannot be represented in encoding")
)
