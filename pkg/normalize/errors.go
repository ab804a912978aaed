package normalize

import "errors"

// Sentinel errors for the normalize package.
var (
	// ErrUnsupportedType is returned by Of for a Go type it cannot wrap.
	ErrUnsupportedType = errors.New("normalize: unsupported value type")

	// ErrNotInteger is returned when a value cannot be read as an int64.
	ErrNotInteger = errors.New("normalize: value is not an integer")

	// ErrUnknownPipeline is returned by Run for a name no pipeline answers to.
	ErrUnknownPipeline = errors.New("normalize: unknown pipeline")
)
