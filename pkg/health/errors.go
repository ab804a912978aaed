package health

import "errors"

// Sentinel errors for the health package.
var (
	// ErrCheckFailed wraps a panic raised inside a check.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrCheckTimeout is reported for a check still running at the deadline.
	ErrCheckTimeout = errors.New("health: check timeout")
)
