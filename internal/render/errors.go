package render

import "errors"

var (
	ErrUnknownStyle    = errors.New("render: unknown style")
	ErrMissingArgument = errors.New("render: missing argument")
)
