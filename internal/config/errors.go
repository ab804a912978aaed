package config

import "errors"

var (
	ErrReadFile     = errors.New("config: cannot read file")
	ErrParseFile    = errors.New("config: cannot parse file")
	ErrInvalidValue = errors.New("config: invalid value")
)
