package i18n

import "errors"

var (
	ErrEmptyLanguage = errors.New("i18n: language cannot be empty")
	ErrNilPluralRule = errors.New("i18n: plural rule cannot be nil")
	ErrInvalidFile   = errors.New("i18n: invalid catalog file")
	ErrUnknownLocale = errors.New("i18n: unknown locale")
)
