package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/textkit/internal/render"
	"github.com/dmitrymomot/textkit/pkg/basen"
	"github.com/dmitrymomot/textkit/pkg/format"
	"github.com/dmitrymomot/textkit/pkg/i18n"
	"github.com/dmitrymomot/textkit/pkg/normalize"
	"github.com/dmitrymomot/textkit/pkg/text"
)

// HTTPError is an error with everything needed to render it as a JSON body.
type HTTPError struct {
	// Err is the underlying error. It is logged, never sent.
	Err error `json:"-"`

	Message   string `json:"message"`
	ErrorCode string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
	Code      int    `json:"-"`
}

func (e *HTTPError) Error() string { return e.Message }

func (e *HTTPError) Unwrap() error { return e.Err }

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func badRequest(message string, err error) *HTTPError {
	return &HTTPError{Code: http.StatusBadRequest, Message: message, ErrorCode: "bad_request", Err: err}
}

// Sentinels that mean the caller sent something unusable.
var invalidArgument = []error{
	render.ErrUnknownStyle,
	render.ErrMissingArgument,
	normalize.ErrUnsupportedType,
	normalize.ErrNotInteger,
	basen.ErrBaseOutOfRange,
	basen.ErrInvalidDigit,
	basen.ErrEmptyInput,
	basen.ErrNegative,
	basen.ErrNoLetters,
	basen.ErrOverflow,
	text.ErrInvalidPattern,
	text.ErrInvalidEncoding,
	text.ErrUnencodable,
	format.ErrInvalidSize,
	format.ErrInvalidCurrency,
	format.ErrInvalidPattern,
	format.ErrInvalidTotal,
	format.ErrInvalidTimezone,
}

// AsHTTPError converts any error into an HTTPError. Package sentinels map
// to client errors; everything else is a 500 whose message hides the cause.
func AsHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch {
	case errors.Is(err, normalize.ErrUnknownPipeline):
		return &HTTPError{Code: http.StatusNotFound, Message: err.Error(), ErrorCode: "unknown_pipeline", Err: err}
	case errors.Is(err, format.ErrUnsupportedLocale), errors.Is(err, i18n.ErrUnknownLocale):
		return &HTTPError{Code: http.StatusUnprocessableEntity, Message: err.Error(), ErrorCode: "unsupported_locale", Err: err}
	case errors.Is(err, format.ErrHumanizerUnavailable):
		return &HTTPError{Code: http.StatusServiceUnavailable, Message: err.Error(), ErrorCode: "humanizer_unavailable", Err: err}
	case errors.Is(err, text.ErrRegexFailed):
		return &HTTPError{Code: http.StatusUnprocessableEntity, Message: err.Error(), ErrorCode: "regex_failed", Err: err}
	}
	for _, sentinel := range invalidArgument {
		if errors.Is(err, sentinel) {
			return &HTTPError{Code: http.StatusBadRequest, Message: err.Error(), ErrorCode: "invalid_argument", Err: err}
		}
	}
	return &HTTPError{Code: http.StatusInternalServerError, Message: http.StatusText(http.StatusInternalServerError), ErrorCode: "internal", Err: err}
}
