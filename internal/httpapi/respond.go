package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON reads one JSON object into dst. Numbers stay json.Number so
// integers keep their precision.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return &HTTPError{Code: http.StatusRequestEntityTooLarge, Message: "request body too large", ErrorCode: "body_too_large", Err: err}
		case errors.Is(err, io.EOF):
			return badRequest("request body is empty", err)
		default:
			return badRequest("malformed JSON body: "+err.Error(), err)
		}
	}
	if dec.More() {
		return badRequest("request body must hold a single JSON object", nil)
	}
	return nil
}

type result struct {
	Result *string `json:"result"`
}

func nullable(s string, ok bool) result {
	if !ok {
		return result{}
	}
	return result{Result: &s}
}
