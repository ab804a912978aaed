// Package httpapi serves the textkit packages as a JSON API.
//
// Routes:
//
//	GET  /health/live                liveness probe
//	GET  /health/ready               readiness probe (?format=json for details)
//	GET  /v1/locales                 default locale, format locales, transliteration tables
//	GET  /v1/pipelines               normalization pipeline names
//	POST /v1/normalize/{pipeline}    {"value": ..., "options": {...}} -> {"result": "..." | null}
//	POST /v1/convert/base            {"input", "from", "to", "pad"}
//	POST /v1/convert/alpha           {"number"} or {"alpha"}
//	POST /v1/translit                {"text", "language", "keep_unsupported"}
//	POST /v1/text/replace            {"text", "pattern", "replacement", "ignore_case", "multiline"}
//	POST /v1/text/match              {"text", "pattern", "limit", "ignore_case", "multiline"}
//	POST /v1/format/number           render.NumberRequest
//	POST /v1/format/time             render.TimeRequest
//
// Every request gets an X-Request-ID (reused from X-Request-ID or
// X-Correlation-ID when present). The locale comes from the body, then
// ?locale=, then Accept-Language negotiated against the built-in locale
// formats. Errors are JSON objects with "message", "code" and "request_id".
package httpapi
