// Package render maps a named output style onto the format package, so the
// HTTP API and the CLI accept the same requests.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/textkit/pkg/format"
)

// NumberStyles lists the accepted NumberRequest styles.
var NumberStyles = []string{
	"counter", "currency", "decimal", "diff", "filesize", "filesize_dec",
	"number", "ordinal", "pattern", "percent", "scientific", "spellout",
}

// TimeStyles lists the accepted TimeRequest styles.
var TimeStyles = []string{
	"between", "between_abbr", "layout", "locale", "pattern",
	"since", "since_abbr", "since_abs", "until", "until_abbr", "until_abs",
}

// NumberRequest describes one number to format. Style defaults to
// "number"; Precision nil means as many digits as needed.
type NumberRequest struct {
	Precision *int    `json:"precision"`
	Style     string  `json:"style"`
	Locale    string  `json:"locale"`
	Unit      string  `json:"unit"`
	Currency  string  `json:"currency"`
	Pattern   string  `json:"pattern"`
	Value     float64 `json:"value"`
	Total     float64 `json:"total"`
	Rounded   bool    `json:"rounded"`
	Invert    bool    `json:"invert"`
}

// TimeRequest describes one instant or interval to format. Style defaults
// to "locale", which uses Date and Clock sizes (medium date and short time
// when both are empty).
type TimeRequest struct {
	Time     time.Time  `json:"time"`
	To       *time.Time `json:"to"`
	Style    string     `json:"style"`
	Date     string     `json:"date"`
	Clock    string     `json:"clock"`
	Layout   string     `json:"layout"`
	Timezone string     `json:"timezone"`
	Locale   string     `json:"locale"`
	Parts    int        `json:"parts"`
}

// Renderer formats requests with a number and a time formatter.
type Renderer struct {
	number *format.Number
	time   *format.Time
}

// New returns a Renderer.
func New(number *format.Number, t *format.Time) *Renderer {
	return &Renderer{number: number, time: t}
}

func unknownStyle(style string, valid []string) error {
	return fmt.Errorf("%w %q, want one of %s", ErrUnknownStyle, style, strings.Join(valid, ", "))
}

func missing(field, style string) error {
	return fmt.Errorf("%w: %q is required for style %s", ErrMissingArgument, field, style)
}

// Number formats req. A non-empty locale overrides req.Locale.
func (r *Renderer) Number(req NumberRequest, locale string) (string, error) {
	if locale == "" {
		locale = req.Locale
	}
	precision := -1
	if req.Precision != nil {
		precision = *req.Precision
	}

	switch style := strings.ToLower(strings.TrimSpace(req.Style)); style {
	case "", "number":
		return r.number.Format(req.Value, req.Unit, locale), nil
	case "decimal":
		return r.number.Decimal(req.Value, precision, locale), nil
	case "currency":
		if req.Currency == "" {
			return "", missing("currency", style)
		}
		return r.number.Currency(req.Value, req.Currency, req.Rounded, locale)
	case "percent":
		total := req.Total
		if total == 0 {
			total = 1
		}
		return r.number.Percent(req.Value, total, max(precision, 0), locale)
	case "scientific":
		return r.number.Scientific(req.Value, locale), nil
	case "spellout":
		return r.number.Spellout(req.Value, locale)
	case "ordinal":
		return r.number.Ordinal(int64(req.Value), locale), nil
	case "diff":
		return r.number.Diff(req.Value, req.Invert, locale), nil
	case "filesize":
		return r.number.FileSize(int64(req.Value), locale), nil
	case "filesize_dec":
		return r.number.FileSizeDec(int64(req.Value), locale), nil
	case "counter":
		return r.number.Counter(req.Value, locale), nil
	case "pattern":
		if req.Pattern == "" {
			return "", missing("pattern", style)
		}
		return r.number.Pattern(req.Value, req.Pattern, locale)
	default:
		return "", unknownStyle(req.Style, NumberStyles)
	}
}

// Time formats req. A non-empty locale overrides req.Locale.
func (r *Renderer) Time(req TimeRequest, locale string) (string, error) {
	if locale == "" {
		locale = req.Locale
	}
	if req.Time.IsZero() {
		return "", fmt.Errorf("%w: %q", ErrMissingArgument, "time")
	}
	parts := max(req.Parts, 1)

	switch style := strings.ToLower(strings.TrimSpace(req.Style)); style {
	case "", "locale":
		date, err := format.ParseSize(req.Date)
		if err != nil {
			return "", err
		}
		clock, err := format.ParseSize(req.Clock)
		if err != nil {
			return "", err
		}
		if req.Date == "" && req.Clock == "" {
			date, clock = format.SizeMedium, format.SizeShort
		}
		return r.time.Locale(req.Time, date, clock, req.Timezone, locale)
	case "layout":
		if req.Layout == "" {
			return "", missing("layout", style)
		}
		return r.time.Format(req.Time, req.Layout, req.Timezone)
	case "pattern":
		if req.Layout == "" {
			return "", missing("layout", style)
		}
		return r.time.Pattern(req.Time, req.Layout, req.Timezone, locale)
	case "since":
		return r.time.Since(req.Time, parts, locale)
	case "since_abs":
		return r.time.SinceAbs(req.Time, parts, locale)
	case "since_abbr":
		return r.time.SinceAbbr(req.Time, parts, locale)
	case "until":
		return r.time.Until(req.Time, parts, locale)
	case "until_abs":
		return r.time.UntilAbs(req.Time, parts, locale)
	case "until_abbr":
		return r.time.UntilAbbr(req.Time, parts, locale)
	case "between":
		if req.To == nil {
			return "", missing("to", style)
		}
		return r.time.Between(req.Time, *req.To, parts, locale)
	case "between_abbr":
		if req.To == nil {
			return "", missing("to", style)
		}
		return r.time.BetweenAbbr(req.Time, *req.To, parts, locale)
	default:
		return "", unknownStyle(req.Style, TimeStyles)
	}
}
