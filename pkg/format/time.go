package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/textkit/pkg/i18n"
)

// Size selects the length of a localized date or time part.
type Size int

const (
	SizeNone Size = iota
	SizeShort
	SizeMedium
	SizeLong
	SizeFull
)

var sizeNames = map[string]Size{
	"":       SizeNone,
	"none":   SizeNone,
	"false":  SizeNone,
	"short":  SizeShort,
	"medium": SizeMedium,
	"long":   SizeLong,
	"true":   SizeLong,
	"full":   SizeFull,
}

// ParseSize reads a size token: full, long, medium, short or none. "true"
// means long and "false" or "" mean none.
func ParseSize(s string) (Size, error) {
	size, ok := sizeNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return SizeNone, fail("size", "", fmt.Errorf("%w: %q", ErrInvalidSize, s))
	}
	return size, nil
}

func (s Size) String() string {
	switch s {
	case SizeShort:
		return "short"
	case SizeMedium:
		return "medium"
	case SizeLong:
		return "long"
	case SizeFull:
		return "full"
	}
	return "none"
}

func (s Size) style() i18n.Style {
	return i18n.Style(s - SizeShort)
}

// KeepZone, passed as a timezone, formats a time in its own location.
const KeepZone = "keep"

// Time formats instants and intervals. Every method takes the timezone and
// locale last; "" asks the provider for the default.
type Time struct {
	locales   LocaleProvider
	humanizer Humanizer
	now       func() time.Time
}

// TimeOption configures a Time formatter.
type TimeOption func(*Time)

// WithHumanizer sets the interval humanizer used by Since, Until and
// Between. Without one those methods fail with ErrHumanizerUnavailable.
func WithHumanizer(h Humanizer) TimeOption {
	return func(f *Time) { f.humanizer = h }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) TimeOption {
	return func(f *Time) {
		if now != nil {
			f.now = now
		}
	}
}

// NewTime returns a Time formatter. A nil provider means
// NewSystemProvider().
func NewTime(locales LocaleProvider, opts ...TimeOption) *Time {
	if locales == nil {
		locales = NewSystemProvider()
	}
	f := &Time{locales: locales, now: time.Now}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Time) in(t time.Time, tz string) (time.Time, error) {
	if tz == KeepZone {
		return t, nil
	}
	loc, err := f.locales.Location(tz)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

// Format renders t with a Go layout after moving it into tz. Names stay in
// English; use Pattern for localized names.
func (f *Time) Format(t time.Time, layout, tz string) (string, error) {
	t, err := f.in(t, tz)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}

// FormatDate renders t with a Go layout in its own location.
func (f *Time) FormatDate(t time.Time, layout string) string {
	return t.Format(layout)
}

// Pattern renders t with a Go layout, using the month and weekday names of
// locale.
func (f *Time) Pattern(t time.Time, layout, tz, locale string) (string, error) {
	t, err := f.in(t, tz)
	if err != nil {
		return "", err
	}
	_, lf := resolve(f.locales, locale)
	return lf.Format(t, layout), nil
}

// Locale renders t in the conventions of locale. Either part may be
// SizeNone; with both none the result is empty.
func (f *Time) Locale(t time.Time, date, clock Size, tz, locale string) (string, error) {
	if date < SizeNone || date > SizeFull || clock < SizeNone || clock > SizeFull {
		return "", fail("locale", locale, fmt.Errorf("%w: %d/%d", ErrInvalidSize, date, clock))
	}
	if date == SizeNone && clock == SizeNone {
		return "", nil
	}

	t, err := f.in(t, tz)
	if err != nil {
		return "", err
	}
	_, lf := resolve(f.locales, locale)

	switch {
	case clock == SizeNone:
		return lf.FormatDate(t, date.style()), nil
	case date == SizeNone:
		return lf.FormatTime(t, clock.style()), nil
	}
	return lf.FormatDateTime(t, date.style(), clock.style()), nil
}

func (f *Time) FullDateTime(t time.Time, tz, locale string) (string, error) {
	return f.Locale(t, SizeFull, SizeFull, tz, locale)
}

func (f *Time) FullDate(t time.Time, tz, locale string) (string, error) {
	return f.Locale(t, SizeFull, SizeNone, tz, locale)
}

func (f *Time) FullTime(t time.Time, tz, locale string) (string, error) {
	return f.Locale(t, SizeNone, SizeFull, tz, locale)
}

func (f *Time) LongDateTime(t time.Time, tz, locale string) (string, error) {
	return f.Locale(t, SizeLong, SizeLong, tz, locale)
}

func (f *Time) LongDate(t time.Time, tz, locale string) (string, error) {
	return f.Locale(t, SizeLong, SizeNone, tz, locale)
}

func (f *Time) LongTime(t time.Time, tz, locale string) (string, error) {
	return f.Locale(t, SizeNone, SizeLong, tz, locale)
}

func (f *Time) MediumDateTime(t time.Time, tz, locale string) (string, error) {
	return f.Locale(t, SizeMedium, SizeMedium, tz, locale)
}

func (f *Time) MediumDate(t time.Time, tz, locale string) (string, error) {
	return f.Locale(t, SizeMedium, SizeNone, tz, locale)
}

func (f *Time) MediumTime(t time.Time, tz, locale string) (string, error) {
	return f.Locale(t, SizeNone, SizeMedium, tz, locale)
}

func (f *Time) ShortDateTime(t time.Time, tz, locale string) (string, error) {
	return f.Locale(t, SizeShort, SizeShort, tz, locale)
}

func (f *Time) ShortDate(t time.Time, tz, locale string) (string, error) {
	return f.Locale(t, SizeShort, SizeNone, tz, locale)
}

func (f *Time) ShortTime(t time.Time, tz, locale string) (string, error) {
	return f.Locale(t, SizeNone, SizeShort, tz, locale)
}

// DateTime is MediumDateTime.
func (f *Time) DateTime(t time.Time, tz, locale string) (string, error) {
	return f.MediumDateTime(t, tz, locale)
}

// Date is MediumDate.
func (f *Time) Date(t time.Time, tz, locale string) (string, error) {
	return f.MediumDate(t, tz, locale)
}

// Since describes t relative to now: "3 days ago" for the past, "in 3 days"
// for the future. parts caps the number of units.
func (f *Time) Since(t time.Time, parts int, locale string) (string, error) {
	return f.fromNow(t, false, parts, false, false, locale)
}

// SinceAbs is Since without direction words; a time in the future is
// prefixed with "-".
func (f *Time) SinceAbs(t time.Time, parts int, locale string) (string, error) {
	return f.fromNow(t, false, parts, false, true, locale)
}

// SinceAbbr is SinceAbs with abbreviated units.
func (f *Time) SinceAbbr(t time.Time, parts int, locale string) (string, error) {
	return f.fromNow(t, false, parts, true, true, locale)
}

// Until describes the time left until t: "3 days" for the future. A time
// already past reads "3 days ago".
func (f *Time) Until(t time.Time, parts int, locale string) (string, error) {
	return f.fromNow(t, true, parts, false, false, locale)
}

// UntilAbs is Until without direction words; a time in the past is prefixed
// with "-".
func (f *Time) UntilAbs(t time.Time, parts int, locale string) (string, error) {
	return f.fromNow(t, true, parts, false, true, locale)
}

// UntilAbbr is UntilAbs with abbreviated units.
func (f *Time) UntilAbbr(t time.Time, parts int, locale string) (string, error) {
	return f.fromNow(t, true, parts, true, true, locale)
}

func (f *Time) fromNow(t time.Time, until bool, parts int, short, absolute bool, locale string) (string, error) {
	if f.humanizer == nil {
		return "", fail("interval", locale, ErrHumanizerUnavailable)
	}

	d := t.Sub(f.now())
	future := d > 0
	// Until counts toward t: a future t is the plain remaining time and a
	// past t keeps its "ago" wording.
	negative := future
	if until {
		if future {
			absolute = true
		}
		negative = !future
	}

	out, err := f.humanizer.Humanize(d, HumanizeOptions{
		Locale:   locale,
		Parts:    parts,
		Short:    short,
		Absolute: absolute,
	})
	if err != nil {
		return "", err
	}
	if negative && absolute && d != 0 {
		out = "-" + out
	}
	return out, nil
}

// Between describes the span from a to b without direction words. When b is
// before a the result is prefixed with "-".
func (f *Time) Between(a, b time.Time, parts int, locale string) (string, error) {
	return f.between(a, b, parts, false, locale)
}

// BetweenAbbr is Between with abbreviated units.
func (f *Time) BetweenAbbr(a, b time.Time, parts int, locale string) (string, error) {
	return f.between(a, b, parts, true, locale)
}

func (f *Time) between(a, b time.Time, parts int, short bool, locale string) (string, error) {
	if f.humanizer == nil {
		return "", fail("interval", locale, ErrHumanizerUnavailable)
	}
	d := b.Sub(a)
	out, err := f.humanizer.Humanize(d, HumanizeOptions{
		Locale:   locale,
		Parts:    parts,
		Short:    short,
		Absolute: true,
	})
	if err != nil {
		return "", err
	}
	if d < 0 {
		out = "-" + out
	}
	return out, nil
}
