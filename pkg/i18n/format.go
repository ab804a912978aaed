package i18n

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Style selects one of the four CLDR date/time lengths.
type Style int

const (
	StyleShort Style = iota
	StyleMedium
	StyleLong
	StyleFull
)

// LocaleFormat holds the number and calendar conventions of one locale. It is
// immutable after creation and safe for concurrent use.
type LocaleFormat struct {
	tag language.Tag

	decimal string
	group   string

	// "¤" marks the symbol and "#" the number, e.g. "¤#" or "# ¤".
	currencyPattern string
	percentPattern  string

	dateLayouts [4]string
	timeLayouts [4]string
	// Joins the date and time parts, using {{date}} and {{time}}.
	dateTime string

	months      [12]string
	monthsShort [12]string
	days        [7]string
	daysShort   [7]string
}

// LocaleFormatOption configures a LocaleFormat during construction.
type LocaleFormatOption func(*LocaleFormat)

// NewLocaleFormat returns a LocaleFormat for tag. Unset fields follow en-US.
func NewLocaleFormat(tag language.Tag, opts ...LocaleFormatOption) *LocaleFormat {
	lf := &LocaleFormat{
		tag:             tag,
		decimal:         ".",
		group:           ",",
		currencyPattern: "¤#",
		percentPattern:  "#%",
		dateLayouts:     [4]string{"1/2/06", "Jan 2, 2006", "January 2, 2006", "Monday, January 2, 2006"},
		timeLayouts:     [4]string{"3:04 PM", "3:04:05 PM", "3:04:05 PM MST", "3:04:05 PM MST"},
		dateTime:        "{{date}}, {{time}}",
	}
	for _, opt := range opts {
		opt(lf)
	}
	return lf
}

// WithSeparators sets the decimal and digit-group separators.
func WithSeparators(decimal, group string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.decimal = decimal
		lf.group = group
	}
}

// WithCurrencyPattern sets where the symbol goes relative to the number.
func WithCurrencyPattern(pattern string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		if strings.Contains(pattern, "¤") && strings.Contains(pattern, "#") {
			lf.currencyPattern = pattern
		}
	}
}

// WithPercentPattern sets where the percent sign goes, e.g. "# %".
func WithPercentPattern(pattern string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		if strings.Contains(pattern, "#") {
			lf.percentPattern = pattern
		}
	}
}

// WithDateLayouts sets the short, medium, long and full date layouts in Go
// reference-time notation.
func WithDateLayouts(short, medium, long, full string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.dateLayouts = [4]string{short, medium, long, full}
	}
}

// WithTimeLayouts sets the short, medium, long and full time layouts.
func WithTimeLayouts(short, medium, long, full string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.timeLayouts = [4]string{short, medium, long, full}
	}
}

// WithDateTimePattern sets how date and time are joined.
func WithDateTimePattern(pattern string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.dateTime = pattern
	}
}

// WithMonthNames replaces the English month names used by layouts.
func WithMonthNames(long, short [12]string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.months = long
		lf.monthsShort = short
	}
}

// WithDayNames replaces the English weekday names, Sunday first.
func WithDayNames(long, short [7]string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.days = long
		lf.daysShort = short
	}
}

// Tag returns the locale the format was built for.
func (lf *LocaleFormat) Tag() language.Tag { return lf.tag }

// DecimalSeparator returns the decimal mark.
func (lf *LocaleFormat) DecimalSeparator() string { return lf.decimal }

// GroupSeparator returns the thousands separator.
func (lf *LocaleFormat) GroupSeparator() string { return lf.group }

// FormatNumber renders n with grouping. A negative precision keeps up to
// three fraction digits and drops trailing zeros; otherwise exactly precision
// digits are shown.
func (lf *LocaleFormat) FormatNumber(n float64, precision int) string {
	d := Digits{MinInt: 1, MinFrac: precision, MaxFrac: precision, Grouped: true}
	if precision < 0 {
		d.MinFrac, d.MaxFrac = 0, 3
	}
	return lf.FormatDigits(n, d)
}

// Digits controls how FormatDigits lays out a number.
type Digits struct {
	MinInt  int
	MinFrac int
	MaxFrac int
	Grouped bool
}

// FormatDigits renders n with the locale separators. The integer part is
// zero-padded to MinInt digits; with MinInt 0 a zero integer part is omitted
// (".5"). Fraction digits beyond MinFrac are dropped when they are zero.
func (lf *LocaleFormat) FormatDigits(n float64, d Digits) string {
	if math.IsNaN(n) {
		return "NaN"
	}
	if math.IsInf(n, 0) {
		if n < 0 {
			return "-∞"
		}
		return "∞"
	}
	d.MinFrac = max(d.MinFrac, 0)
	d.MaxFrac = max(d.MaxFrac, d.MinFrac)

	s := strconv.FormatFloat(math.Abs(n), 'f', d.MaxFrac, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	for len(frac) > d.MinFrac && strings.HasSuffix(frac, "0") {
		frac = frac[:len(frac)-1]
	}

	if len(intPart) < d.MinInt {
		intPart = strings.Repeat("0", d.MinInt-len(intPart)) + intPart
	} else if d.MinInt == 0 && intPart == "0" {
		intPart = ""
	}
	if d.Grouped {
		intPart = groupDigits(intPart, lf.group)
	}

	out := intPart
	if frac != "" {
		out += lf.decimal + frac
	}
	if out == "" {
		out = "0"
	}
	if n < 0 && strings.Trim(s, "0.") != "" {
		out = "-" + out
	}
	return out
}

func groupDigits(digits, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatCurrency renders amount with symbol and exactly digits fraction
// digits, placing the symbol by the locale pattern.
func (lf *LocaleFormat) FormatCurrency(amount float64, symbol string, digits int) string {
	num := lf.FormatDigits(math.Abs(amount), Digits{MinInt: 1, MinFrac: digits, MaxFrac: digits, Grouped: true})
	out := strings.NewReplacer("¤", symbol, "#", num).Replace(lf.currencyPattern)
	if amount < 0 && strings.Trim(num, "0"+lf.decimal+lf.group) != "" {
		out = "-" + out
	}
	return out
}

// FormatPercent renders ratio (0.25 for 25%) with up to decimals fraction
// digits.
func (lf *LocaleFormat) FormatPercent(ratio float64, decimals int) string {
	num := lf.FormatDigits(ratio*100, Digits{MinInt: 1, MaxFrac: decimals, Grouped: true})
	return strings.Replace(lf.percentPattern, "#", num, 1)
}

// DateLayout returns the Go layout for a date of the given style.
func (lf *LocaleFormat) DateLayout(s Style) string { return lf.dateLayouts[clampStyle(s)] }

// TimeLayout returns the Go layout for a time of the given style.
func (lf *LocaleFormat) TimeLayout(s Style) string { return lf.timeLayouts[clampStyle(s)] }

func clampStyle(s Style) Style {
	return min(max(s, StyleShort), StyleFull)
}

// FormatDate renders the date part of t.
func (lf *LocaleFormat) FormatDate(t time.Time, s Style) string {
	return lf.Format(t, lf.DateLayout(s))
}

// FormatTime renders the time part of t.
func (lf *LocaleFormat) FormatTime(t time.Time, s Style) string {
	return lf.Format(t, lf.TimeLayout(s))
}

// FormatDateTime renders both parts joined by the locale pattern.
func (lf *LocaleFormat) FormatDateTime(t time.Time, date, tm Style) string {
	return Expand(lf.dateTime, M{
		"date": lf.FormatDate(t, date),
		"time": lf.FormatTime(t, tm),
	})
}

// nameTokens are the layout elements rendered with localized names, longest
// first so "January" wins over "Jan" at the same offset.
var nameTokens = []string{"January", "Monday", "Jan", "Mon"}

// Format renders t with a Go layout, substituting localized month and weekday
// names where the locale defines them.
func (lf *LocaleFormat) Format(t time.Time, layout string) string {
	var b strings.Builder
	for layout != "" {
		at, tok := -1, ""
		for _, candidate := range nameTokens {
			if i := strings.Index(layout, candidate); i >= 0 && (at < 0 || i < at) {
				at, tok = i, candidate
			}
		}
		if at < 0 {
			b.WriteString(t.Format(layout))
			break
		}
		b.WriteString(t.Format(layout[:at]))
		b.WriteString(lf.name(t, tok))
		layout = layout[at+len(tok):]
	}
	return b.String()
}

func (lf *LocaleFormat) name(t time.Time, tok string) string {
	var s string
	switch tok {
	case "January":
		s = lf.months[t.Month()-1]
	case "Jan":
		s = lf.monthsShort[t.Month()-1]
	case "Monday":
		s = lf.days[t.Weekday()]
	case "Mon":
		s = lf.daysShort[t.Weekday()]
	}
	if s == "" {
		return t.Format(tok)
	}
	return s
}
