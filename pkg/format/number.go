package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/textkit/pkg/i18n"
)

// Number formats numeric values for display. Every method takes the locale
// last; "" asks the provider for the default.
type Number struct {
	locales LocaleProvider
}

// NewNumber returns a Number formatter. A nil provider means
// NewSystemProvider().
func NewNumber(locales LocaleProvider) *Number {
	if locales == nil {
		locales = NewSystemProvider()
	}
	return &Number{locales: locales}
}

// resolve returns the effective locale and its format. Locales without a
// predefined format use the en-US conventions.
func resolve(p LocaleProvider, locale string) (string, *i18n.LocaleFormat) {
	loc := p.Locale(locale)
	lf, err := i18n.LookupFormat(loc)
	if err != nil {
		lf = i18n.FormatEnUS()
	}
	return loc, lf
}

// Format renders v as a decimal followed by unit, when one is given.
func (n *Number) Format(v float64, unit, locale string) string {
	_, lf := resolve(n.locales, locale)
	out := lf.FormatNumber(v, -1)
	if unit != "" {
		out += " " + unit
	}
	return out
}

// Decimal renders v with precision fraction digits, or up to three when
// precision is negative.
func (n *Number) Decimal(v float64, precision int, locale string) string {
	_, lf := resolve(n.locales, locale)
	return lf.FormatNumber(v, precision)
}

// Currency renders v in the ISO 4217 currency code. Digits follow the
// currency's standard scale (two for USD, none for JPY); rounded drops the
// fraction entirely.
func (n *Number) Currency(v float64, code string, rounded bool, locale string) (string, error) {
	loc, lf := resolve(n.locales, locale)

	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return "", fail("currency", loc, fmt.Errorf("%w: %q", ErrInvalidCurrency, code))
	}

	digits, _ := currency.Standard.Rounding(unit)
	if rounded {
		digits = 0
	}
	return lf.FormatCurrency(v, currencySymbol(loc, unit), digits), nil
}

func currencySymbol(locale string, unit currency.Unit) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return message.NewPrinter(tag).Sprint(currency.Symbol(unit))
}

// Percent renders v as a share of total (25 of 100 is "25%") with up to
// decimals fraction digits.
func (n *Number) Percent(v, total float64, decimals int, locale string) (string, error) {
	loc, lf := resolve(n.locales, locale)
	if total <= 0 {
		return "", fail("percent", loc, fmt.Errorf("%w: %v", ErrInvalidTotal, total))
	}
	return lf.FormatPercent(v/total, decimals), nil
}

// Scientific renders v in E notation with the locale decimal mark, as
// "1.2345E3".
func (n *Number) Scientific(v float64, locale string) string {
	_, lf := resolve(n.locales, locale)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return lf.FormatNumber(v, -1)
	}

	s := strconv.FormatFloat(v, 'E', -1, 64)
	mant, exp, _ := strings.Cut(s, "E")
	exp = strings.TrimPrefix(exp, "+")
	if neg := strings.HasPrefix(exp, "-"); neg {
		exp = "-" + strings.TrimLeft(exp[1:], "0")
	} else {
		exp = strings.TrimLeft(exp, "0")
	}
	if exp == "" || exp == "-" {
		exp = "0"
	}
	return strings.Replace(mant, ".", lf.DecimalSeparator(), 1) + "E" + exp
}

// Spellout writes v in words. Only English is supported; other languages
// return ErrUnsupportedLocale.
func (n *Number) Spellout(v float64, locale string) (string, error) {
	loc, _ := resolve(n.locales, locale)
	if baseOf(loc) != "en" {
		return "", fail("spellout", loc, ErrUnsupportedLocale)
	}
	return spellEnglish(v), nil
}

// Ordinal renders v as a rank: "1st" in English, "1." in German, "1er" in
// French.
func (n *Number) Ordinal(v int64, locale string) string {
	loc, lf := resolve(n.locales, locale)
	num := lf.FormatNumber(float64(v), 0)

	switch baseOf(loc) {
	case "en":
		return humanize.Ordinal(int(v))
	case "fr":
		if v == 1 {
			return num + "er"
		}
		return num + "e"
	case "es", "pt", "it":
		return num + ".º"
	case "ja", "zh":
		return "第" + num
	case "ko":
		return num + "번째"
	case "ar":
		return num
	}
	return num + "."
}

// Diff renders a change with a direction arrow: "⬆ 5", "⬇ 2.5" or "⬌ 0".
// invert flips the sign first.
func (n *Number) Diff(v float64, invert bool, locale string) string {
	if invert {
		v = -v
	}
	arrow := "⬌"
	switch {
	case v > 0:
		arrow = "⬆"
	case v < 0:
		arrow = "⬇"
	}
	return arrow + " " + n.Format(math.Abs(v), "", locale)
}

// FileSize renders a byte count in binary units ("1.5 KiB").
func (n *Number) FileSize(bytes int64, locale string) string {
	_, lf := resolve(n.locales, locale)
	return localizeDecimal(signed(bytes, humanize.IBytes), lf)
}

// FileSizeDec renders a byte count in decimal units ("1.5 kB").
func (n *Number) FileSizeDec(bytes int64, locale string) string {
	_, lf := resolve(n.locales, locale)
	return localizeDecimal(signed(bytes, humanize.Bytes), lf)
}

func signed(bytes int64, render func(uint64) string) string {
	if bytes < 0 {
		return "-" + render(uint64(-bytes))
	}
	return render(uint64(bytes))
}

func localizeDecimal(s string, lf *i18n.LocaleFormat) string {
	if lf.DecimalSeparator() == "." {
		return s
	}
	return strings.Replace(s, ".", lf.DecimalSeparator(), 1)
}

var counterSuffixes = map[string]string{"k": "K", "M": "M", "G": "B", "T": "T", "P": "P", "E": "E"}

// Counter renders v in compact form for badges and counters: 950, 1.2K,
// 3.4M, 1.2B.
func (n *Number) Counter(v float64, locale string) string {
	_, lf := resolve(n.locales, locale)
	if math.Abs(v) < 1000 || math.IsInf(v, 0) || math.IsNaN(v) {
		return lf.FormatDigits(v, i18n.Digits{MinInt: 1, MaxFrac: 1, Grouped: true})
	}
	value, prefix := humanize.ComputeSI(v)
	if math.Abs(value) >= 999.95 {
		if next, ok := nextSI[prefix]; ok {
			value, prefix = value/1000, next
		}
	}
	return lf.FormatDigits(value, i18n.Digits{MinInt: 1, MaxFrac: 1}) + counterSuffixes[prefix]
}

var nextSI = map[string]string{"k": "M", "M": "G", "G": "T", "T": "P", "P": "E"}

// Pattern renders v with an ICU-style decimal pattern such as "#,##0.00",
// "000.#" or "#,##0.0 %". Literal text around the digits is kept; a percent
// sign in it scales v by 100.
func (n *Number) Pattern(v float64, pattern, locale string) (string, error) {
	loc, lf := resolve(n.locales, locale)

	p, err := parsePattern(pattern)
	if err != nil {
		return "", fail("pattern", loc, err)
	}
	if p.percent {
		v *= 100
	}
	num := lf.FormatDigits(math.Abs(v), p.digits)
	out := p.prefix + num + p.suffix
	if v < 0 && strings.Trim(num, "0"+lf.DecimalSeparator()+lf.GroupSeparator()) != "" {
		out = "-" + out
	}
	return out, nil
}

type numberPattern struct {
	prefix, suffix string
	digits         i18n.Digits
	percent        bool
}

func parsePattern(p string) (numberPattern, error) {
	start := strings.IndexAny(p, "#0")
	if start < 0 {
		return numberPattern{}, fmt.Errorf("%w: %q has no digits", ErrInvalidPattern, p)
	}
	end := strings.LastIndexAny(p, "#0") + 1

	body := p[start:end]
	if strings.Trim(body, "#0,.") != "" || strings.Count(body, ".") > 1 {
		return numberPattern{}, fmt.Errorf("%w: %q", ErrInvalidPattern, p)
	}

	intPart, frac, _ := strings.Cut(body, ".")
	if strings.Contains(frac, ",") {
		return numberPattern{}, fmt.Errorf("%w: grouping in fraction of %q", ErrInvalidPattern, p)
	}

	minFrac := strings.Count(frac, "0")
	out := numberPattern{
		prefix: p[:start],
		suffix: p[end:],
		digits: i18n.Digits{
			MinInt:  strings.Count(intPart, "0"),
			MinFrac: minFrac,
			MaxFrac: minFrac + strings.Count(frac, "#"),
			Grouped: strings.Contains(intPart, ","),
		},
	}
	out.percent = strings.Contains(out.prefix+out.suffix, "%")
	return out, nil
}

func baseOf(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return locale
	}
	base, _ := tag.Base()
	return base.String()
}
