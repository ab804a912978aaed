package format

import (
	"math"
	"strconv"
	"strings"
)

var (
	smallNumbers = [...]string{
		"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
		"seventeen", "eighteen", "nineteen",
	}
	tensNames  = [...]string{"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}
	scaleNames = [...]string{"", "thousand", "million", "billion", "trillion", "quadrillion", "quintillion"}
)

// spellEnglish follows the ICU en spellout rules: no "and", hyphenated tens,
// fraction digits read one by one after "point".
func spellEnglish(v float64) string {
	if math.IsNaN(v) {
		return "not a number"
	}
	if math.IsInf(v, 0) {
		if v < 0 {
			return "minus infinity"
		}
		return "infinity"
	}

	s := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	intDigits, frac, _ := strings.Cut(s, ".")

	var words []string
	if v < 0 {
		words = append(words, "minus")
	}
	words = append(words, spellInteger(intDigits))

	if frac != "" {
		words = append(words, "point")
		for _, d := range frac {
			words = append(words, smallNumbers[d-'0'])
		}
	}
	return strings.Join(words, " ")
}

// spellInteger spells a string of decimal digits. Values beyond the
// quintillions are read digit by digit.
func spellInteger(digits string) string {
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return "zero"
	}
	if len(digits) > 3*len(scaleNames) {
		parts := make([]string, 0, len(digits))
		for _, d := range digits {
			parts = append(parts, smallNumbers[d-'0'])
		}
		return strings.Join(parts, " ")
	}

	var groups []string
	for scale := 0; digits != ""; scale++ {
		cut := max(len(digits)-3, 0)
		n, _ := strconv.Atoi(digits[cut:])
		digits = digits[:cut]
		if n == 0 {
			continue
		}
		g := spellHundreds(n)
		if scaleNames[scale] != "" {
			g += " " + scaleNames[scale]
		}
		groups = append([]string{g}, groups...)
	}
	return strings.Join(groups, " ")
}

func spellHundreds(n int) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, smallNumbers[n/100], "hundred")
		n %= 100
	}
	switch {
	case n == 0:
	case n < 20:
		parts = append(parts, smallNumbers[n])
	case n%10 == 0:
		parts = append(parts, tensNames[n/10])
	default:
		parts = append(parts, tensNames[n/10]+"-"+smallNumbers[n%10])
	}
	return strings.Join(parts, " ")
}
