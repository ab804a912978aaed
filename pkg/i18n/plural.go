package i18n

// PluralRule picks the CLDR plural category for a count.
type PluralRule func(n int) string

// Plural categories as named by Unicode CLDR. A language uses a subset.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// EnglishPluralRule: one for ±1, zero for 0, other otherwise. Catalogs without
// a zero form fall back to other.
var EnglishPluralRule PluralRule = func(n int) string {
	switch abs(n) {
	case 0:
		return PluralZero
	case 1:
		return PluralOne
	}
	return PluralOther
}

// GermanicPluralRule covers German, Dutch and the Scandinavian languages.
var GermanicPluralRule PluralRule = func(n int) string {
	if abs(n) == 1 {
		return PluralOne
	}
	return PluralOther
}

// FrenchPluralRule treats 0 and 1 as singular; millions take many.
var FrenchPluralRule PluralRule = func(n int) string {
	a := abs(n)
	switch {
	case a <= 1:
		return PluralOne
	case a >= 1_000_000 && a%1_000_000 == 0:
		return PluralMany
	}
	return PluralOther
}

// IberianPluralRule covers Spanish, Portuguese and Italian.
var IberianPluralRule PluralRule = func(n int) string {
	a := abs(n)
	switch {
	case a == 1:
		return PluralOne
	case a >= 1_000_000 && a%1_000_000 == 0:
		return PluralMany
	}
	return PluralOther
}

// WestSlavicPluralRule covers Polish, Czech and Slovak: only 1 is singular,
// 2-4 (except 12-14) are few.
var WestSlavicPluralRule PluralRule = func(n int) string {
	a := abs(n)
	if a == 1 {
		return PluralOne
	}
	if m10, m100 := a%10, a%100; m10 >= 2 && m10 <= 4 && (m100 < 12 || m100 > 14) {
		return PluralFew
	}
	return PluralMany
}

// EastSlavicPluralRule covers Russian, Ukrainian and Belarusian, where 21 and
// 31 are singular too.
var EastSlavicPluralRule PluralRule = func(n int) string {
	a := abs(n)
	m10, m100 := a%10, a%100
	switch {
	case m10 == 1 && m100 != 11:
		return PluralOne
	case m10 >= 2 && m10 <= 4 && (m100 < 12 || m100 > 14):
		return PluralFew
	}
	return PluralMany
}

// ArabicPluralRule uses all six categories.
var ArabicPluralRule PluralRule = func(n int) string {
	a := abs(n)
	m100 := a % 100
	switch {
	case a == 0:
		return PluralZero
	case a == 1:
		return PluralOne
	case a == 2:
		return PluralTwo
	case m100 >= 3 && m100 <= 10:
		return PluralFew
	case m100 >= 11:
		return PluralMany
	}
	return PluralOther
}

// InvariantPluralRule is for languages without grammatical number.
var InvariantPluralRule PluralRule = func(int) string { return PluralOther }

var pluralRules = map[string]PluralRule{
	"en": EnglishPluralRule,
	"de": GermanicPluralRule, "nl": GermanicPluralRule, "sv": GermanicPluralRule,
	"da": GermanicPluralRule, "no": GermanicPluralRule, "nb": GermanicPluralRule,
	"fr": FrenchPluralRule,
	"es": IberianPluralRule, "pt": IberianPluralRule, "it": IberianPluralRule,
	"pl": WestSlavicPluralRule, "cs": WestSlavicPluralRule, "sk": WestSlavicPluralRule,
	"ru": EastSlavicPluralRule, "uk": EastSlavicPluralRule, "be": EastSlavicPluralRule,
	"ar": ArabicPluralRule,
	"ja": InvariantPluralRule, "zh": InvariantPluralRule, "ko": InvariantPluralRule,
	"th": InvariantPluralRule, "vi": InvariantPluralRule, "id": InvariantPluralRule,
}

// RuleFor returns the plural rule for the base language of lang. Unknown
// languages get the Germanic one/other split.
func RuleFor(lang string) PluralRule {
	if rule, ok := pluralRules[baseLanguage(lang)]; ok {
		return rule
	}
	return GermanicPluralRule
}

// pluralFallbacks lists the forms tried when a catalog lacks the exact one.
func pluralFallbacks(form string) []string {
	switch form {
	case PluralTwo:
		return []string{PluralFew, PluralMany, PluralOther}
	case PluralFew:
		return []string{PluralMany, PluralOther}
	case PluralOther:
		return nil
	}
	return []string{PluralOther}
}
