package normalize

import (
	"errors"

	"github.com/dmitrymomot/textkit/pkg/basen"
	"github.com/dmitrymomot/textkit/pkg/slug"
	"github.com/dmitrymomot/textkit/pkg/text"
)

const ellipsis = "…"

var (
	upperBoundary   = text.MustCompile(`([^ ])([A-Z])`)
	lowerUpper      = text.MustCompile(`([a-z])([A-Z])`)
	nameBoundary    = text.MustCompile(`([^ ])([A-Z/])`)
	afterSlash      = text.MustCompile(`(/)([^ ])`)
	dashOrUnder     = text.MustCompile(`[-_]`)
	whitespaceRun   = text.MustCompile(`\s+`)
	nonAlnum        = text.MustCompile(`[^a-zA-Z0-9]`)
	nonIDChars      = text.MustCompile(`[^a-zA-Z0-9 ]`)
	nonConstChars   = text.MustCompile(`[^a-zA-Z0-9_ ]`)
	underscoreRun   = text.MustCompile(`_+`)
	vowelRun        = text.MustCompile(`[aeiou]+`)
	fileNameIllegal = text.MustCompile(`[\\/?%*:|"<>]`)
)

// Slug converts v to a URL slug. See slug.Make for the available options.
func Slug(v Value, opts ...slug.Option) (string, bool) {
	if v.IsNull() {
		return "", false
	}
	return slug.Make(v.s, opts...), true
}

// PathSlug slugs every '/'-separated segment of v. Empty input, or input in
// which no segment survives, is null.
func PathSlug(v Value, opts ...slug.Option) (string, bool) {
	if v.IsNull() || v.s == "" {
		return "", false
	}
	out := slug.Path(v.s, opts...)
	return out, out != ""
}

// ActionSlug converts v to a dash-separated action name.
func ActionSlug(v Value) (string, bool) {
	if v.IsNull() {
		return "", false
	}
	return slug.Action(v.s), true
}

// ID converts v to an upper camel case identifier:
// "my-cool_value+thing" becomes "MyCoolValueThing".
func ID(v Value) (string, bool) {
	t, ok := Text(v)
	if !ok {
		return "", false
	}
	return id(t).String(), true
}

func id(t text.Text) text.Text {
	return t.ToASCII("", true).
		MustReplace(upperBoundary, "$1 $2").
		ReplaceEach("-", " ", ".", " ", "+", " ", "_", " ").
		MustReplace(nonIDChars, "").
		ToTitle().
		Replace(" ", "")
}

// Camel is ID with the first character lower-cased.
func Camel(v Value) (string, bool) {
	t, ok := Text(v)
	if !ok {
		return "", false
	}
	return id(t).FirstToLower().String(), true
}

// Constant converts v to an upper snake case constant name:
// "some Weird--Name" becomes "SOME_WEIRD_NAME".
func Constant(v Value) (string, bool) {
	t, ok := Text(v)
	if !ok {
		return "", false
	}
	return t.ToASCII("", true).
		MustReplace(nonAlnum, " ").
		MustReplace(upperBoundary, "$1 $2").
		MustReplace(nonConstChars, "").
		Trim().
		Replace(" ", "_").
		MustReplace(underscoreRun, "_").
		ToUpper().
		String(), true
}

// Label converts an identifier-like v into a sentence case label:
// "user_firstName" becomes "User first name".
func Label(v Value) (string, bool) {
	t, ok := Text(v)
	if !ok {
		return "", false
	}
	return t.MustReplace(dashOrUnder, " ").
		MustReplace(lowerUpper, "$1 $2").
		MustReplace(whitespaceRun, " ").
		ToLower().
		FirstToUpper().
		String(), true
}

// Name converts v into a title-cased display name, splitting camel case and
// spacing out slashes.
func Name(v Value) (string, bool) {
	t, ok := Text(v)
	if !ok {
		return "", false
	}
	return t.ReplaceEach("-", " ", "_", " ").
		MustReplace(nameBoundary, "$1 $2").
		MustReplace(afterSlash, "$1 $2").
		ToTitle().
		String(), true
}

// Consonants transliterates v and drops the lower-case vowels.
func Consonants(v Value) (string, bool) {
	t, ok := Text(v)
	if !ok {
		return "", false
	}
	return t.ToASCII("", true).MustReplace(vowelRun, "").String(), true
}

// FileName makes v safe to use as a file name. Slashes become underscores,
// characters reserved by common file systems are dropped and, unless
// allowSpaces is set, spaces become dashes.
func FileName(v Value, allowSpaces bool) (string, bool) {
	t, ok := Text(v)
	if !ok {
		return "", false
	}
	t = t.ToASCII("", true).Replace("/", "_").MustReplace(fileNameIllegal, "")
	if !allowSpaces {
		t = t.Replace(" ", "-")
	}
	return t.String(), true
}

// Shorten caps v at length characters, ellipsis included. Lengths below 5 are
// raised to 5. With rtl the end of the text is kept instead of the start.
func Shorten(v Value, length int, rtl bool) (string, bool) {
	t, ok := Text(v)
	if !ok {
		return "", false
	}
	length = max(length, 5)
	if t.Len() <= length-1 {
		return t.String(), true
	}
	if rtl {
		return t.Slice(-(length - 1)).TrimLeftChars("., ").Prepend(ellipsis).String(), true
	}
	return t.SliceN(0, length-1).TrimRightChars("., ").Append(ellipsis).String(), true
}

// NumericToAlpha encodes an integer v in bijective base-26 ("a" is 0, "aa"
// is 26). Null, non-integer and negative values are null.
func NumericToAlpha(v Value) (string, bool) {
	if v.IsNull() {
		return "", false
	}
	n, err := v.Int()
	if err != nil {
		return "", false
	}
	s, err := basen.NumericToAlpha(n)
	if err != nil {
		return "", false
	}
	return s, true
}

// AlphaToNumeric decodes the letters of v as bijective base-26. ok is false
// for null or for input without letters; an error reports a value that does
// not fit in an int64.
func AlphaToNumeric(v Value) (n int64, ok bool, err error) {
	if v.IsNull() {
		return 0, false, nil
	}
	n, err = basen.AlphaToNumeric(v.s)
	switch {
	case err == nil:
		return n, true, nil
	case errors.Is(err, basen.ErrNoLetters):
		return 0, false, nil
	default:
		return 0, false, err
	}
}
