// Package i18n provides the locale data behind textkit's formatters: message
// catalogs with CLDR plural selection, per-locale number and calendar
// conventions, and language negotiation.
//
// # Catalogs
//
// A Catalog maps dot-separated keys to templates per language. Templates use
// {{name}} placeholders; counted messages carry one entry per plural form and
// get {{count}} filled in by Tn.
//
//	//go:embed locales
//	var locales embed.FS
//
//	sub, _ := fs.Sub(locales, "locales")
//	cat, err := i18n.New(i18n.WithYAML(sub))
//
//	cat.Tn("en", "interval.day", 3) // "3 days"
//	cat.Tn("ru", "interval.day", 21) // "21 день"
//
// Lookup falls back from the requested language to its base language and
// then to the default language. Unknown keys come back unchanged and are
// reported to the handler set with WithMissingKeyHandler.
//
// # Locale formats
//
// LocaleFormat holds separators, currency and percent placement, date and
// time layouts in Go reference-time notation, and localized month and day
// names. LookupFormat picks the closest predefined format:
//
//	lf, _ := i18n.LookupFormat("de-AT")
//	lf.FormatNumber(1234.5, -1)                          // "1.234,5"
//	lf.FormatCurrency(9.5, "€", 2)                       // "9,50 €"
//	lf.FormatDate(t, i18n.StyleLong)                     // "2. März 2024"
//	lf.FormatDateTime(t, i18n.StyleShort, i18n.StyleShort) // "02.03.24, 14:05"
//
// # Negotiation
//
// Negotiate matches an Accept-Language header or a single tag against the
// languages an application supports, using golang.org/x/text/language.
package i18n
