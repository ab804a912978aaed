// Package format renders numbers, dates and intervals for people, in the
// conventions of a locale.
//
// Locale and timezone come from a LocaleProvider. SystemProvider reads the
// process environment (TEXTKIT_LOCALE, LC_ALL, LANG, TZ) and falls back to
// the operating system locale; StaticProvider pins both values, which is
// what tests and request handlers usually want.
//
//	p := format.StaticProvider{Lang: "de-DE", Loc: time.UTC}
//
//	num := format.NewNumber(p)
//	num.Decimal(1234.5, 2, "")            // "1.234,50"
//	num.Currency(9.5, "EUR", false, "")   // "9,50 €", nil
//	num.Ordinal(3, "en")                  // "3rd"
//	num.FileSize(1536, "")                // "1,5 KiB"
//
//	h, _ := format.DefaultHumanizer(p)
//	tf := format.NewTime(p, format.WithHumanizer(h))
//	tf.LongDate(t, "", "")                // "2. März 2024", nil
//	tf.Since(t.Add(-72*time.Hour), 1, "en") // "3 days ago", nil
//
// Calls that take a locale or timezone accept "" for the provider default.
// Failures are *Error values that unwrap to the package sentinels, so
// errors.Is(err, format.ErrInvalidCurrency) works.
//
// Interval wording lives in i18n catalogs under the "interval" prefix.
// DefaultCatalog ships English, German, French, Spanish, Polish and Russian;
// pass NewCatalogHumanizer a catalog of your own to add languages. A Time
// built without a humanizer reports ErrHumanizerUnavailable from Since,
// Until and Between.
package format
