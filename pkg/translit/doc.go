// Package translit maps Unicode text to its closest ASCII spelling.
//
// The mapping is table driven. A generic table covers Latin, Greek, Cyrillic,
// Arabic, Georgian, Burmese and Devanagari letters, superscript and
// full-width digits, and the typographic space family. Language overrides
// run first so that, for example, German umlauts become "ae", "oe", "ue"
// instead of the bare vowel.
//
//	translit.ToASCII("Ærøskøbing", "da", true) // "Aeroeskoebing"
//	translit.ToASCII("Straße", "", true)       // "Strasse"
//	translit.ToASCII("Müller", "de", true)     // "Mueller"
//
// Input is composed to NFC before lookup so that decomposed accents match the
// table. With removeUnsupported set, every rune outside printable ASCII
// (0x20-0x7E) that survives the table is dropped.
//
// The table and the replacers compiled from it are built once on first use
// and are safe for concurrent use.
package translit
