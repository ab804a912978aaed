// Package slug generates URL-safe slugs from arbitrary strings with Unicode
// transliteration.
//
// Input is transliterated to ASCII, camel-cased words are split, whitespace,
// underscores and slashes become separators and every other character outside
// a-z, 0-9, '_' and '-' is dropped.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/textkit/pkg/slug"
//
//	s := slug.Make("Hello, World!")
//	// Output: "hello-world"
//
//	s = slug.Make("Café & Restaurant")
//	// Output: "cafe-restaurant"
//
//	s = slug.Make("Long Article Title",
//		slug.MaxLength(20),
//		slug.WithSuffix(6),
//	)
//	// Output: "long-article-x3k7f9"
//
// Path slugs each segment of a '/'-separated path and Action produces
// dash-separated action names:
//
//	slug.Path("My Folder//Sub Dir") // "my-folder/sub-dir"
//	slug.Action("ArchiveAll items") // "archive-all-items"
//
// # Configuration Options
//
// MaxLength limits the slug length (rune-based):
//
//	slug.Make("Very long title", slug.MaxLength(9))
//	// Output: "very-long"
//
// MinLength pads short slugs with a random 6 character suffix:
//
//	slug.Make("hi", slug.MinLength(10))
//	// Output: "hi-a3f7k2"
//
// Separator sets the string used between words:
//
//	slug.Make("Product Name", slug.Separator("_"))
//	// Output: "product_name"
//
// Lowercase controls case conversion:
//
//	slug.Make("Product Name", slug.Lowercase(false))
//	// Output: "Product-Name"
//
// Language enables transliteration overrides:
//
//	slug.Make("Größe", slug.Language("de"))
//	// Output: "groesse"
//
// AllowedChars keeps extra characters:
//
//	slug.Make("v1.2 notes", slug.AllowedChars("."))
//	// Output: "v1.2-notes"
//
// StripChars and CustomReplace run before anything else:
//
//	slug.Make("Fish & Chips @ Home", slug.CustomReplace(map[string]string{"&": "and", "@": "at"}))
//	// Output: "fish-and-chips-at-home"
//
// WithSuffix adds a random alphanumeric suffix for uniqueness, and
// ReservedSlugs appends one when the slug collides with a reserved value
// (case-insensitive):
//
//	slug.Make("admin", slug.ReservedSlugs("admin", "api"))
//	// Output: "admin-k7x2m4"
package slug
