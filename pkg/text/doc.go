// Package text provides Text, an immutable Unicode string value with a fluent
// transformation API.
//
// Every method that changes content returns a new Text; the receiver is never
// modified, so values can be shared freely between goroutines. Lengths,
// indices and offsets count characters (code points), never bytes.
//
//	t := text.New("  Hello, Wörld  ")
//	t.Trim().ToASCII("", true).ToLower().String() // "hello, world"
//
// # Regular expressions
//
// Pattern based methods run on github.com/dlclark/regexp2, which supports
// Unicode classes such as \p{L} and .NET style replacement references ($1,
// ${name}). Patterns passed as strings are compiled on demand and kept in a
// bounded LRU cache. Methods taking a string pattern return an error when the
// pattern does not compile (ErrInvalidPattern) or when evaluation fails, for
// example on timeout (ErrRegexFailed).
//
// Hot paths should precompile with MustCompile and use the Must* methods:
//
//	var camelBoundary = text.MustCompile(`([a-z])([A-Z])`)
//
//	text.New("fooBar").MustReplace(camelBoundary, "$1 $2") // "foo Bar"
//
// By default the dot matches newlines; use DotExcludesNewline, Multiline and
// IgnoreCase to adjust matching.
//
// # Encodings
//
// Content is always held as UTF-8. A Text additionally carries a declared
// encoding tag that Decode, Encode and ConvertEncoding use to move between
// UTF-8 and legacy charsets through golang.org/x/text/encoding/htmlindex.
package text
