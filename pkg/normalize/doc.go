// Package normalize converts free-form input into canonical string forms:
// slugs, identifiers, constants, labels, display names, initials and file
// names.
//
// Every pipeline takes a Value, a small union of text, integer, float and
// null, and returns the result with a comma-ok flag. A false flag is the null
// outcome: null input always yields it and no transform runs.
//
//	normalize.ID(normalize.String("my-cool_value+thing"))       // "MyCoolValueThing", true
//	normalize.Camel(normalize.String("my-cool_value+thing"))    // "myCoolValueThing", true
//	normalize.Constant(normalize.String("some Weird--Name"))    // "SOME_WEIRD_NAME", true
//	normalize.FirstName(normalize.String("Dr John Smith"))      // "John", true
//	normalize.Initials(normalize.String("John Michael Smith"), false) // "JMS", true
//	normalize.Slug(normalize.Null())                            // "", false
//
// Values are built with String, Int, Float, Stringer and Null, or from an
// arbitrary Go value with Of:
//
//	v, err := normalize.Of(42)
//	s, ok := normalize.NumericToAlpha(v) // "aq", true
//
// FirstName, InitialsAndSurname, InitialMiddleNames and PathSlug also treat
// the empty string as null.
//
// The chains run in a fixed order and are built from text.Text operations;
// changing the order changes the output.
package normalize
