// Package sanitizer provides the string transforms behind kit's string mutators.
//
// Every helper comes in a byte-oriented and a unicode-aware flavour selected by a
// boolean flag, mirroring the `unicode` property of string types: byte mode treats
// the input as a sequence of bytes and only folds ASCII letters, unicode mode works
// on code points and uses golang.org/x/text/cases for case mapping.
//
//	sanitizer.ToLower("ÀB", false)        // "Àb"
//	sanitizer.ToLower("ÀB", true)         // "àb"
//	sanitizer.Length("été", false)        // 5
//	sanitizer.Length("été", true)         // 3
//
// Truncate shortens text to a maximum length, optionally backing off to the last
// word or sentence boundary and appending an ellipsis:
//
//	sanitizer.Truncate("The quick brown fox", 12, sanitizer.TruncateOptions{
//		Ellipsis:  "...",
//		KeepWords: true,
//	}) // "The quick..."
//
// Slug reduces text to lowercase ASCII words, dropping diacritics with
// golang.org/x/text/unicode/norm:
//
//	sanitizer.Slug("Crème Brûlée", "-", 0) // "creme-brulee"
//
// Match implements shell-style wildcards ('*' and '?') without treating any
// character as a path separator.
//
// The package is stateless and safe for concurrent use.
package sanitizer
