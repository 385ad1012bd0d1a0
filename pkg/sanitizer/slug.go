package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// letters that do not decompose into a base letter plus marks.
var slugLetters = strings.NewReplacer(
	"ß", "ss", "æ", "ae", "Æ", "AE", "œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O", "ł", "l", "Ł", "L", "đ", "d", "Đ", "D", "þ", "th", "Þ", "TH",
)

// Slug turns s into lowercase ASCII words joined by sep. Letters lose their
// diacritics and any other character separates words. A positive maxLength
// limits the result in bytes, dropping whole words where possible.
func Slug(s, sep string, maxLength int) string {
	if sep == "" {
		sep = "-"
	}
	s = slugLetters.Replace(s)
	if plain, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn))), s); err == nil {
		s = plain
	}

	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})

	var b strings.Builder
	for _, w := range words {
		n := len(w)
		if b.Len() > 0 {
			n += len(sep)
		}
		if maxLength > 0 && b.Len()+n > maxLength {
			if b.Len() == 0 {
				b.WriteString(w[:maxLength])
			}
			break
		}
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(w)
	}
	return b.String()
}
