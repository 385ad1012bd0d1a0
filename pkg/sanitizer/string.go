package sanitizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimChars removes the given characters from both ends of s.
// An empty set trims whitespace.
func TrimChars(s, chars string) string {
	if chars == "" {
		return strings.TrimSpace(s)
	}
	return strings.Trim(s, chars)
}

// ToLower lowercases s. Byte mode only folds ASCII letters.
func ToLower(s string, unicodeAware bool) string {
	if unicodeAware {
		return cases.Lower(language.Und).String(s)
	}
	return mapASCII(s, 'A', 'Z', 'a'-'A')
}

// ToUpper uppercases s. Byte mode only folds ASCII letters.
func ToUpper(s string, unicodeAware bool) string {
	if unicodeAware {
		return cases.Upper(language.Und).String(s)
	}
	return mapASCII(s, 'a', 'z', 'A'-'a')
}

func mapASCII(s string, lo, hi byte, delta int) string {
	b := []byte(s)
	for i, c := range b {
		if c >= lo && c <= hi {
			b[i] = byte(int(c) + delta)
		}
	}
	return string(b)
}

// Length returns the length of s in bytes or, in unicode mode, in code points.
func Length(s string, unicodeAware bool) int {
	if unicodeAware {
		return utf8.RuneCountInString(s)
	}
	return len(s)
}

// Prefix returns the first n bytes or code points of s.
func Prefix(s string, n int, unicodeAware bool) string {
	if n <= 0 {
		return ""
	}
	if !unicodeAware {
		if n >= len(s) {
			return s
		}
		return s[:n]
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// TruncateOptions control Truncate.
type TruncateOptions struct {
	// Ellipsis is appended when s is shortened. Its length counts towards the limit.
	Ellipsis string
	// KeepWords avoids cutting through a word.
	KeepWords bool
	// KeepSentences cuts after the last complete sentence when there is one.
	KeepSentences bool
	// Unicode measures lengths in code points instead of bytes.
	Unicode bool
}

// Truncate shortens s to at most length bytes or code points.
func Truncate(s string, length int, opts TruncateOptions) string {
	if Length(s, opts.Unicode) <= length {
		return s
	}

	ellipsis := opts.Ellipsis
	limit := length - Length(ellipsis, opts.Unicode)
	if limit <= 0 {
		return Prefix(s, length, opts.Unicode)
	}

	cut := Prefix(s, limit, opts.Unicode)
	rest := s[len(cut):]

	if opts.KeepSentences {
		if i := lastSentenceEnd(cut, rest); i > 0 {
			return cut[:i]
		}
	}
	if opts.KeepWords && !startsWithSpace(rest) {
		if i := strings.LastIndexFunc(cut, unicode.IsSpace); i > 0 {
			cut = cut[:i]
		}
	}
	return strings.TrimRightFunc(cut, unicode.IsSpace) + ellipsis
}

// lastSentenceEnd returns the index just past the last sentence terminator in cut
// that is followed by whitespace (or by the end of the text).
func lastSentenceEnd(cut, rest string) int {
	for i := len(cut) - 1; i >= 0; i-- {
		switch cut[i] {
		case '.', '!', '?':
			next := cut[i+1:]
			if next == "" {
				next = rest
			}
			if next == "" || startsWithSpace(next) {
				return i + 1
			}
		}
	}
	return -1
}

func startsWithSpace(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && unicode.IsSpace(r)
}
