package sanitizer

import (
	"strings"
	"unicode/utf8"
)

// Match reports whether s matches pattern, where '*' matches any run of characters
// (including none) and '?' matches exactly one character. A backslash escapes the
// next pattern character.
func Match(pattern, s string, insensitive bool) bool {
	if insensitive {
		pattern = strings.ToLower(pattern)
		s = strings.ToLower(s)
	}

	var (
		p, i         int
		starP, starI = -1, 0
	)
	for i < len(s) {
		if p < len(pattern) {
			pc, psize := utf8.DecodeRuneInString(pattern[p:])
			sc, ssize := utf8.DecodeRuneInString(s[i:])
			switch {
			case pc == '*':
				starP, starI = p, i
				p += psize
				continue
			case pc == '?':
				p += psize
				i += ssize
				continue
			case pc == '\\' && p+psize < len(pattern):
				ec, esize := utf8.DecodeRuneInString(pattern[p+psize:])
				if ec == sc {
					p += psize + esize
					i += ssize
					continue
				}
			case pc == sc:
				p += psize
				i += ssize
				continue
			}
		}
		if starP < 0 {
			return false
		}
		// Backtrack: let the last '*' absorb one more character.
		_, ssize := utf8.DecodeRuneInString(s[starI:])
		starI += ssize
		i = starI
		p = starP + 1
	}
	for p < len(pattern) && pattern[p] == '*' {
		p++
	}
	return p == len(pattern)
}

// MatchAny reports whether s matches at least one pattern.
func MatchAny(patterns []string, s string, insensitive bool) bool {
	for _, pattern := range patterns {
		if Match(pattern, s, insensitive) {
			return true
		}
	}
	return false
}
