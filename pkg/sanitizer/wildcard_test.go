package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/kit/pkg/sanitizer"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern     string
		input       string
		insensitive bool
		want        bool
	}{
		{pattern: "*", input: "", want: true},
		{pattern: "*", input: "anything/at/all", want: true},
		{pattern: "a*c", input: "abbbc", want: true},
		{pattern: "a*c", input: "abbbd", want: false},
		{pattern: "a?c", input: "abc", want: true},
		{pattern: "a?c", input: "ac", want: false},
		{pattern: "*.txt", input: "notes.txt", want: true},
		{pattern: "*.txt", input: "notes.txt.bak", want: false},
		{pattern: "*b*b*", input: "abcbd", want: true},
		{pattern: "é?", input: "éa", want: true},
		{pattern: `a\*`, input: "a*", want: true},
		{pattern: `a\*`, input: "ab", want: false},
		{pattern: "ABC", input: "abc", want: false},
		{pattern: "ABC", input: "abc", insensitive: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"~"+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizer.Match(tt.pattern, tt.input, tt.insensitive))
		})
	}
}

func TestMatchAny(t *testing.T) {
	assert.True(t, sanitizer.MatchAny([]string{"x*", "a*"}, "abc", false))
	assert.False(t, sanitizer.MatchAny([]string{"x*", "y*"}, "abc", false))
	assert.False(t, sanitizer.MatchAny(nil, "abc", false))
}
