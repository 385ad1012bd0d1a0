package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/kit/pkg/sanitizer"
)

func TestTrimChars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		chars    string
		expected string
	}{
		{name: "whitespace by default", input: "  hello \n", expected: "hello"},
		{name: "custom set", input: "--hello--", chars: "-", expected: "hello"},
		{name: "keeps inner chars", input: "/a/b/", chars: "/", expected: "a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.TrimChars(tt.input, tt.chars))
		})
	}
	assert.Equal(t, "x", sanitizer.Trim(" x "))
}

func TestCase(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		unicode bool
		lower   string
		upper   string
	}{
		{name: "ascii", input: "Hello", lower: "hello", upper: "HELLO"},
		{name: "byte mode leaves non-ascii", input: "Àé", lower: "Àé", upper: "Àé"},
		{name: "unicode mode folds non-ascii", input: "Àé", unicode: true, lower: "àé", upper: "ÀÉ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.lower, sanitizer.ToLower(tt.input, tt.unicode))
			assert.Equal(t, tt.upper, sanitizer.ToUpper(tt.input, tt.unicode))
		})
	}
}

func TestLengthAndPrefix(t *testing.T) {
	assert.Equal(t, 5, sanitizer.Length("été", false))
	assert.Equal(t, 3, sanitizer.Length("été", true))

	assert.Equal(t, "ét", sanitizer.Prefix("été", 2, true))
	assert.Equal(t, "é", sanitizer.Prefix("été", 2, false))
	assert.Equal(t, "abc", sanitizer.Prefix("abc", 10, true))
	assert.Equal(t, "", sanitizer.Prefix("abc", 0, false))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		length   int
		opts     sanitizer.TruncateOptions
		expected string
	}{
		{
			name:     "short input unchanged",
			input:    "short",
			length:   10,
			expected: "short",
		},
		{
			name:     "hard cut",
			input:    "abcdefghij",
			length:   4,
			expected: "abcd",
		},
		{
			name:     "ellipsis counts towards length",
			input:    "abcdefghij",
			length:   6,
			opts:     sanitizer.TruncateOptions{Ellipsis: "..."},
			expected: "abc...",
		},
		{
			name:     "ellipsis longer than limit is dropped",
			input:    "abcdefghij",
			length:   2,
			opts:     sanitizer.TruncateOptions{Ellipsis: "..."},
			expected: "ab",
		},
		{
			name:     "keeps words at boundary",
			input:    "The quick brown fox",
			length:   12,
			opts:     sanitizer.TruncateOptions{Ellipsis: "...", KeepWords: true},
			expected: "The quick...",
		},
		{
			name:     "backs off mid word",
			input:    "The quick brown fox",
			length:   10,
			opts:     sanitizer.TruncateOptions{Ellipsis: "...", KeepWords: true},
			expected: "The...",
		},
		{
			name:     "keeps sentences",
			input:    "Hello world. This is long.",
			length:   20,
			opts:     sanitizer.TruncateOptions{Ellipsis: "...", KeepSentences: true},
			expected: "Hello world.",
		},
		{
			name:     "sentence fallback to words",
			input:    "No sentence end here at all",
			length:   14,
			opts:     sanitizer.TruncateOptions{Ellipsis: "…", KeepSentences: true, KeepWords: true, Unicode: true},
			expected: "No sentence…",
		},
		{
			name:     "unicode counts code points",
			input:    "ééééé",
			length:   3,
			opts:     sanitizer.TruncateOptions{Unicode: true},
			expected: "ééé",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.Truncate(tt.input, tt.length, tt.opts))
		})
	}
}
