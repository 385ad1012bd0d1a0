package mutator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/kit/pkg/fault"
	"github.com/dmitrymomot/kit/pkg/sanitizer"
	"github.com/dmitrymomot/kit/pkg/text"
)

// TruncateOptions configure Truncate.
type TruncateOptions = sanitizer.TruncateOptions

// Trim removes chars (whitespace when empty) from both ends of a string.
func Trim(chars string) Mutator {
	return Func(func(value *any) *fault.Error {
		s, err := stringOf(*value)
		if err != nil {
			return err
		}
		*value = sanitizer.TrimChars(s, chars)
		return nil
	})
}

// Lowercase converts a string to lower case.
func Lowercase(unicode bool) Mutator {
	return Func(func(value *any) *fault.Error {
		s, err := stringOf(*value)
		if err != nil {
			return err
		}
		*value = sanitizer.ToLower(s, unicode)
		return nil
	})
}

// Uppercase converts a string to upper case.
func Uppercase(unicode bool) Mutator {
	return Func(func(value *any) *fault.Error {
		s, err := stringOf(*value)
		if err != nil {
			return err
		}
		*value = sanitizer.ToUpper(s, unicode)
		return nil
	})
}

// Slug rewrites a string into lowercase ASCII words joined by sep. A positive
// maxLength limits the result in bytes.
func Slug(sep string, maxLength int) Mutator {
	return Func(func(value *any) *fault.Error {
		s, err := stringOf(*value)
		if err != nil {
			return err
		}
		*value = sanitizer.Slug(s, sep, maxLength)
		return nil
	})
}

// Length requires a string of exactly n bytes, or code points in unicode mode.
func Length(n int, unicode bool) Mutator {
	return lengthCheck(n, unicode, "length.exact", func(l int) bool { return l == n },
		"The given value must have exactly {{length}} character.",
		"The given value must have exactly {{length}} characters.")
}

// MinLength requires a string of at least n bytes or code points.
func MinLength(n int, unicode bool) Mutator {
	return lengthCheck(n, unicode, "length.minimum", func(l int) bool { return l >= n },
		"The given value must have at least {{length}} character.",
		"The given value must have at least {{length}} characters.")
}

// MaxLength requires a string of at most n bytes or code points.
func MaxLength(n int, unicode bool) Mutator {
	return lengthCheck(n, unicode, "length.maximum", func(l int) bool { return l <= n },
		"The given value must have at most {{length}} character.",
		"The given value must have at most {{length}} characters.")
}

func lengthCheck(n int, unicode bool, name string, ok func(int) bool, singular, plural string) Mutator {
	return Func(func(value *any) *fault.Error {
		s, err := stringOf(*value)
		if err != nil {
			return err
		}
		l := sanitizer.Length(s, unicode)
		if ok(l) {
			return nil
		}
		t := text.New(singular).
			SetPluralString(text.EndUser, plural).
			SetPluralNumber(float64(n)).
			SetPluralPlaceholder("length").
			SetString(text.Technical, "Length {{actual}} violates the limit of {{length}}.").
			SetParameter("actual", l).
			SetDomain(Domain)
		return fault.New(name).WithText(t).WithData(text.Technical, l)
	})
}

// Truncate shortens strings longer than n.
func Truncate(n int, opts TruncateOptions) Mutator {
	return Func(func(value *any) *fault.Error {
		s, err := stringOf(*value)
		if err != nil {
			return err
		}
		*value = sanitizer.Truncate(s, n, opts)
		return nil
	})
}

// Wildcards requires a string to match at least one of patterns ('*' and '?').
// With negate the string must match none of them.
func Wildcards(patterns []string, insensitive, negate bool) Mutator {
	return Func(func(value *any) *fault.Error {
		s, err := stringOf(*value)
		if err != nil {
			return err
		}
		if sanitizer.MatchAny(patterns, s, insensitive) != negate {
			return nil
		}
		t := text.New(message(negate,
			"The given value must match the following wildcard: {{wildcards}}.",
			"The given value must not match the following wildcard: {{wildcards}}.")).
			SetPluralString(text.EndUser, message(negate,
				"The given value must match one of the following wildcards: {{wildcards}}.",
				"The given value must not match any of the following wildcards: {{wildcards}}.")).
			SetPluralNumber(float64(len(patterns))).
			SetParameter("wildcards", patterns).
			SetPlaceholderFlags("wildcards", text.FlagQuote).
			SetDomain(Domain)
		return fault.New("wildcards.mismatch").WithText(t)
	})
}

// Pattern requires a string to match at least one regular expression.
// With negate the string must match none of them.
func Pattern(patterns []string, negate bool) (Mutator, error) {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("%w: pattern %q: %w", ErrInvalidMutator, p, err)
		}
		res = append(res, re)
	}

	return Func(func(value *any) *fault.Error {
		s, err := stringOf(*value)
		if err != nil {
			return err
		}
		matched := false
		for _, re := range res {
			if re.MatchString(s) {
				matched = true
				break
			}
		}
		if matched != negate {
			return nil
		}
		t := text.New(message(negate,
			"The given value has an invalid format.",
			"The given value has a forbidden format.")).
			SetString(text.Technical, message(negate,
				"The given value must match {{patterns}}.",
				"The given value must not match {{patterns}}.")).
			SetParameter("patterns", patterns).
			SetPlaceholderFlags("patterns", text.FlagQuote).
			SetDomain(Domain)
		return fault.New("pattern.mismatch").WithText(t)
	}), nil
}

// NonEmpty rejects empty strings and empty arrays.
func NonEmpty() Mutator {
	return Func(func(value *any) *fault.Error {
		if s, ok := (*value).(string); ok {
			if s == "" {
				return newError("non_empty.empty", "The given value must not be empty.")
			}
			return nil
		}
		n, ok := countOf(*value)
		if !ok {
			return unsupported(*value)
		}
		if n == 0 {
			return newError("non_empty.empty", "The given value must not be empty.")
		}
		return nil
	})
}

// UUID requires a UUID string and rewrites it in canonical lower-case form.
func UUID(noDashes bool) Mutator {
	return Func(func(value *any) *fault.Error {
		s, err := stringOf(*value)
		if err != nil {
			return err
		}
		id, perr := uuid.Parse(strings.TrimSpace(s))
		if perr != nil {
			return newError("uuid.invalid", "The given value must be a UUID.").WithCause(perr)
		}
		out := id.String()
		if noDashes {
			out = strings.ReplaceAll(out, "-", "")
		}
		*value = out
		return nil
	})
}

func stringOf(v any) (string, *fault.Error) {
	s, ok := v.(string)
	if !ok {
		return "", unsupported(v)
	}
	return s, nil
}

func unsupported(v any) *fault.Error {
	t := text.New("The given value cannot be processed.").
		SetString(text.Internal, "Mutator cannot process a value of type {{type}}.").
		SetParameter("type", fmt.Sprintf("%T", v)).
		SetDomain(Domain)
	return fault.New("mutator.unsupported").WithText(t)
}
