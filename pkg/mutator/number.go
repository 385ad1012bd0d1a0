package mutator

import (
	"fmt"
	"math"

	"github.com/dmitrymomot/kit/pkg/fault"
	"github.com/dmitrymomot/kit/pkg/text"
)

// RangeOptions configure Range. A nil bound is open.
type RangeOptions struct {
	Minimum      *float64
	Maximum      *float64
	MinExclusive bool
	MaxExclusive bool
	Negate       bool
}

func (r RangeOptions) contains(f float64) bool {
	if r.Minimum != nil {
		if r.MinExclusive && f <= *r.Minimum || !r.MinExclusive && f < *r.Minimum {
			return false
		}
	}
	if r.Maximum != nil {
		if r.MaxExclusive && f >= *r.Maximum || !r.MaxExclusive && f > *r.Maximum {
			return false
		}
	}
	return true
}

// Range requires a number within the configured bounds, or outside them with Negate.
func Range(r RangeOptions) Mutator {
	return Func(func(value *any) *fault.Error {
		f, err := numberOf(*value)
		if err != nil {
			return err
		}
		if r.contains(f) != r.Negate {
			return nil
		}
		return rangeError(r)
	})
}

// Minimum requires a number greater than or equal to (or strictly greater than) min.
func Minimum(min float64, exclusive bool) Mutator {
	return Range(RangeOptions{Minimum: &min, MinExclusive: exclusive})
}

// Maximum requires a number less than or equal to (or strictly less than) max.
func Maximum(max float64, exclusive bool) Mutator {
	return Range(RangeOptions{Maximum: &max, MaxExclusive: exclusive})
}

func rangeError(r RangeOptions) *fault.Error {
	var (
		name = "range.out_of_range"
		msg  string
	)
	switch {
	case r.Minimum != nil && r.Maximum != nil:
		msg = message(r.Negate,
			"The given value must be between {{minimum}} and {{maximum}}.",
			"The given value must not be between {{minimum}} and {{maximum}}.")
	case r.Minimum != nil:
		name = "range.minimum"
		switch {
		case r.MinExclusive:
			msg = message(r.Negate, "The given value must be greater than {{minimum}}.",
				"The given value must be less than or equal to {{minimum}}.")
		default:
			msg = message(r.Negate, "The given value must be greater than or equal to {{minimum}}.",
				"The given value must be less than {{minimum}}.")
		}
	case r.Maximum != nil:
		name = "range.maximum"
		switch {
		case r.MaxExclusive:
			msg = message(r.Negate, "The given value must be less than {{maximum}}.",
				"The given value must be greater than or equal to {{maximum}}.")
		default:
			msg = message(r.Negate, "The given value must be less than or equal to {{maximum}}.",
				"The given value must be greater than {{maximum}}.")
		}
	default:
		msg = "The given value is out of range."
	}

	t := text.New(msg).SetDomain(Domain)
	if r.Minimum != nil {
		t.SetParameter("minimum", *r.Minimum)
	}
	if r.Maximum != nil {
		t.SetParameter("maximum", *r.Maximum)
	}
	return fault.New(name).WithText(t)
}

// Positive requires a number greater than zero, or not greater with negate.
func Positive(negate bool) Mutator {
	return sign(negate, "positive", func(f float64) bool { return f > 0 })
}

// Negative requires a number less than zero, or not less with negate.
func Negative(negate bool) Mutator {
	return sign(negate, "negative", func(f float64) bool { return f < 0 })
}

func sign(negate bool, name string, ok func(float64) bool) Mutator {
	return Func(func(value *any) *fault.Error {
		f, err := numberOf(*value)
		if err != nil {
			return err
		}
		if ok(f) != negate {
			return nil
		}
		return newError("number."+name, message(negate,
			"The given value must be "+name+".",
			"The given value must not be "+name+"."))
	})
}

// Multiple requires a number that is a multiple of n.
func Multiple(n float64, negate bool) (Mutator, error) {
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, fmt.Errorf("%w: multiple must be a finite non-zero number", ErrInvalidMutator)
	}
	return Func(func(value *any) *fault.Error {
		f, err := numberOf(*value)
		if err != nil {
			return err
		}
		q := f / n
		if (math.Abs(q-math.Round(q)) < 1e-9) != negate {
			return nil
		}
		t := text.New(message(negate,
			"The given value must be a multiple of {{multiple}}.",
			"The given value must not be a multiple of {{multiple}}.")).
			SetParameter("multiple", n).
			SetDomain(Domain)
		return fault.New("number.multiple").WithText(t)
	}), nil
}

func numberOf(v any) (float64, *fault.Error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	}
	return 0, unsupported(v)
}
