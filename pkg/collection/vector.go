package collection

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// Vector is an ordered sequence of values.
type Vector struct {
	values []any
	opts   options
}

// NewVector creates an empty vector.
func NewVector(opts ...Option) *Vector {
	return &Vector{opts: buildOptions(opts)}
}

// Append adds values at the end. On failure nothing is appended.
func (v *Vector) Append(values ...any) error {
	evaluated := make([]any, 0, len(values))
	for i, value := range values {
		ev, err := evaluate(v.opts.valueEvaluator, value)
		if err != nil {
			return errors.Join(fmt.Errorf("%w at index %d", ErrInvalidValue, len(v.values)+i), err)
		}
		evaluated = append(evaluated, ev)
	}
	v.values = append(v.values, evaluated...)
	return nil
}

// Set replaces the value at index.
func (v *Vector) Set(index int, value any) error {
	if index < 0 || index >= len(v.values) {
		return fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}
	ev, err := evaluate(v.opts.valueEvaluator, value)
	if err != nil {
		return errors.Join(fmt.Errorf("%w at index %d", ErrInvalidValue, index), err)
	}
	v.values[index] = ev
	return nil
}

// Get returns the value at index.
func (v *Vector) Get(index int) (any, bool) {
	if index < 0 || index >= len(v.values) {
		return nil, false
	}
	return v.values[index], true
}

// Len returns the number of values.
func (v *Vector) Len() int {
	if v == nil {
		return 0
	}
	return len(v.values)
}

// Values returns a copy of the stored values.
func (v *Vector) Values() []any {
	return slices.Clone(v.values)
}

// All iterates over index/value pairs.
func (v *Vector) All() iter.Seq2[int, any] {
	return slices.All(v.values)
}

// ToArray converts the vector into a position-keyed dictionary.
func (v *Vector) ToArray() *Dictionary {
	d := NewDictionary()
	for i, value := range v.values {
		d.keys = append(d.keys, int64(i))
		d.values[int64(i)] = value
	}
	return d
}
