package types

import (
	"fmt"
	"math"
	"reflect"

	"github.com/dmitrymomot/kit/pkg/fault"
)

// CastError is returned by Cast when the value does not satisfy the type.
type CastError struct {
	Type  string
	Value any
	Fault *fault.Error
}

// Error implements error.
func (e *CastError) Error() string {
	return fmt.Sprintf("cannot cast %s to %s: %s", typeName(e.Value), e.Type, e.Fault.Error())
}

// Unwrap exposes ErrCastFailed and the validation error.
func (e *CastError) Unwrap() []error {
	return []error{ErrCastFailed, e.Fault}
}

// CoercionError is returned by Coerce when the value does not satisfy the type.
type CoercionError struct {
	Type  string
	Value any
	Fault *fault.Error
}

// Error implements error.
func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot coerce %s into %s: %s", typeName(e.Value), e.Type, e.Fault.Error())
}

// Unwrap exposes ErrCoercionFailed and the validation error.
func (e *CoercionError) Unwrap() []error {
	return []error{ErrCoercionFailed, e.Fault}
}

// CastAs casts value with t and converts the result to T. Numeric results convert
// between numeric kinds and string results between string kinds.
func CastAs[T any](t *Type, value any, opts ...ProcessOption) (T, error) {
	var zero T
	v, err := t.Cast(value, opts...)
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	if out, ok := v.(T); ok {
		return out, nil
	}

	rv := reflect.ValueOf(v)
	target := reflect.TypeFor[T]()
	if convertible(rv.Type(), target) {
		out := rv.Convert(target)
		if !lossless(rv, out) {
			return zero, fmt.Errorf("%w: %v does not fit into %s", ErrCastFailed, v, target)
		}
		return out.Interface().(T), nil
	}
	return zero, fmt.Errorf("%w: %s is not %s", ErrCastFailed, typeName(v), target)
}

func convertible(from, to reflect.Type) bool {
	if !from.ConvertibleTo(to) {
		return false
	}
	return isNumericKind(from.Kind()) && isNumericKind(to.Kind()) ||
		from.Kind() == reflect.String && to.Kind() == reflect.String
}

// lossless reports whether out holds the same number as in. Float targets may
// round but must not overflow; integer targets must round-trip exactly.
func lossless(in, out reflect.Value) bool {
	if !isNumericKind(in.Kind()) {
		return true
	}
	if out.CanFloat() {
		if in.CanFloat() && math.IsInf(out.Float(), 0) {
			return math.IsInf(in.Float(), 0)
		}
		return true
	}
	if out.CanUint() && (in.CanInt() && in.Int() < 0 || in.CanFloat() && in.Float() < 0) {
		return false
	}
	return out.Convert(in.Type()).Equal(in)
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
