package kit

import (
	"sync"

	"github.com/dmitrymomot/kit/pkg/types"
)

// built caches types by expression. Entries are never evicted.
var built sync.Map // string -> *types.Type

// Type returns the type built from expr against the default registry. Types are
// built once per expression and shared afterwards, so registry entries used by
// an expression must be registered before its first use.
func Type(expr string) (*types.Type, error) {
	if t, ok := built.Load(expr); ok {
		return t.(*types.Type), nil
	}
	t, err := types.Build(expr, nil)
	if err != nil {
		return nil, err
	}
	actual, _ := built.LoadOrStore(expr, t)
	return actual.(*types.Type), nil
}

// MustType is like Type but panics when expr cannot be built.
func MustType(expr string) *types.Type {
	t, err := Type(expr)
	if err != nil {
		panic(err)
	}
	return t
}

// Cast processes value with the type of expr and returns the result. Validation
// failures are *types.CastError values.
func Cast(expr string, value any, opts ...types.ProcessOption) (any, error) {
	t, err := Type(expr)
	if err != nil {
		return nil, err
	}
	return t.Cast(value, opts...)
}

// Coerce processes *value in place with the type of expr.
func Coerce(expr string, value *any, opts ...types.ProcessOption) error {
	t, err := Type(expr)
	if err != nil {
		return err
	}
	return t.Coerce(value, opts...)
}

// CastAs casts value with the type of expr and converts the result to T.
func CastAs[T any](expr string, value any, opts ...types.ProcessOption) (T, error) {
	t, err := Type(expr)
	if err != nil {
		var zero T
		return zero, err
	}
	return types.CastAs[T](t, value, opts...)
}

// Valid reports whether value is accepted by the type of expr. An expression
// that cannot be built accepts nothing.
func Valid(expr string, value any, opts ...types.ProcessOption) bool {
	t, err := Type(expr)
	if err != nil {
		return false
	}
	v := value
	return t.Process(&v, opts...) == nil
}
