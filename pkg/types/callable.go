package types

import (
	"reflect"

	"github.com/dmitrymomot/kit/pkg/fault"
)

// Callable accepts functions. Outside strict mode the name of a function registered
// with RegisterFunction resolves to it. A Closure only accepts function values.
type Callable struct {
	Closure  bool
	Registry *Registry
}

// Name implements Prototype.
func (c Callable) Name() string {
	if c.Closure {
		return "closure"
	}
	return "callable"
}

// Process implements Prototype.
func (c Callable) Process(value *any, env Env) *fault.Error {
	if rv := reflect.ValueOf(*value); rv.Kind() == reflect.Func && !rv.IsNil() {
		return nil
	}
	if name, ok := (*value).(string); ok && !c.Closure && !env.Strict {
		if fn, found := registryOrDefault(c.Registry).Function(name); found {
			*value = fn
			return nil
		}
	}
	if c.Closure {
		return invalid("callable.invalid", "Only a closure is allowed.")
	}
	return invalid("callable.invalid", "Only a callable is allowed.")
}
