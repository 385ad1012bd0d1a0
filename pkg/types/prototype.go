package types

import (
	"slices"

	"github.com/dmitrymomot/kit/pkg/collection"
	"github.com/dmitrymomot/kit/pkg/fault"
	"github.com/dmitrymomot/kit/pkg/mutator"
	"github.com/dmitrymomot/kit/pkg/property"
	"github.com/dmitrymomot/kit/pkg/text"
)

// Domain is the localisation domain of type messages.
const Domain = "kit/types"

// Prototype is a type variant: it validates and coerces values of one kind.
// Implementations must be safe for concurrent use and keep no state between calls.
type Prototype interface {
	// Name returns the type expression the prototype represents.
	Name() string
	// Process validates *value, rewriting it to its canonical form on success.
	Process(value *any, env Env) *fault.Error
}

// Textifier is implemented by prototypes that render their values as text.
// Returning a nil text without error falls back to the default rendering.
type Textifier interface {
	Textify(value any, env Env) (*text.Text, error)
}

// MutatorProducer is implemented by prototypes that provide their own mutators.
// The boolean result reports whether name is known to the prototype.
type MutatorProducer interface {
	ProduceMutator(name string, props property.Map) (mutator.Mutator, bool, error)
}

// Arrayable values are accepted by array types.
type Arrayable interface {
	ToArray() *collection.Dictionary
}

// Integerable values are accepted by number types as integers.
type Integerable interface {
	ToInteger() int64
}

// Floatable values are accepted by number types as floats.
type Floatable interface {
	ToFloat() float64
}

// ResourceTyper values are accepted by resource types.
type ResourceTyper interface {
	ResourceType() string
}

// Builder creates component and structure instances from properties.
type Builder interface {
	Build(props property.Map) (any, error)
}

// BuilderFunc adapts a function to the Builder interface.
type BuilderFunc func(props property.Map) (any, error)

// Build calls f.
func (f BuilderFunc) Build(props property.Map) (any, error) {
	return f(props)
}

func invalid(name, message string) *fault.Error {
	return fault.New(name).WithText(text.New(message).SetDomain(Domain))
}

func produceFrom(allowed []string, name string, props property.Map) (mutator.Mutator, bool, error) {
	if !slices.Contains(allowed, name) {
		return nil, false, nil
	}
	m, err := mutator.Build(name, props)
	return m, true, err
}
