package mutator

import (
	"github.com/dmitrymomot/kit/pkg/fault"
	"github.com/dmitrymomot/kit/pkg/text"
)

// Domain is the localisation domain of mutator messages.
const Domain = "kit/mutators"

// Mutator transforms or constrains an already validated value.
// On failure the value must be left unchanged.
type Mutator interface {
	Process(value *any) *fault.Error
}

// Func adapts a function to the Mutator interface.
type Func func(value *any) *fault.Error

// Process calls f.
func (f Func) Process(value *any) *fault.Error {
	return f(value)
}

// Chain runs mutators in order and stops at the first failure. The value is only
// updated when every mutator succeeds.
type Chain []Mutator

// Process implements Mutator.
func (c Chain) Process(value *any) *fault.Error {
	v := *value
	for _, m := range c {
		if err := m.Process(&v); err != nil {
			return err
		}
	}
	*value = v
	return nil
}

func newError(name, message string) *fault.Error {
	return fault.New(name).WithText(text.New(message).SetDomain(Domain))
}

// message picks the positive or negated template.
func message(negate bool, positive, negated string) string {
	if negate {
		return negated
	}
	return positive
}
