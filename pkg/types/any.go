package types

import (
	"strings"

	"github.com/dmitrymomot/kit/pkg/fault"
	"github.com/dmitrymomot/kit/pkg/text"
)

// Any accepts every value when it has no members. Otherwise it is a union: members
// are tried in order, the first success wins and, when all fail, the error of the
// last member is returned.
type Any struct {
	Members []*Type
}

// Name implements Prototype.
func (a Any) Name() string {
	if len(a.Members) == 0 {
		return "any"
	}
	names := make([]string, len(a.Members))
	for i, m := range a.Members {
		names[i] = m.String()
	}
	return strings.Join(names, "|")
}

// Process implements Prototype.
func (a Any) Process(value *any, env Env) *fault.Error {
	if len(a.Members) == 0 {
		return nil
	}
	var last *fault.Error
	for _, m := range a.Members {
		v := *value
		err := m.process(&v, env)
		if err == nil {
			*value = v
			return nil
		}
		last = err
	}
	return last
}

// Textify implements Textifier using the first member accepting the value.
func (a Any) Textify(value any, env Env) (*text.Text, error) {
	for _, m := range a.Members {
		if t, err := m.textify(value, env); err == nil {
			return t, nil
		}
	}
	return nil, nil
}
