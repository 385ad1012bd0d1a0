package types

import (
	"fmt"

	"github.com/dmitrymomot/kit/pkg/fault"
	"github.com/dmitrymomot/kit/pkg/text"
)

// Text accepts *text.Text. Outside strict mode strings, fmt.Stringer values and
// scalars become texts that are not localised.
type Text struct{}

// Name implements Prototype.
func (Text) Name() string { return "text" }

// Process implements Prototype.
func (Text) Process(value *any, env Env) *fault.Error {
	if t, ok := (*value).(*text.Text); ok && t != nil {
		return nil
	}
	if !env.Strict {
		switch v := (*value).(type) {
		case *text.Text, nil:
		case fmt.Stringer:
			*value = text.Raw(v.String())
			return nil
		default:
			if s, ok := scalarString(v); ok {
				*value = text.Raw(s)
				return nil
			}
		}
	}
	return invalid("text.invalid", "Only a text is allowed.")
}

// Textify implements Textifier.
func (Text) Textify(value any, _ Env) (*text.Text, error) {
	return value.(*text.Text), nil
}
