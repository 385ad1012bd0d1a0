package types

import (
	"github.com/dmitrymomot/kit/pkg/fault"
	"github.com/dmitrymomot/kit/pkg/text"
)

// Enumeration accepts the cases of a registered Enum. In the internal context a
// case value or, outside strict mode, a case name is accepted; other contexts
// accept case names only. Names resolve to their values.
type Enumeration struct {
	Label string
	Enum  *Enum
}

// Name implements Prototype.
func (e Enumeration) Name() string { return e.Label }

// Process implements Prototype.
func (e Enumeration) Process(value *any, env Env) *fault.Error {
	if env.Context == ContextInternal {
		if name, ok := e.Enum.Name(*value); ok {
			*value, _ = e.Enum.Value(name)
			return nil
		}
		if env.Strict {
			return e.error()
		}
	}
	if name, ok := (*value).(string); ok {
		if v, found := e.Enum.Value(name); found {
			*value = v
			return nil
		}
	}
	return e.error()
}

// Textify implements Textifier with the case name.
func (e Enumeration) Textify(value any, _ Env) (*text.Text, error) {
	name, _ := e.Enum.Name(value)
	return text.Raw(name), nil
}

func (e Enumeration) error() *fault.Error {
	names := e.Enum.Names()
	t := text.New("Only the following value is allowed: {{names}}.").
		SetPluralString(text.EndUser, "Only one of the following values is allowed: {{names}}.").
		SetPluralNumber(float64(len(names))).
		SetParameter("names", names).
		SetPlaceholderFlags("names", text.FlagQuote).
		SetDomain(Domain)
	return fault.New("enumeration.invalid").WithText(t)
}
