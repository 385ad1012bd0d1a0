package types

import (
	"strings"

	"github.com/dmitrymomot/kit/pkg/fault"
	"github.com/dmitrymomot/kit/pkg/text"
)

// Boolean accepts booleans. Outside strict mode it also accepts the strings
// 1, t, true, on, yes and 0, f, false, off, no in any letter case, numeric 1 and 0,
// and in the internal context any value by its truthiness.
type Boolean struct{}

// Name implements Prototype.
func (Boolean) Name() string { return "boolean" }

// Process implements Prototype.
func (Boolean) Process(value *any, env Env) *fault.Error {
	if _, ok := (*value).(bool); ok {
		return nil
	}
	if env.Strict {
		return booleanError(true)
	}

	if s, ok := (*value).(string); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "1", "t", "true", "on", "yes":
			*value = true
			return nil
		case "0", "f", "false", "off", "no":
			*value = false
			return nil
		}
		return booleanError(false)
	}

	if env.Context == ContextInternal {
		*value = truthy(*value)
		return nil
	}
	if f, ok := numericValue(*value); ok && (f == 0 || f == 1) {
		*value = f == 1
		return nil
	}
	return booleanError(false)
}

// Textify implements Textifier.
func (Boolean) Textify(value any, _ Env) (*text.Text, error) {
	if value.(bool) {
		return text.New("yes").SetString(text.Technical, "true").SetDomain(Domain), nil
	}
	return text.New("no").SetString(text.Technical, "false").SetDomain(Domain), nil
}

func booleanError(strict bool) *fault.Error {
	if strict {
		return fault.New("boolean.invalid").WithText(
			text.New("Only a boolean value is strictly allowed.").SetDomain(Domain))
	}
	t := text.New("Only a boolean value is allowed.").
		SetString(text.Technical, "Only a boolean value is allowed, which may be given as "+
			"\"true\" or \"false\", \"1\" or \"0\", \"t\" or \"f\", \"on\" or \"off\", \"yes\" or \"no\".").
		SetDomain(Domain)
	return fault.New("boolean.invalid").WithText(t)
}
