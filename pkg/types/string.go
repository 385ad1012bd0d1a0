package types

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/dmitrymomot/kit/pkg/fault"
	"github.com/dmitrymomot/kit/pkg/mutator"
	"github.com/dmitrymomot/kit/pkg/property"
	"github.com/dmitrymomot/kit/pkg/text"
)

// String accepts strings. Outside strict mode it also stringifies fmt.Stringer
// values, numbers and booleans. With Unicode set, input that is not valid UTF-8 is
// decoded as ISO-8859-1, a leading byte order mark is dropped and []byte is accepted.
type String struct {
	Unicode bool
}

var stringMutators = []string{
	"length", "min_length", "max_length", "truncate", "trim", "lowercase", "uppercase",
	"wildcards", "pattern", "non_empty", "uuid",
}

// Name implements Prototype.
func (s String) Name() string {
	if s.Unicode {
		return "ustring"
	}
	return "string"
}

// Process implements Prototype.
func (s String) Process(value *any, env Env) *fault.Error {
	str, ok := (*value).(string)
	if !ok && !env.Strict {
		str, ok = s.stringify(*value)
	}
	if !ok {
		return stringError(env.Strict)
	}
	if s.Unicode {
		str = toUTF8(str)
	}
	*value = str
	return nil
}

func (s String) stringify(v any) (string, bool) {
	switch val := v.(type) {
	case fmt.Stringer:
		return val.String(), true
	case []byte:
		if s.Unicode {
			return string(val), true
		}
		return "", false
	case nil:
		return "", false
	}
	return scalarString(v)
}

// Textify implements Textifier.
func (String) Textify(value any, _ Env) (*text.Text, error) {
	return text.Raw(value.(string)), nil
}

// ProduceMutator implements MutatorProducer. String mutators inherit the Unicode flag.
func (s String) ProduceMutator(name string, props property.Map) (mutator.Mutator, bool, error) {
	if s.Unicode && !props.Has("unicode") {
		props = props.Without()
		props["unicode"] = true
	}
	return produceFrom(stringMutators, name, props)
}

// toUTF8 decodes non UTF-8 input as ISO-8859-1 and strips a byte order mark.
func toUTF8(s string) string {
	if !utf8.ValidString(s) {
		if decoded, err := charmap.ISO8859_1.NewDecoder().String(s); err == nil {
			s = decoded
		}
	}
	return strings.TrimPrefix(s, "\ufeff")
}

func stringError(strict bool) *fault.Error {
	if strict {
		return invalid("string.invalid", "Only a string of characters is strictly allowed.")
	}
	t := text.New("Only a string of characters is allowed.").
		SetString(text.Technical, "Only a string of characters is allowed, which may also be given "+
			"as a number, a boolean or a value with a String method.").
		SetDomain(Domain)
	return fault.New("string.invalid").WithText(t)
}
