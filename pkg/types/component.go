package types

import (
	"reflect"

	"github.com/dmitrymomot/kit/pkg/collection"
	"github.com/dmitrymomot/kit/pkg/fault"
	"github.com/dmitrymomot/kit/pkg/property"
	"github.com/dmitrymomot/kit/pkg/text"
)

// Component accepts instances of a registered component. Outside strict mode a
// property map or nil is turned into an instance by the component builder.
type Component struct {
	Constructor Constructor
}

// Name implements Prototype.
func (c Component) Name() string { return c.Constructor.Name }

// Process implements Prototype.
func (c Component) Process(value *any, env Env) *fault.Error {
	return construct(c.Constructor, "component", false, value, env)
}

// Structure accepts instances of a registered structure. Outside strict mode
// property maps, *collection.Dictionary and Arrayable values are built into one.
type Structure struct {
	Constructor Constructor
}

// Name implements Prototype.
func (s Structure) Name() string { return s.Constructor.Name }

// Process implements Prototype.
func (s Structure) Process(value *any, env Env) *fault.Error {
	return construct(s.Constructor, "structure", true, value, env)
}

func construct(ctor Constructor, kind string, structure bool, value *any, env Env) *fault.Error {
	if isInstance(*value, ctor.Type) {
		return nil
	}
	if env.Strict {
		return constructError(kind, ctor.Name, true)
	}

	props, ok := toProperties(*value, structure)
	if !ok {
		return constructError(kind, ctor.Name, false)
	}
	inst, err := ctor.Builder.Build(props)
	if err != nil {
		t := text.New("Invalid {{name}} "+kind+":").
			SetParameter("name", ctor.Name).
			SetPlaceholderFlags("name", text.FlagQuote).
			SetDomain(Domain)
		if child, ok := fault.As(err); ok && child.HasText() {
			t.AppendText(child.Text())
		} else {
			t.AppendText(text.New("").SetString(text.Technical, err.Error()).SetLocalize(false))
		}
		return fault.New(kind + ".build_failed").WithText(t).WithCause(err)
	}
	if !isInstance(inst, ctor.Type) {
		return constructError(kind, ctor.Name, false)
	}
	*value = inst
	return nil
}

func isInstance(v any, t reflect.Type) bool {
	if v == nil {
		return false
	}
	vt := reflect.TypeOf(v)
	return vt == t || vt.AssignableTo(t)
}

func toProperties(v any, structure bool) (property.Map, bool) {
	switch val := v.(type) {
	case nil:
		return property.Map{}, true
	case property.Map:
		return val, true
	case map[string]any:
		return property.Map(val), true
	}
	if !structure {
		return nil, false
	}

	var d *collection.Dictionary
	switch val := v.(type) {
	case *collection.Dictionary:
		d = val
	case Arrayable:
		d = val.ToArray()
	}
	if d == nil {
		return nil, false
	}
	props := make(property.Map, d.Len())
	for k, item := range d.All() {
		key, ok := k.(string)
		if !ok {
			return nil, false
		}
		props[key] = item
	}
	return props, true
}

func constructError(kind, name string, strict bool) *fault.Error {
	msg := "Only a {{name}} " + kind + " is allowed."
	if strict {
		msg = "Only a {{name}} " + kind + " instance is strictly allowed."
	}
	t := text.New(msg).
		SetParameter("name", name).
		SetPlaceholderFlags("name", text.FlagQuote).
		SetDomain(Domain)
	return fault.New(kind + ".invalid").WithText(t)
}
