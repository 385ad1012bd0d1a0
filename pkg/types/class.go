package types

import (
	"reflect"

	"github.com/dmitrymomot/kit/pkg/fault"
	"github.com/dmitrymomot/kit/pkg/text"
)

// Class accepts a registered class name or a reflect.Type and yields the registered
// name (or the reflect.Type when it is not registered). Outside strict mode any
// object is accepted as its class. Restriction limits the accepted classes to those
// equal to, assignable to or implementing it.
type Class struct {
	Restriction reflect.Type
	Registry    *Registry
}

// Name implements Prototype.
func (c Class) Name() string {
	return restrictedName("class", c.Restriction, c.Registry)
}

// Process implements Prototype.
func (c Class) Process(value *any, env Env) *fault.Error {
	reg := registryOrDefault(c.Registry)

	var t reflect.Type
	switch v := (*value).(type) {
	case string:
		t, _ = reg.Class(v)
	case reflect.Type:
		if v != nil && v.Kind() != reflect.Interface {
			t = v
		}
	case nil:
	default:
		if !env.Strict {
			t = reflect.TypeOf(v)
		}
	}
	if t == nil {
		return invalid("class.invalid", "Only a class is allowed.")
	}
	if !satisfies(t, c.Restriction) {
		return restrictionError("class.restricted", "Only a class compatible with {{class}} is allowed.", c.Restriction, reg)
	}
	*value = canonicalType(t, reg)
	return nil
}

// Interface accepts a registered interface name or an interface reflect.Type.
type Interface struct {
	Restriction reflect.Type
	Registry    *Registry
}

// Name implements Prototype.
func (i Interface) Name() string {
	return restrictedName("interface", i.Restriction, i.Registry)
}

// Process implements Prototype.
func (i Interface) Process(value *any, _ Env) *fault.Error {
	reg := registryOrDefault(i.Registry)

	var t reflect.Type
	switch v := (*value).(type) {
	case string:
		t, _ = reg.Interface(v)
	case reflect.Type:
		if v != nil && v.Kind() == reflect.Interface {
			t = v
		}
	}
	if t == nil {
		return invalid("interface.invalid", "Only an interface is allowed.")
	}
	if i.Restriction != nil && t != i.Restriction && !t.Implements(i.Restriction) {
		return restrictionError("interface.restricted", "Only an interface compatible with {{class}} is allowed.", i.Restriction, reg)
	}
	*value = canonicalType(t, reg)
	return nil
}

// Object accepts non-nil pointers and structs. Outside strict mode a registered
// class name is instantiated as a pointer to its zero value.
type Object struct {
	Restriction reflect.Type
	Registry    *Registry
}

// Name implements Prototype.
func (o Object) Name() string {
	return restrictedName("object", o.Restriction, o.Registry)
}

// Process implements Prototype.
func (o Object) Process(value *any, env Env) *fault.Error {
	reg := registryOrDefault(o.Registry)

	v := *value
	if name, ok := v.(string); ok && !env.Strict {
		if t, found := reg.Class(name); found {
			v = newInstance(t)
		}
	}
	if !isObject(v) {
		return invalid("object.invalid", "Only an object is allowed.")
	}
	if !satisfies(reflect.TypeOf(v), o.Restriction) {
		return restrictionError("object.restricted", "Only an object of class {{class}} is allowed.", o.Restriction, reg)
	}
	*value = v
	return nil
}

func isObject(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		return !rv.IsNil()
	case reflect.Struct:
		return true
	}
	return false
}

func newInstance(t reflect.Type) any {
	if t.Kind() == reflect.Pointer {
		return reflect.New(t.Elem()).Interface()
	}
	return reflect.New(t).Interface()
}

// satisfies reports whether t meets restriction r. Pointers and their element
// types are treated alike.
func satisfies(t, r reflect.Type) bool {
	if r == nil {
		return true
	}
	if t == nil {
		return false
	}
	if t == r || t.AssignableTo(r) {
		return true
	}
	if r.Kind() == reflect.Interface {
		return t.Implements(r) || t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(r)
	}
	return deref(t) == deref(r)
}

func deref(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

func canonicalType(t reflect.Type, reg *Registry) any {
	if name, ok := reg.TypeName(t); ok {
		return name
	}
	return t
}

func typeLabel(t reflect.Type, reg *Registry) string {
	if name, ok := registryOrDefault(reg).TypeName(t); ok {
		return name
	}
	return t.String()
}

func restrictedName(base string, r reflect.Type, reg *Registry) string {
	if r == nil {
		return base
	}
	return base + "<" + typeLabel(r, reg) + ">"
}

func restrictionError(name, message string, r reflect.Type, reg *Registry) *fault.Error {
	t := text.New(message).
		SetParameter("class", typeLabel(r, reg)).
		SetPlaceholderFlags("class", text.FlagQuote).
		SetDomain(Domain)
	return fault.New(name).WithText(t)
}

func registryOrDefault(r *Registry) *Registry {
	if r == nil {
		return DefaultRegistry()
	}
	return r
}
