package types

import (
	"fmt"
	"reflect"
	"sync"
)

// Constructor describes a registered component or structure.
type Constructor struct {
	Name    string
	Type    reflect.Type
	Builder Builder
}

// Case is one member of an Enum.
type Case struct {
	Name  string
	Value any
}

// Enum is an ordered set of named values.
type Enum struct {
	cases []Case
}

// NewEnum creates an enumeration from its cases. Names must be unique.
func NewEnum(cases ...Case) (*Enum, error) {
	seen := make(map[string]struct{}, len(cases))
	for _, c := range cases {
		if c.Name == "" {
			return nil, fmt.Errorf("%w: empty enumeration case name", ErrInvalidRegistration)
		}
		if _, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate enumeration case %q", ErrInvalidRegistration, c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	return &Enum{cases: append([]Case(nil), cases...)}, nil
}

// Names returns the case names in declaration order.
func (e *Enum) Names() []string {
	names := make([]string, len(e.cases))
	for i, c := range e.cases {
		names[i] = c.Name
	}
	return names
}

// Value returns the value of the named case.
func (e *Enum) Value(name string) (any, bool) {
	for _, c := range e.cases {
		if c.Name == name {
			return c.Value, true
		}
	}
	return nil, false
}

// Name returns the name of the case holding value.
func (e *Enum) Name(value any) (string, bool) {
	for _, c := range e.cases {
		if sameValue(c.Value, value) {
			return c.Name, true
		}
	}
	return "", false
}

type entryKind uint8

const (
	classEntry entryKind = iota + 1
	interfaceEntry
	componentEntry
	structureEntry
	enumEntry
	functionEntry
)

// Registry maps names to the classes, interfaces, components, structures,
// enumerations and functions that type expressions can refer to.
// It is populated at startup and read concurrently afterwards.
type Registry struct {
	mu         sync.RWMutex
	kinds      map[string]entryKind
	classes    map[string]reflect.Type
	interfaces map[string]reflect.Type
	typeNames  map[reflect.Type]string
	ctors      map[string]Constructor
	enums      map[string]*Enum
	functions  map[string]any
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		kinds:      make(map[string]entryKind),
		classes:    make(map[string]reflect.Type),
		interfaces: make(map[string]reflect.Type),
		typeNames:  make(map[reflect.Type]string),
		ctors:      make(map[string]Constructor),
		enums:      make(map[string]*Enum),
		functions:  make(map[string]any),
	}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used when Build is called
// without WithRegistry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// TypeFor returns the reflect.Type of T. It is a shorthand for registrations.
func TypeFor[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// RegisterClass makes typ available as a class under name.
func (r *Registry) RegisterClass(name string, typ reflect.Type) error {
	if typ == nil || typ.Kind() == reflect.Interface {
		return fmt.Errorf("%w: class %q needs a concrete type", ErrInvalidRegistration, name)
	}
	return r.add(name, classEntry, func() {
		r.classes[name] = typ
		r.typeNames[typ] = name
	})
}

// RegisterInterface makes the interface type typ available under name.
func (r *Registry) RegisterInterface(name string, typ reflect.Type) error {
	if typ == nil || typ.Kind() != reflect.Interface {
		return fmt.Errorf("%w: %q is not an interface type", ErrInvalidRegistration, name)
	}
	return r.add(name, interfaceEntry, func() {
		r.interfaces[name] = typ
		r.typeNames[typ] = name
	})
}

// RegisterComponent registers a component type and the builder that creates it.
func (r *Registry) RegisterComponent(name string, typ reflect.Type, b Builder) error {
	return r.addConstructor(name, componentEntry, typ, b)
}

// RegisterStructure registers a structure type and the builder that creates it.
func (r *Registry) RegisterStructure(name string, typ reflect.Type, b Builder) error {
	return r.addConstructor(name, structureEntry, typ, b)
}

// RegisterEnum registers an enumeration.
func (r *Registry) RegisterEnum(name string, e *Enum) error {
	if e == nil {
		return fmt.Errorf("%w: enumeration %q is nil", ErrInvalidRegistration, name)
	}
	return r.add(name, enumEntry, func() { r.enums[name] = e })
}

// RegisterFunction registers a function that callable types resolve by name.
func (r *Registry) RegisterFunction(name string, fn any) error {
	if v := reflect.ValueOf(fn); v.Kind() != reflect.Func || v.IsNil() {
		return fmt.Errorf("%w: %q is not a function", ErrInvalidRegistration, name)
	}
	return r.add(name, functionEntry, func() { r.functions[name] = fn })
}

func (r *Registry) addConstructor(name string, kind entryKind, typ reflect.Type, b Builder) error {
	if typ == nil || b == nil {
		return fmt.Errorf("%w: %q needs a type and a builder", ErrInvalidRegistration, name)
	}
	return r.add(name, kind, func() {
		r.ctors[name] = Constructor{Name: name, Type: typ, Builder: b}
	})
}

func (r *Registry) add(name string, kind entryKind, store func()) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidRegistration)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.kinds[name]; taken {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, name)
	}
	r.kinds[name] = kind
	store()
	return nil
}

// Class returns the class registered under name.
func (r *Registry) Class(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.classes[name]
	return t, ok
}

// Interface returns the interface registered under name.
func (r *Registry) Interface(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.interfaces[name]
	return t, ok
}

// TypeName returns the name under which a class or interface type is registered.
// Pointer types also match the registration of their element type.
func (r *Registry) TypeName(t reflect.Type) (string, bool) {
	if t == nil {
		return "", false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if name, ok := r.typeNames[t]; ok {
		return name, true
	}
	if t.Kind() == reflect.Pointer {
		name, ok := r.typeNames[t.Elem()]
		return name, ok
	}
	return "", false
}

// Component returns the component registered under name.
func (r *Registry) Component(name string) (Constructor, bool) {
	return r.constructor(name, componentEntry)
}

// Structure returns the structure registered under name.
func (r *Registry) Structure(name string) (Constructor, bool) {
	return r.constructor(name, structureEntry)
}

func (r *Registry) constructor(name string, kind entryKind) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.kinds[name] != kind {
		return Constructor{}, false
	}
	c, ok := r.ctors[name]
	return c, ok
}

// Enum returns the enumeration registered under name.
func (r *Registry) Enum(name string) (*Enum, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.enums[name]
	return e, ok
}

// Function returns the function registered under name.
func (r *Registry) Function(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.functions[name]
	return fn, ok
}

// resolveType returns the class or interface registered under name.
func (r *Registry) resolveType(name string) (reflect.Type, bool) {
	if t, ok := r.Class(name); ok {
		return t, true
	}
	return r.Interface(name)
}
