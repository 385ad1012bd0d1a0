package types

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strings"

	"github.com/dmitrymomot/kit/pkg/logger"
	"github.com/dmitrymomot/kit/pkg/property"
	"github.com/dmitrymomot/kit/pkg/protoname"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Option configures Build.
type Option func(*builder)

type pendingMutator struct {
	name  string
	props property.Map
}

type builder struct {
	registry *Registry
	logger   *slog.Logger
	mutators []pendingMutator
}

// WithRegistry resolves names against r instead of the default registry.
func WithRegistry(r *Registry) Option {
	return func(b *builder) {
		if r != nil {
			b.registry = r
		}
	}
}

// WithLogger sets the logger used by the type. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(b *builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithMutator attaches a named mutator after the type is built.
func WithMutator(name string, props property.Map) Option {
	return func(b *builder) {
		b.mutators = append(b.mutators, pendingMutator{name: name, props: props})
	}
}

// Build creates a Type from a prototype, which is a type expression such as
// "?array<string,int>", a Prototype value, an existing *Type or a reflect.Type
// (an object restricted to that type).
//
// The properties "nullable" and "strict" configure the Type itself; every other
// property configures the prototype. Unsupported properties fail with
// ErrInvalidProperty and unresolvable expressions with ErrUnknownPrototype.
func Build(prototype any, props property.Map, opts ...Option) (*Type, error) {
	b := &builder{registry: DefaultRegistry(), logger: discardLogger}
	for _, opt := range opts {
		opt(b)
	}

	t, err := b.build(prototype, props)
	if err != nil {
		b.logger.Debug("type build failed", logger.Expression(fmt.Sprint(prototype)), logger.Error(err))
		return nil, err
	}
	for _, m := range b.mutators {
		if _, err := t.AddMutator(m.name, m.props); err != nil {
			return nil, err
		}
	}
	b.logger.Debug("type built", logger.Expression(fmt.Sprint(prototype)), logger.Prototype(t.String()))
	return t, nil
}

// MustBuild is like Build but panics on error.
func MustBuild(prototype any, props property.Map, opts ...Option) *Type {
	t, err := Build(prototype, props, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

func (b *builder) build(prototype any, props property.Map) (*Type, error) {
	nullable, err := props.Bool("nullable", false)
	if err != nil {
		return nil, errors.Join(ErrInvalidProperty, err)
	}
	strict, err := props.Bool("strict", false)
	if err != nil {
		return nil, errors.Join(ErrInvalidProperty, err)
	}
	rest := props.Without("nullable", "strict")

	t := &Type{nullable: nullable, strict: strict, logger: b.logger}
	switch p := prototype.(type) {
	case *Type:
		if err := noProperties(rest); err != nil {
			return nil, err
		}
		t.prototype = p.prototype
		t.nullable = t.nullable || p.nullable
		t.strict = t.strict || p.strict
		t.mutators = p.Mutators()
	case Prototype:
		if err := noProperties(rest); err != nil {
			return nil, err
		}
		t.prototype = p
	case reflect.Type:
		if p == nil {
			return nil, fmt.Errorf("%w: nil reflect.Type", ErrUnknownPrototype)
		}
		if err := noProperties(rest); err != nil {
			return nil, err
		}
		t.prototype = Object{Restriction: p, Registry: b.registry}
	case string:
		proto, null, err := b.expression(p, rest)
		if err != nil {
			return nil, err
		}
		t.prototype = proto
		t.nullable = t.nullable || null
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownPrototype, typeName(prototype))
	}
	return t, nil
}

// expression resolves a type expression. The boolean result reports whether the
// expression was marked nullable with "?" or a null union member.
func (b *builder) expression(expr string, props property.Map) (Prototype, bool, error) {
	expr = strings.TrimSpace(expr)
	nullable := false
	if rest, ok := strings.CutPrefix(expr, "?"); ok {
		nullable = true
		expr = strings.TrimSpace(rest)
	}

	if p, ok := protoname.ParseDegrouped(expr); ok && p.Kind == protoname.Union {
		members := make([]string, 0, len(p.Names))
		for _, name := range p.Names {
			if strings.EqualFold(strings.TrimSpace(name), "null") {
				nullable = true
				continue
			}
			members = append(members, name)
		}
		switch len(members) {
		case 0:
			return nil, false, fmt.Errorf("%w: %q", ErrUnknownPrototype, expr)
		case 1:
			proto, null, err := b.expression(members[0], props)
			return proto, nullable || null, err
		}
		if err := noProperties(props); err != nil {
			return nil, false, err
		}
		union := Any{Members: make([]*Type, 0, len(members))}
		for _, name := range members {
			m, err := b.build(name, nil)
			if err != nil {
				return nil, false, err
			}
			union.Members = append(union.Members, m)
		}
		return union, nullable, nil
	}

	if factory, ok := staticNames[expr]; ok {
		proto, err := factory(b, props)
		return proto, nullable, err
	}

	p, ok := protoname.ParseDegrouped(expr)
	if !ok {
		return nil, false, fmt.Errorf("%w: %q", ErrUnknownPrototype, expr)
	}
	var (
		proto Prototype
		err   error
	)
	switch p.Kind {
	case protoname.Generic:
		proto, err = b.generic(p, props)
	case protoname.Array:
		proto, err = b.array(props, map[string]any{"type": p.Names[0], "non_associative": true})
	case protoname.Simple:
		name := p.Names[0]
		if name != expr {
			var null bool
			proto, null, err = b.expression(name, props)
			nullable = nullable || null
		} else {
			proto, err = b.registered(name, props)
		}
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownPrototype, expr)
	}
	if err != nil {
		return nil, false, err
	}
	return proto, nullable, nil
}

func (b *builder) generic(p protoname.Protoname, props property.Map) (Prototype, error) {
	name, args := p.Names[0], p.Names[1:]
	arity := func(n ...int) error {
		for _, want := range n {
			if len(args) == want {
				return nil
			}
		}
		return fmt.Errorf("%w: %q takes %v type arguments, got %d", ErrUnknownPrototype, name, n, len(args))
	}

	switch name {
	case "class", "object", "interface":
		if err := arity(1); err != nil {
			return nil, err
		}
		key := "class"
		if name == "interface" {
			key = name
		}
		return staticNames[name](b, withOverrides(props, map[string]any{key: args[0]}))
	case "resource":
		if err := arity(1); err != nil {
			return nil, err
		}
		return buildResource(b, withOverrides(props, map[string]any{"type": args[0]}))
	case "array":
		if err := arity(1, 2); err != nil {
			return nil, err
		}
		if len(args) == 2 {
			return b.array(props, map[string]any{"key_type": args[0], "type": args[1]})
		}
		return b.array(props, map[string]any{"type": args[0]})
	case "list":
		if err := arity(1); err != nil {
			return nil, err
		}
		return b.array(props, map[string]any{"type": args[0], "non_associative": true})
	}
	return nil, fmt.Errorf("%w: generic %q", ErrUnknownPrototype, name)
}

// registered resolves names from the registry: classes and interfaces become
// restricted objects, and enumerations, components and structures their variants.
func (b *builder) registered(name string, props property.Map) (Prototype, error) {
	reg := b.registry
	if t, ok := reg.resolveType(name); ok {
		if err := noProperties(props); err != nil {
			return nil, err
		}
		return Object{Restriction: t, Registry: reg}, nil
	}
	if _, ok := reg.Enum(name); ok {
		return buildEnumeration(b, withOverrides(props, map[string]any{"enumeration": name}))
	}
	if _, ok := reg.Component(name); ok {
		return buildComponent(b, withOverrides(props, map[string]any{"class": name}))
	}
	if _, ok := reg.Structure(name); ok {
		return buildStructure(b, withOverrides(props, map[string]any{"class": name}))
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPrototype, name)
}

func (b *builder) array(props property.Map, overrides map[string]any) (Prototype, error) {
	return buildArray(b, withOverrides(props, overrides))
}

// nested builds element and key types given as expressions, prototypes or types.
func (b *builder) nested(props property.Map, key string) (*Type, error) {
	v, ok := props.Value(key)
	if !ok || v == nil {
		return nil, nil
	}
	t, err := b.build(v, nil)
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", key, err)
	}
	return t, nil
}

func withOverrides(props property.Map, overrides map[string]any) property.Map {
	out := props.Without()
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

func noProperties(props property.Map) error {
	if len(props) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %q is not supported here", ErrInvalidProperty, props.Keys()[0])
}

func checkProperties(props property.Map, allowed ...string) error {
	if err := props.Check(allowed...); err != nil {
		return errors.Join(ErrInvalidProperty, err)
	}
	return nil
}
