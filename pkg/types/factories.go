package types

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrymomot/kit/pkg/property"
)

type factory func(b *builder, props property.Map) (Prototype, error)

// staticNames maps the built-in type names to their factories.
var staticNames map[string]factory

func init() {
	staticNames = map[string]factory{
		"any":         buildAny,
		"mixed":       buildAny,
		"boolean":     buildBoolean,
		"bool":        buildBoolean,
		"number":      buildNumber(AnyNumber),
		"integer":     buildNumber(IntegerNumber),
		"int":         buildNumber(IntegerNumber),
		"float":       buildNumber(FloatNumber),
		"double":      buildNumber(FloatNumber),
		"string":      buildString(false),
		"ustring":     buildString(true),
		"enumeration": buildEnumeration,
		"enum":        buildEnumeration,
		"class":       buildClass,
		"interface":   buildInterface,
		"object":      buildObject,
		"resource":    buildResource,
		"callable":    buildCallable(false),
		"closure":     buildCallable(true),
		"array":       buildArray,
		"list":        buildList,
		"component":   buildComponent,
		"structure":   buildStructure,
		"struct":      buildStructure,
		"text":        buildText,
	}
}

func buildAny(b *builder, props property.Map) (Prototype, error) {
	if err := checkProperties(props, "types"); err != nil {
		return nil, err
	}
	v, ok := props.Value("types")
	if !ok || v == nil {
		return Any{}, nil
	}

	var items []any
	switch list := v.(type) {
	case []string:
		for _, s := range list {
			items = append(items, s)
		}
	case []any:
		items = list
	default:
		return nil, fmt.Errorf("%w: \"types\" must be a list, got %s", ErrInvalidProperty, typeName(v))
	}

	union := Any{Members: make([]*Type, 0, len(items))}
	for _, item := range items {
		m, err := b.build(item, nil)
		if err != nil {
			return nil, err
		}
		union.Members = append(union.Members, m)
	}
	return union, nil
}

func buildBoolean(_ *builder, props property.Map) (Prototype, error) {
	if err := checkProperties(props); err != nil {
		return nil, err
	}
	return Boolean{}, nil
}

func buildNumber(kind NumberKind) factory {
	return func(_ *builder, props property.Map) (Prototype, error) {
		if kind != AnyNumber {
			if err := checkProperties(props); err != nil {
				return nil, err
			}
			return Number{Kind: kind}, nil
		}

		if err := checkProperties(props, "type"); err != nil {
			return nil, err
		}
		restriction, err := props.String("type", "")
		if err != nil {
			return nil, errors.Join(ErrInvalidProperty, err)
		}
		switch strings.ToLower(restriction) {
		case "":
			return Number{}, nil
		case "integer", "int":
			return Number{Kind: IntegerNumber}, nil
		case "float", "double":
			return Number{Kind: FloatNumber}, nil
		}
		return nil, fmt.Errorf("%w: unknown number type %q", ErrInvalidProperty, restriction)
	}
}

func buildString(unicode bool) factory {
	return func(_ *builder, props property.Map) (Prototype, error) {
		if unicode {
			if err := checkProperties(props); err != nil {
				return nil, err
			}
			return String{Unicode: true}, nil
		}
		if err := checkProperties(props, "unicode"); err != nil {
			return nil, err
		}
		u, err := props.Bool("unicode", false)
		if err != nil {
			return nil, errors.Join(ErrInvalidProperty, err)
		}
		return String{Unicode: u}, nil
	}
}

func buildClass(b *builder, props property.Map) (Prototype, error) {
	if err := checkProperties(props, "class"); err != nil {
		return nil, err
	}
	r, err := b.restriction(props, "class")
	if err != nil {
		return nil, err
	}
	return Class{Restriction: r, Registry: b.registry}, nil
}

func buildInterface(b *builder, props property.Map) (Prototype, error) {
	if err := checkProperties(props, "interface"); err != nil {
		return nil, err
	}
	r, err := b.restriction(props, "interface")
	if err != nil {
		return nil, err
	}
	if r != nil && r.Kind() != reflect.Interface {
		return nil, fmt.Errorf("%w: %s is not an interface", ErrInvalidProperty, r)
	}
	return Interface{Restriction: r, Registry: b.registry}, nil
}

func buildObject(b *builder, props property.Map) (Prototype, error) {
	if err := checkProperties(props, "class"); err != nil {
		return nil, err
	}
	r, err := b.restriction(props, "class")
	if err != nil {
		return nil, err
	}
	return Object{Restriction: r, Registry: b.registry}, nil
}

// restriction reads a class restriction given as a registered name or a reflect.Type.
func (b *builder) restriction(props property.Map, key string) (reflect.Type, error) {
	v, ok := props.Value(key)
	if !ok || v == nil {
		return nil, nil
	}
	switch r := v.(type) {
	case reflect.Type:
		return r, nil
	case string:
		if t, found := b.registry.resolveType(strings.TrimSpace(r)); found {
			return t, nil
		}
		return nil, fmt.Errorf("%w: unknown class %q", ErrUnknownPrototype, r)
	}
	return nil, fmt.Errorf("%w: %q must be a class name or a reflect.Type", ErrInvalidProperty, key)
}

func buildResource(_ *builder, props property.Map) (Prototype, error) {
	if err := checkProperties(props, "type"); err != nil {
		return nil, err
	}
	r, err := props.String("type", "")
	if err != nil {
		return nil, errors.Join(ErrInvalidProperty, err)
	}
	return Resource{Restriction: strings.TrimSpace(r)}, nil
}

func buildCallable(closure bool) factory {
	return func(b *builder, props property.Map) (Prototype, error) {
		if err := checkProperties(props); err != nil {
			return nil, err
		}
		return Callable{Closure: closure, Registry: b.registry}, nil
	}
}

func buildArray(b *builder, props property.Map) (Prototype, error) {
	if err := checkProperties(props, "type", "key_type", "non_associative"); err != nil {
		return nil, err
	}
	nonAssoc, err := props.Bool("non_associative", false)
	if err != nil {
		return nil, errors.Join(ErrInvalidProperty, err)
	}
	elem, err := b.nested(props, "type")
	if err != nil {
		return nil, err
	}
	key, err := b.nested(props, "key_type")
	if err != nil {
		return nil, err
	}
	if key != nil && nonAssoc {
		return nil, fmt.Errorf("%w: \"key_type\" cannot be used with \"non_associative\"", ErrInvalidProperty)
	}
	return Array{Type: elem, KeyType: key, NonAssociative: nonAssoc}, nil
}

func buildList(b *builder, props property.Map) (Prototype, error) {
	return buildArray(b, withOverrides(props, map[string]any{"non_associative": true}))
}

func buildComponent(b *builder, props property.Map) (Prototype, error) {
	name, err := constructorName(props)
	if err != nil {
		return nil, err
	}
	ctor, ok := b.registry.Component(name)
	if !ok {
		return nil, fmt.Errorf("%w: unknown component %q", ErrUnknownPrototype, name)
	}
	return Component{Constructor: ctor}, nil
}

func buildStructure(b *builder, props property.Map) (Prototype, error) {
	name, err := constructorName(props)
	if err != nil {
		return nil, err
	}
	ctor, ok := b.registry.Structure(name)
	if !ok {
		return nil, fmt.Errorf("%w: unknown structure %q", ErrUnknownPrototype, name)
	}
	return Structure{Constructor: ctor}, nil
}

func constructorName(props property.Map) (string, error) {
	if err := checkProperties(props, "class"); err != nil {
		return "", err
	}
	if err := props.Require("class"); err != nil {
		return "", errors.Join(ErrInvalidProperty, err)
	}
	name, err := props.String("class", "")
	if err != nil {
		return "", errors.Join(ErrInvalidProperty, err)
	}
	return name, nil
}

func buildText(_ *builder, props property.Map) (Prototype, error) {
	if err := checkProperties(props); err != nil {
		return nil, err
	}
	return Text{}, nil
}

func buildEnumeration(b *builder, props property.Map) (Prototype, error) {
	if err := checkProperties(props, "enumeration"); err != nil {
		return nil, err
	}
	if err := props.Require("enumeration"); err != nil {
		return nil, errors.Join(ErrInvalidProperty, err)
	}
	switch e := props["enumeration"].(type) {
	case *Enum:
		if e != nil {
			return Enumeration{Label: "enumeration", Enum: e}, nil
		}
	case string:
		if enum, ok := b.registry.Enum(e); ok {
			return Enumeration{Label: e, Enum: enum}, nil
		}
		return nil, fmt.Errorf("%w: unknown enumeration %q", ErrUnknownPrototype, e)
	}
	return nil, fmt.Errorf("%w: \"enumeration\" must be a name or an *Enum", ErrInvalidProperty)
}
