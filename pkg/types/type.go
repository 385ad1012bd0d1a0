package types

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/dmitrymomot/kit/pkg/collection"
	"github.com/dmitrymomot/kit/pkg/fault"
	"github.com/dmitrymomot/kit/pkg/logger"
	"github.com/dmitrymomot/kit/pkg/mutator"
	"github.com/dmitrymomot/kit/pkg/property"
	"github.com/dmitrymomot/kit/pkg/text"
)

// Type validates and coerces values against a prototype and runs its mutators.
// A Type is safe for concurrent use once built; AddMutator is part of building
// and must not run concurrently with processing.
type Type struct {
	prototype Prototype
	nullable  bool
	strict    bool
	mutators  []mutator.Mutator
	logger    *slog.Logger
}

// Name returns the expression of the underlying prototype.
func (t *Type) Name() string { return t.prototype.Name() }

// Nullable reports whether nil is accepted.
func (t *Type) Nullable() bool { return t.nullable }

// Strict reports whether coercion is disabled.
func (t *Type) Strict() bool { return t.strict }

// Prototype returns the variant the type delegates to.
func (t *Type) Prototype() Prototype { return t.prototype }

// Mutators returns the attached mutators in execution order.
func (t *Type) Mutators() []mutator.Mutator { return slices.Clone(t.mutators) }

// String returns a type expression that builds an equivalent type.
func (t *Type) String() string {
	name := t.Name()
	if !t.nullable {
		return name
	}
	if strings.Contains(name, "|") {
		return "?(" + name + ")"
	}
	return "?" + name
}

// Process validates *value, coercing it in place. On failure the value is left
// unchanged.
func (t *Type) Process(value *any, opts ...ProcessOption) *fault.Error {
	return t.process(value, newEnv(opts))
}

func (t *Type) process(value *any, env Env) *fault.Error {
	if *value == nil && t.nullable {
		return nil
	}
	if t.strict {
		env.Strict = true
	}

	v := *value
	if err := t.prototype.Process(&v, env); err != nil {
		return withDefaultText(err)
	}
	for _, m := range t.mutators {
		if err := m.Process(&v); err != nil {
			return withDefaultText(err)
		}
	}
	*value = v
	return nil
}

func withDefaultText(err *fault.Error) *fault.Error {
	if !err.HasText() {
		err.WithText(text.New("The given value is invalid.").SetDomain(Domain))
	}
	return err
}

// Cast returns the processed value or a *CastError.
func (t *Type) Cast(value any, opts ...ProcessOption) (any, error) {
	v := value
	if err := t.Process(&v, opts...); err != nil {
		return nil, &CastError{Type: t.String(), Value: value, Fault: err}
	}
	return v, nil
}

// CastOrNil returns the processed value, or nil when it is invalid.
func (t *Type) CastOrNil(value any, opts ...ProcessOption) any {
	v, err := t.Cast(value, opts...)
	if err != nil {
		return nil
	}
	return v
}

// Coerce processes *value in place and returns a *CoercionError on failure.
func (t *Type) Coerce(value *any, opts ...ProcessOption) error {
	if err := t.Process(value, opts...); err != nil {
		return &CoercionError{Type: t.String(), Value: *value, Fault: err}
	}
	return nil
}

// TryCoerce processes *value in place and reports whether it succeeded.
func (t *Type) TryCoerce(value *any, opts ...ProcessOption) bool {
	return t.Process(value, opts...) == nil
}

// Textify processes a copy of value and converts the result into text.
func (t *Type) Textify(value any, opts ...ProcessOption) (*text.Text, error) {
	return t.textify(value, newEnv(opts))
}

// TextifyOrNil is like Textify but returns nil on failure.
func (t *Type) TextifyOrNil(value any, opts ...ProcessOption) *text.Text {
	tx, err := t.Textify(value, opts...)
	if err != nil {
		return nil
	}
	return tx
}

func (t *Type) textify(value any, env Env) (*text.Text, error) {
	v := value
	if err := t.process(&v, env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTextifyFailed, err)
	}
	if v == nil {
		return text.New("null").SetDomain(Domain), nil
	}
	if tf, ok := t.prototype.(Textifier); ok {
		tx, err := t.callTextifier(tf, v, env)
		if err != nil {
			return nil, err
		}
		if tx != nil {
			return tx, nil
		}
	}
	return defaultTextify(v)
}

func (t *Type) callTextifier(tf Textifier, v any, env Env) (tx *text.Text, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: textifier panic: %v", ErrTextifyFailed, r)
			t.log().Error("textifier panicked",
				logger.Prototype(t.Name()),
				logger.Error(err),
			)
		}
	}()
	tx, err = tf.Textify(v, env)
	if err != nil && !errors.Is(err, ErrTextifyFailed) {
		err = errors.Join(ErrTextifyFailed, err)
	}
	return tx, err
}

func defaultTextify(v any) (*text.Text, error) {
	switch val := v.(type) {
	case nil:
		return text.New("null").SetDomain(Domain), nil
	case *text.Text:
		return val, nil
	case fmt.Stringer:
		return text.Raw(val.String()), nil
	}
	if s, ok := scalarString(v); ok {
		return text.Raw(s), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrTextifyFailed, typeName(v))
}

// AddMutator appends a mutator. m is either a mutator.Mutator or a name resolved
// by the prototype first and the global mutator registry second.
func (t *Type) AddMutator(m any, props property.Map) (*Type, error) {
	switch val := m.(type) {
	case mutator.Mutator:
		if len(props) > 0 {
			return t, fmt.Errorf("%w: properties given with a mutator instance", ErrInvalidProperty)
		}
		t.mutators = append(t.mutators, val)
		return t, nil
	case string:
		built, err := t.produceMutator(val, props)
		if err != nil {
			return t, err
		}
		t.mutators = append(t.mutators, built)
		t.log().Debug("mutator added", logger.Prototype(t.Name()), logger.Mutator(val))
		return t, nil
	}
	return t, fmt.Errorf("%w: %s", ErrUnknownMutator, typeName(m))
}

func (t *Type) produceMutator(name string, props property.Map) (mutator.Mutator, error) {
	if p, ok := t.prototype.(MutatorProducer); ok {
		m, found, err := p.ProduceMutator(name, props)
		if err != nil {
			return nil, err
		}
		if found {
			return m, nil
		}
	}
	return mutator.Build(name, props)
}

// Evaluator adapts the type into a collection evaluator.
func (t *Type) Evaluator(opts ...ProcessOption) collection.Evaluator {
	return func(value *any) error {
		if err := t.Process(value, opts...); err != nil {
			return err
		}
		return nil
	}
}

func (t *Type) log() *slog.Logger {
	if t.logger == nil {
		return discardLogger
	}
	return t.logger
}
