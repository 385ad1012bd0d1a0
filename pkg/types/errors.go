package types

import (
	"errors"

	"github.com/dmitrymomot/kit/pkg/mutator"
)

var (
	// ErrUnknownPrototype is returned by Build when an expression cannot be resolved.
	ErrUnknownPrototype = errors.New("unknown type prototype")

	// ErrInvalidProperty is returned by Build for unsupported or malformed properties.
	ErrInvalidProperty = errors.New("invalid type property")

	// ErrUnknownMutator is returned by AddMutator when no mutator matches a name.
	ErrUnknownMutator = mutator.ErrUnknownMutator

	// ErrCastFailed is matched by every *CastError.
	ErrCastFailed = errors.New("cast failed")

	// ErrCoercionFailed is matched by every *CoercionError.
	ErrCoercionFailed = errors.New("coercion failed")

	// ErrTextifyFailed is returned when a value cannot be converted into text.
	ErrTextifyFailed = errors.New("textify failed")

	// ErrAlreadyRegistered is returned when a registry name is already taken.
	ErrAlreadyRegistered = errors.New("name already registered")

	// ErrInvalidRegistration is returned for malformed registry entries.
	ErrInvalidRegistration = errors.New("invalid registration")
)
