package mutator

import "errors"

var (
	// ErrUnknownMutator is returned by Build when no factory is registered under a name.
	ErrUnknownMutator = errors.New("unknown mutator")

	// ErrInvalidMutator is returned when a factory rejects its properties.
	ErrInvalidMutator = errors.New("invalid mutator configuration")
)
