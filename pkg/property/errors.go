package property

import "errors"

var (
	// ErrInvalidProperty is returned when a property holds a value of the wrong kind.
	ErrInvalidProperty = errors.New("invalid property value")

	// ErrUnknownProperty is returned when a property is not supported by its consumer.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrMissingProperty is returned when a required property is absent.
	ErrMissingProperty = errors.New("missing required property")
)
