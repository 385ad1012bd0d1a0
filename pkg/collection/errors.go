package collection

import "errors"

var (
	// ErrInvalidKey is returned when a dictionary key is neither a string nor an integer.
	ErrInvalidKey = errors.New("invalid dictionary key")

	// ErrInvalidValue is returned when an evaluator rejects a value.
	ErrInvalidValue = errors.New("invalid value")

	// ErrOutOfRange is returned for vector indexes outside the current bounds.
	ErrOutOfRange = errors.New("index out of range")
)
