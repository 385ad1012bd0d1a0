package config

import "errors"

var (
	// ErrParsingConfig wraps env parse failures: malformed values and missing required variables.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrInvalidConfigType is returned when the target is not a struct.
	ErrInvalidConfigType = errors.New("invalid config type")

	ErrLoadingEnvFile = errors.New("failed to load env file")
	ErrNilPointer     = errors.New("nil pointer provided to config loader")
)
