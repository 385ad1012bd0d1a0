package types

import (
	"fmt"
	"strings"
)

// Context tells variants where a value comes from. Values from outside the program
// are coerced more conservatively.
type Context uint8

const (
	// ContextInternal is used for values produced by the program itself.
	ContextInternal Context = iota
	// ContextInterface is used for values received through a user interface such as a CLI.
	ContextInterface
	// ContextRequest is used for values received in a remote request.
	ContextRequest
)

// String returns the context name.
func (c Context) String() string {
	switch c {
	case ContextInternal:
		return "internal"
	case ContextInterface:
		return "interface"
	case ContextRequest:
		return "request"
	}
	return fmt.Sprintf("context(%d)", uint8(c))
}

// ParseContext parses a context name.
func ParseContext(s string) (Context, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "internal":
		return ContextInternal, nil
	case "interface":
		return ContextInterface, nil
	case "request":
		return ContextRequest, nil
	}
	return ContextInternal, fmt.Errorf("unknown context %q", s)
}

// Env carries the per-call settings passed to variants.
type Env struct {
	Context  Context
	Strict   bool
	Language string
}

// ProcessOption configures a single Process, Cast, Coerce or Textify call.
type ProcessOption func(*Env)

// WithContext sets the value context. The default is ContextInternal.
func WithContext(c Context) ProcessOption {
	return func(e *Env) { e.Context = c }
}

// WithStrict enables strict processing for the call even when the type is not strict.
func WithStrict(strict bool) ProcessOption {
	return func(e *Env) { e.Strict = e.Strict || strict }
}

// WithLanguage sets the BCP 47 language tag used for locale-aware parsing.
func WithLanguage(lang string) ProcessOption {
	return func(e *Env) { e.Language = lang }
}

func newEnv(opts []ProcessOption) Env {
	var env Env
	for _, opt := range opts {
		opt(&env)
	}
	return env
}
