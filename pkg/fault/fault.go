package fault

import (
	"errors"
	"maps"

	"github.com/dmitrymomot/kit/pkg/text"
)

// Error describes a validation failure.
type Error struct {
	name  string
	text  *text.Text
	cause error
	data  map[text.InfoLevel]any
}

// New creates an error identified by name.
func New(name string) *Error {
	return &Error{name: name}
}

// Wrap creates an error from a plain error, keeping it as the cause and using its
// message as Technical text.
func Wrap(name string, err error) *Error {
	e := New(name).WithCause(err)
	if err != nil {
		e.text = text.New("").SetString(text.Technical, err.Error()).SetLocalize(false)
	}
	return e
}

// WithText sets the message.
func (e *Error) WithText(t *text.Text) *Error {
	e.text = t
	return e
}

// WithCause sets the underlying error.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// WithData attaches side data for level.
func (e *Error) WithData(level text.InfoLevel, data any) *Error {
	if e.data == nil {
		e.data = make(map[text.InfoLevel]any, 1)
	}
	e.data[level] = data
	return e
}

// Name returns the error identifier.
func (e *Error) Name() string {
	return e.name
}

// Text returns the message, which may be nil.
func (e *Error) Text() *text.Text {
	return e.text
}

// HasText reports whether a non-empty message is set.
func (e *Error) HasText() bool {
	return !e.text.IsEmpty()
}

// Cause returns the underlying error.
func (e *Error) Cause() error {
	return e.cause
}

// Data returns the side data at level, falling back to lower levels.
func (e *Error) Data(level text.InfoLevel) (any, bool) {
	for l := level; l >= text.EndUser; l-- {
		if d, ok := e.data[l]; ok {
			return d, true
		}
	}
	return nil, false
}

// Clone returns a copy whose text and data can be changed independently.
func (e *Error) Clone() *Error {
	c := *e
	c.data = maps.Clone(e.data)
	if e.text != nil {
		c.text = e.text.Clone()
	}
	return &c
}

// Message renders the message for opts.
func (e *Error) Message(opts text.Options) string {
	if e == nil {
		return ""
	}
	return e.text.Render(opts)
}

// Error renders the EndUser message, falling back to the name.
func (e *Error) Error() string {
	if msg := e.Message(text.Options{}); msg != "" {
		return msg
	}
	if e.name != "" {
		return e.name
	}
	return "invalid value"
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches errors with the same non-empty name.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.name != "" && e.name == t.name
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
