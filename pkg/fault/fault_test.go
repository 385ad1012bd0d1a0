package fault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kit/pkg/fault"
	"github.com/dmitrymomot/kit/pkg/text"
)

func TestError_Message(t *testing.T) {
	e := fault.New("number.invalid").WithText(
		text.New("Must be a number.").SetString(text.Internal, "Got {{value}}.").SetParameter("value", "abc"),
	)

	assert.Equal(t, "number.invalid", e.Name())
	assert.Equal(t, "Must be a number.", e.Error())
	assert.Equal(t, "Must be a number.", e.Message(text.Options{Level: text.Technical}))
	assert.Equal(t, "Got abc.", e.Message(text.Options{Level: text.Internal}))
	assert.True(t, e.HasText())
}

func TestError_FallsBackToName(t *testing.T) {
	assert.Equal(t, "boolean.invalid", fault.New("boolean.invalid").Error())
	assert.Equal(t, "invalid value", fault.New("").Error())
	assert.False(t, fault.New("x").HasText())
}

func TestError_Data(t *testing.T) {
	e := fault.New("x").
		WithData(text.EndUser, "public").
		WithData(text.Internal, "private")

	d, ok := e.Data(text.Technical)
	require.True(t, ok)
	assert.Equal(t, "public", d)

	d, ok = e.Data(text.Internal)
	require.True(t, ok)
	assert.Equal(t, "private", d)

	_, ok = fault.New("y").Data(text.Internal)
	assert.False(t, ok)
}

func TestError_IsAndUnwrap(t *testing.T) {
	sentinel := fault.New("array.duplicate_key")
	cause := errors.New("io")

	e := fault.New("array.duplicate_key").WithCause(cause)
	wrapped := fmt.Errorf("outer: %w", e)

	assert.ErrorIs(t, wrapped, sentinel)
	assert.ErrorIs(t, wrapped, cause)
	assert.NotErrorIs(t, wrapped, fault.New("other"))

	got, ok := fault.As(wrapped)
	require.True(t, ok)
	assert.Same(t, e, got)
}

func TestWrap(t *testing.T) {
	e := fault.Wrap("structure.build", errors.New("missing field"))
	assert.Equal(t, "", e.Message(text.Options{}))
	assert.Equal(t, "missing field", e.Message(text.Options{Level: text.Technical}))
	assert.Equal(t, "structure.build", e.Error())
}

func TestClone(t *testing.T) {
	e := fault.New("x").WithText(text.New("a")).WithData(text.EndUser, 1)
	c := e.Clone()
	c.Text().SetString(text.EndUser, "b")
	c.WithData(text.EndUser, 2)

	assert.Equal(t, "a", e.Error())
	assert.Equal(t, "b", c.Error())
	d, _ := e.Data(text.EndUser)
	assert.Equal(t, 1, d)
}
