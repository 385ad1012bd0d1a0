package types_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kit/pkg/collection"
	"github.com/dmitrymomot/kit/pkg/fault"
	"github.com/dmitrymomot/kit/pkg/mutator"
	"github.com/dmitrymomot/kit/pkg/property"
	"github.com/dmitrymomot/kit/pkg/text"
	"github.com/dmitrymomot/kit/pkg/types"
)

// nameless fails without a message so the default text is used.
type nameless struct{}

func (nameless) Name() string { return "nameless" }

func (nameless) Process(_ *any, _ types.Env) *fault.Error { return fault.New("nameless.invalid") }

// panicky accepts everything but cannot render it.
type panicky struct{}

func (panicky) Name() string { return "panicky" }

func (panicky) Process(_ *any, _ types.Env) *fault.Error { return nil }

func (panicky) Textify(_ any, _ types.Env) (*text.Text, error) { panic("boom") }

func TestType_Nullable(t *testing.T) {
	t.Parallel()

	t.Run("nullable accepts nil", func(t *testing.T) {
		t.Parallel()
		typ := types.MustBuild("?string", nil)
		var v any
		require.Nil(t, typ.Process(&v))
		assert.Nil(t, v)
		assert.True(t, typ.Nullable())
		assert.Equal(t, "?string", typ.String())
	})

	t.Run("non-nullable rejects nil", func(t *testing.T) {
		t.Parallel()
		typ := types.MustBuild("string", nil)
		var v any
		err := typ.Process(&v)
		require.NotNil(t, err)
		assert.Equal(t, "string.invalid", err.Name())
	})

	t.Run("null union member", func(t *testing.T) {
		t.Parallel()
		typ := types.MustBuild("int|null", nil)
		assert.True(t, typ.Nullable())
		assert.Equal(t, "?int", typ.String())
	})

	t.Run("nullable union renders grouped", func(t *testing.T) {
		t.Parallel()
		typ := types.MustBuild("?(int|string)", nil)
		assert.Equal(t, "?(int|string)", typ.String())
	})

	t.Run("nullable property", func(t *testing.T) {
		t.Parallel()
		typ := types.MustBuild("int", property.Map{"nullable": true})
		assert.Equal(t, "?int", typ.String())
	})
}

func TestType_Idempotent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr  string
		input any
	}{
		{expr: "int", input: "42"},
		{expr: "float", input: "1.5"},
		{expr: "number", input: "2k"},
		{expr: "bool", input: "yes"},
		{expr: "string", input: 12},
		{expr: "ustring", input: "\ufeffabc"},
		{expr: "int[]", input: []any{"1", 2}},
		{expr: "array<int>", input: map[string]any{"b": "2", "a": 1}},
		{expr: "int|bool", input: "on"},
		{expr: "text", input: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			t.Parallel()
			typ := types.MustBuild(tt.expr, nil)

			first, err := typ.Cast(tt.input)
			require.NoError(t, err)
			second, err := typ.Cast(first)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestType_Strictness(t *testing.T) {
	t.Parallel()

	lenient := types.MustBuild("int", nil)
	strict := types.MustBuild("int", property.Map{"strict": true})

	v, err := lenient.Cast(1.0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	_, err = strict.Cast(1.0)
	require.Error(t, err)

	_, err = lenient.Cast(1.0, types.WithStrict(true))
	require.Error(t, err, "strict call option")

	_, err = strict.Cast(1.0, types.WithStrict(false))
	require.Error(t, err, "call options cannot relax a strict type")

	assert.True(t, strict.Strict())
	assert.False(t, lenient.Strict())
}

func TestType_Mutators(t *testing.T) {
	t.Parallel()

	t.Run("run in order", func(t *testing.T) {
		t.Parallel()
		typ := types.MustBuild("string", nil,
			types.WithMutator("trim", nil),
			types.WithMutator("uppercase", nil),
		)
		v, err := typ.Cast(" abc ")
		require.NoError(t, err)
		assert.Equal(t, "ABC", v)
		assert.Len(t, typ.Mutators(), 2)
	})

	t.Run("failure keeps the value", func(t *testing.T) {
		t.Parallel()
		typ := types.MustBuild("string", nil,
			types.WithMutator("trim", nil),
			types.WithMutator("max_length", property.Map{"length": 2}),
		)
		var v any = " abc "
		err := typ.Process(&v)
		require.NotNil(t, err)
		assert.Equal(t, "length.maximum", err.Name())
		assert.Equal(t, " abc ", v)
	})

	t.Run("mutator instance", func(t *testing.T) {
		t.Parallel()
		typ := types.MustBuild("string", nil)
		_, err := typ.AddMutator(mutator.Lowercase(false), nil)
		require.NoError(t, err)
		v, err := typ.Cast("ABC")
		require.NoError(t, err)
		assert.Equal(t, "abc", v)
	})

	t.Run("instance with properties", func(t *testing.T) {
		t.Parallel()
		typ := types.MustBuild("string", nil)
		_, err := typ.AddMutator(mutator.Lowercase(false), property.Map{"unicode": true})
		require.ErrorIs(t, err, types.ErrInvalidProperty)
	})

	t.Run("unknown name", func(t *testing.T) {
		t.Parallel()
		typ := types.MustBuild("int", nil)
		_, err := typ.AddMutator("no_such_mutator", nil)
		require.ErrorIs(t, err, types.ErrUnknownMutator)

		_, err = typ.AddMutator(42, nil)
		require.ErrorIs(t, err, types.ErrUnknownMutator)
	})

	t.Run("number range", func(t *testing.T) {
		t.Parallel()
		typ := types.MustBuild("int", nil,
			types.WithMutator("range", property.Map{"minimum": 1, "maximum": 10}),
		)
		v, err := typ.Cast("5")
		require.NoError(t, err)
		assert.Equal(t, int64(5), v)
		_, err = typ.Cast(11)
		require.Error(t, err)
	})

	t.Run("unicode strings count code points", func(t *testing.T) {
		t.Parallel()
		opt := types.WithMutator("max_length", property.Map{"length": 3})

		_, err := types.MustBuild("ustring", nil, opt).Cast("äöü")
		require.NoError(t, err)

		_, err = types.MustBuild("string", nil, opt).Cast("äöü")
		require.Error(t, err)
	})

	t.Run("copy keeps mutators", func(t *testing.T) {
		t.Parallel()
		base := types.MustBuild("string", nil, types.WithMutator("lowercase", nil))
		nullable, err := types.Build(base, property.Map{"nullable": true})
		require.NoError(t, err)
		v, err := nullable.Cast("ABC")
		require.NoError(t, err)
		assert.Equal(t, "abc", v)
		assert.Nil(t, nullable.CastOrNil(42.5, types.WithStrict(true)))
	})
}

func TestType_Errors(t *testing.T) {
	t.Parallel()

	t.Run("default text", func(t *testing.T) {
		t.Parallel()
		typ := types.MustBuild(nameless{}, nil)
		var v any = 1
		err := typ.Process(&v)
		require.NotNil(t, err)
		assert.Equal(t, "nameless.invalid", err.Name())
		assert.Equal(t, "The given value is invalid.", err.Error())
	})

	t.Run("union returns the last error", func(t *testing.T) {
		t.Parallel()
		typ := types.MustBuild("int|bool", nil)

		v, err := typ.Cast("5")
		require.NoError(t, err)
		assert.Equal(t, int64(5), v)

		v, err = typ.Cast("yes")
		require.NoError(t, err)
		assert.Equal(t, true, v)

		_, err = typ.Cast("abc", types.WithContext(types.ContextRequest))
		require.Error(t, err)
		assert.ErrorIs(t, err, fault.New("boolean.invalid"))
		assert.NotErrorIs(t, err, fault.New("number.invalid"))
	})

	t.Run("cast error", func(t *testing.T) {
		t.Parallel()
		_, err := types.MustBuild("int", nil).Cast("abc")
		require.ErrorIs(t, err, types.ErrCastFailed)

		var castErr *types.CastError
		require.True(t, errors.As(err, &castErr))
		assert.Equal(t, "int", castErr.Type)
		assert.Equal(t, "abc", castErr.Value)
		assert.Equal(t, "number.invalid", castErr.Fault.Name())
		assert.Equal(t, "cannot cast string to int: Only an integer number is allowed.", err.Error())
	})

	t.Run("coercion error keeps the value", func(t *testing.T) {
		t.Parallel()
		typ := types.MustBuild("int", nil)
		var v any = "abc"
		err := typ.Coerce(&v)
		require.ErrorIs(t, err, types.ErrCoercionFailed)
		var coerceErr *types.CoercionError
		require.True(t, errors.As(err, &coerceErr))
		assert.Equal(t, "abc", v)

		v = "7"
		require.NoError(t, typ.Coerce(&v))
		assert.Equal(t, int64(7), v)
	})

	t.Run("try coerce", func(t *testing.T) {
		t.Parallel()
		typ := types.MustBuild("bool", nil)
		var v any = "off"
		assert.True(t, typ.TryCoerce(&v))
		assert.Equal(t, false, v)

		v = "perhaps"
		assert.False(t, typ.TryCoerce(&v))
		assert.Equal(t, "perhaps", v)
	})
}

func TestType_Textify(t *testing.T) {
	t.Parallel()

	t.Run("boolean levels", func(t *testing.T) {
		t.Parallel()
		tx, err := types.MustBuild("bool", nil).Textify("1")
		require.NoError(t, err)
		assert.Equal(t, "yes", tx.String())
		assert.Equal(t, "true", tx.Render(text.Options{Level: text.Technical}))
	})

	t.Run("null", func(t *testing.T) {
		t.Parallel()
		tx, err := types.MustBuild("?int", nil).Textify(nil)
		require.NoError(t, err)
		assert.Equal(t, "null", tx.String())
	})

	t.Run("list", func(t *testing.T) {
		t.Parallel()
		tx, err := types.MustBuild("int[]", nil).Textify([]any{1, "2", 3.0})
		require.NoError(t, err)
		assert.Equal(t, "1, 2, 3", tx.String())
	})

	t.Run("union uses the accepting member", func(t *testing.T) {
		t.Parallel()
		tx, err := types.MustBuild("int|bool", nil).Textify(false)
		require.NoError(t, err)
		assert.Equal(t, "no", tx.String())
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		typ := types.MustBuild("int", nil)
		_, err := typ.Textify("abc")
		require.ErrorIs(t, err, types.ErrTextifyFailed)
		assert.Nil(t, typ.TextifyOrNil("abc"))
	})

	t.Run("panic is recovered", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := slog.New(slog.NewTextHandler(buf, nil))
		typ := types.MustBuild(panicky{}, nil, types.WithLogger(log))

		_, err := typ.Textify(1)
		require.ErrorIs(t, err, types.ErrTextifyFailed)
		assert.Contains(t, buf.String(), "prototype=panicky")
	})

	t.Run("any falls back to the default rendering", func(t *testing.T) {
		t.Parallel()
		tx, err := types.MustBuild("any", nil).Textify(2.5)
		require.NoError(t, err)
		assert.Equal(t, "2.5", tx.String())

		_, err = types.MustBuild("any", nil).Textify(struct{}{})
		require.ErrorIs(t, err, types.ErrTextifyFailed)
	})
}

func TestType_Evaluator(t *testing.T) {
	t.Parallel()

	d := collection.NewDictionary(
		collection.WithValueEvaluator(types.MustBuild("int", nil).Evaluator()),
	)
	require.NoError(t, d.Set("a", "5"))
	v, ok := d.Get("a")
	require.True(t, ok)
	assert.Equal(t, int64(5), v)

	err := d.Set("b", "five")
	require.ErrorIs(t, err, collection.ErrInvalidValue)
	assert.ErrorIs(t, err, fault.New("number.invalid"))
}
