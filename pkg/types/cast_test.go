package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kit/pkg/types"
)

type slug string

func TestCastAs(t *testing.T) {
	t.Parallel()

	t.Run("numbers convert", func(t *testing.T) {
		t.Parallel()
		n, err := types.CastAs[int](types.MustBuild("int", nil), "42")
		require.NoError(t, err)
		assert.Equal(t, 42, n)

		f, err := types.CastAs[float32](types.MustBuild("float", nil), "1.5")
		require.NoError(t, err)
		assert.InDelta(t, 1.5, f, 1e-6)

		u, err := types.CastAs[uint16](types.MustBuild("number", nil), 7.0)
		require.NoError(t, err)
		assert.Equal(t, uint16(7), u)
	})

	t.Run("strings convert", func(t *testing.T) {
		t.Parallel()
		s, err := types.CastAs[slug](types.MustBuild("string", nil), "hello-world")
		require.NoError(t, err)
		assert.Equal(t, slug("hello-world"), s)
	})

	t.Run("exact types", func(t *testing.T) {
		t.Parallel()
		b, err := types.CastAs[bool](types.MustBuild("bool", nil), "yes")
		require.NoError(t, err)
		assert.True(t, b)

		list, err := types.CastAs[[]any](types.MustBuild("int[]", nil), []string{"1"})
		require.NoError(t, err)
		assert.Equal(t, []any{int64(1)}, list)
	})

	t.Run("numbers that do not fit", func(t *testing.T) {
		t.Parallel()
		number := types.MustBuild("number", nil)

		_, err := types.CastAs[int8](number, 1000)
		require.ErrorIs(t, err, types.ErrCastFailed)

		_, err = types.CastAs[int](number, 3.7)
		require.ErrorIs(t, err, types.ErrCastFailed)

		_, err = types.CastAs[uint](number, -5)
		require.ErrorIs(t, err, types.ErrCastFailed)

		_, err = types.CastAs[uint8](number, "-0.5")
		require.ErrorIs(t, err, types.ErrCastFailed)

		_, err = types.CastAs[float32](number, 1e300)
		require.ErrorIs(t, err, types.ErrCastFailed)

		_, err = types.CastAs[int64](number, 1e19)
		require.ErrorIs(t, err, types.ErrCastFailed)
	})

	t.Run("numbers that fit", func(t *testing.T) {
		t.Parallel()
		number := types.MustBuild("number", nil)

		i, err := types.CastAs[int8](number, -128)
		require.NoError(t, err)
		assert.Equal(t, int8(-128), i)

		u, err := types.CastAs[uint8](number, "255")
		require.NoError(t, err)
		assert.Equal(t, uint8(255), u)

		f, err := types.CastAs[float32](number, 0.1)
		require.NoError(t, err)
		assert.InDelta(t, 0.1, f, 1e-7)

		n, err := types.CastAs[int](number, 3.0)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("nil gives the zero value", func(t *testing.T) {
		t.Parallel()
		n, err := types.CastAs[int](types.MustBuild("?int", nil), nil)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("mismatched result", func(t *testing.T) {
		t.Parallel()
		_, err := types.CastAs[string](types.MustBuild("int", nil), 5)
		require.ErrorIs(t, err, types.ErrCastFailed)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		_, err := types.CastAs[int](types.MustBuild("int", nil), "five")
		require.ErrorIs(t, err, types.ErrCastFailed)
		var castErr *types.CastError
		assert.ErrorAs(t, err, &castErr)
	})
}
