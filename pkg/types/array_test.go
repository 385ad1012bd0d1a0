package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kit/pkg/collection"
	"github.com/dmitrymomot/kit/pkg/fault"
	"github.com/dmitrymomot/kit/pkg/property"
	"github.com/dmitrymomot/kit/pkg/text"
	"github.com/dmitrymomot/kit/pkg/types"
)

type pair struct{ a, b any }

func (p pair) ToArray() *collection.Dictionary {
	d := collection.NewDictionary()
	_ = d.Set("a", p.a)
	_ = d.Set("b", p.b)
	return d
}

func processed(t *testing.T, expr string, input any, opts ...types.ProcessOption) any {
	t.Helper()
	v, err := types.MustBuild(expr, nil).Cast(input, opts...)
	require.NoError(t, err)
	return v
}

func TestArray_Lists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		expr  string
		input any
		want  []any
	}{
		{name: "coerces elements", expr: "int[]", input: []any{"1", 2}, want: []any{int64(1), int64(2)}},
		{name: "typed slice", expr: "array<int>", input: []int{3, 4}, want: []any{int64(3), int64(4)}},
		{name: "untyped array", expr: "array", input: []string{"x"}, want: []any{"x"}},
		{name: "list drops keys", expr: "list", input: map[string]any{"b": 2, "a": 1}, want: []any{1, 2}},
		{name: "nil slice", expr: "int[]", input: []int(nil), want: []any{}},
		{name: "vector", expr: "string[]", input: vectorOf(1, true), want: []any{"1", "true"}},
		{name: "integer keyed map", expr: "array<string>", input: map[int]any{1: "b", 0: "a"}, want: []any{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, processed(t, tt.expr, tt.input))
		})
	}
}

func vectorOf(values ...any) *collection.Vector {
	v := collection.NewVector()
	_ = v.Append(values...)
	return v
}

func TestArray_Keyed(t *testing.T) {
	t.Parallel()

	t.Run("map keys are sorted", func(t *testing.T) {
		t.Parallel()
		v := processed(t, "array<int>", map[string]any{"b": "2", "a": 1})
		d, ok := v.(*collection.Dictionary)
		require.True(t, ok)
		assert.Equal(t, []any{"a", "b"}, d.Keys())
		assert.Equal(t, []any{int64(1), int64(2)}, d.Values())
	})

	t.Run("key type", func(t *testing.T) {
		t.Parallel()
		v := processed(t, "array<int,string>", map[string]any{"0": "a", "1": "b"})
		assert.Equal(t, []any{"a", "b"}, v)

		v = processed(t, "array<int,string>", map[string]any{"5": "a"})
		d, ok := v.(*collection.Dictionary)
		require.True(t, ok)
		assert.Equal(t, []any{int64(5)}, d.Keys())
	})

	t.Run("arrayable", func(t *testing.T) {
		t.Parallel()
		v := processed(t, "array<int>", pair{a: "1", b: 2})
		d, ok := v.(*collection.Dictionary)
		require.True(t, ok)
		got, _ := d.Get("a")
		assert.Equal(t, int64(1), got)

		_, err := types.MustBuild("array", nil).Cast(pair{}, types.WithStrict(true))
		require.Error(t, err)
	})

	t.Run("source dictionary is untouched", func(t *testing.T) {
		t.Parallel()
		src, err := collection.DictionaryFromMap(map[string]any{"x": "1"})
		require.NoError(t, err)
		processed(t, "array<int>", src)
		got, _ := src.Get("x")
		assert.Equal(t, "1", got)
	})
}

func TestArray_Strings(t *testing.T) {
	t.Parallel()

	request := types.WithContext(types.ContextRequest)
	cli := types.WithContext(types.ContextInterface)

	t.Run("list", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []any{int64(1), int64(2), int64(3)}, processed(t, "int[]", "1, 2, 3", cli))
	})

	t.Run("empty string", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []any{}, processed(t, "string[]", "  ", cli))
	})

	t.Run("pairs", func(t *testing.T) {
		t.Parallel()
		v := processed(t, "array", "x: 1, y: 2", request)
		d, ok := v.(*collection.Dictionary)
		require.True(t, ok)
		assert.Equal(t, []any{"x", "y"}, d.Keys())
		assert.Equal(t, []any{"1", "2"}, d.Values())
	})

	t.Run("mixed keys continue numbering", func(t *testing.T) {
		t.Parallel()
		v := processed(t, "array", "a, 5: b, c", request)
		d, ok := v.(*collection.Dictionary)
		require.True(t, ok)
		assert.Equal(t, []any{int64(0), int64(5), int64(6)}, d.Keys())
	})

	t.Run("non associative keeps colons", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []any{"a:1", "b:2"}, processed(t, "string[]", "a:1,b:2", request))
	})

	t.Run("duplicate key", func(t *testing.T) {
		t.Parallel()
		_, err := types.MustBuild("array", nil).Cast("a:1,a:2", request)
		require.Error(t, err)

		f, ok := fault.As(err)
		require.True(t, ok)
		assert.Equal(t, "array.duplicate_key", f.Name())
		assert.Equal(t, `Duplicate key "a" found at position 2.`, f.Error())
		data, ok := f.Data(text.Technical)
		require.True(t, ok)
		assert.Equal(t, "a", data)
	})

	t.Run("internal context rejects strings", func(t *testing.T) {
		t.Parallel()
		_, err := types.MustBuild("array", nil).Cast("a,b")
		require.ErrorIs(t, err, fault.New("array.invalid"))
	})

	t.Run("strict rejects strings", func(t *testing.T) {
		t.Parallel()
		_, err := types.MustBuild("array", nil).Cast("a,b", request, types.WithStrict(true))
		require.ErrorIs(t, err, fault.New("array.invalid"))
	})
}

func TestArray_Errors(t *testing.T) {
	t.Parallel()

	t.Run("value at index", func(t *testing.T) {
		t.Parallel()
		_, err := types.MustBuild("int[]", nil).Cast([]any{1, "x"})
		f, ok := fault.As(err)
		require.True(t, ok)
		assert.Equal(t, "array.invalid_value", f.Name())
		assert.Equal(t, "Invalid value at index 1:\nOnly an integer number is allowed.", f.Error())
		assert.ErrorIs(t, err, fault.New("number.invalid"))

		data, _ := f.Data(text.Technical)
		assert.Equal(t, int64(1), data)
	})

	t.Run("value at key", func(t *testing.T) {
		t.Parallel()
		_, err := types.MustBuild("array<int>", nil).Cast(map[string]any{"a": "x"})
		f, ok := fault.As(err)
		require.True(t, ok)
		assert.Equal(t, "Invalid value at key \"a\":\nOnly an integer number is allowed.", f.Error())
	})

	t.Run("nested", func(t *testing.T) {
		t.Parallel()
		_, err := types.MustBuild("int[][]", nil).Cast([]any{[]any{1}, []any{2, "x"}})
		f, ok := fault.As(err)
		require.True(t, ok)
		assert.Equal(t,
			"Invalid value at index 1:\nInvalid value at index 1:\nOnly an integer number is allowed.",
			f.Error())
	})

	t.Run("key", func(t *testing.T) {
		t.Parallel()
		_, err := types.MustBuild("array<int,string>", nil).Cast(map[string]any{"x": "a"})
		require.ErrorIs(t, err, fault.New("array.invalid_key"))
	})

	t.Run("not an array", func(t *testing.T) {
		t.Parallel()
		_, err := types.MustBuild("array", nil).Cast(42)
		require.ErrorIs(t, err, fault.New("array.invalid"))
	})
}

func TestArray_Mutators(t *testing.T) {
	t.Parallel()

	unique := types.MustBuild("int[]", nil, types.WithMutator("unique", nil))
	_, err := unique.Cast([]any{1, "1"})
	require.ErrorIs(t, err, fault.New("unique.duplicate"))

	_, err = unique.Cast([]any{1, 2})
	require.NoError(t, err)

	counted := types.MustBuild("array", nil, types.WithMutator("max_count", property.Map{"count": 1}))
	_, err = counted.Cast(map[string]any{"a": 1, "b": 2})
	require.ErrorIs(t, err, fault.New("count.maximum"))

	_, err = types.MustBuild("array", nil, types.WithMutator("non_empty", nil)).Cast([]any{})
	require.Error(t, err)
}

func TestArray_Textify(t *testing.T) {
	t.Parallel()

	tx, err := types.MustBuild("array<bool>", nil).Textify(map[string]any{"a": "yes", "b": 0})
	require.NoError(t, err)
	assert.Equal(t, "yes, no", tx.String())
	assert.Equal(t, "true, false", tx.Render(text.Options{Level: text.Technical}))
}
