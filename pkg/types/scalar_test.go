package types_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kit/pkg/text"
	"github.com/dmitrymomot/kit/pkg/types"
)

type scalarCase struct {
	name    string
	input   any
	opts    []types.ProcessOption
	want    any
	wantErr string
}

func runScalarCases(t *testing.T, expr string, tests []scalarCase) {
	t.Helper()
	typ := types.MustBuild(expr, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := tt.input
			err := typ.Process(&v, tt.opts...)
			if tt.wantErr != "" {
				require.NotNil(t, err)
				assert.Equal(t, tt.wantErr, err.Name())
				assert.Equal(t, tt.input, v)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

type celsius float64

type id int64

func (i id) ToInteger() int64 { return int64(i) }

type label string

func (l label) String() string { return "label:" + string(l) }

func TestBoolean(t *testing.T) {
	t.Parallel()

	request := []types.ProcessOption{types.WithContext(types.ContextRequest)}
	strict := []types.ProcessOption{types.WithStrict(true)}

	runScalarCases(t, "bool", []scalarCase{
		{name: "true", input: true, want: true},
		{name: "yes", input: "yes", want: true},
		{name: "padded on", input: " On ", want: true},
		{name: "t", input: "T", want: true},
		{name: "one string", input: "1", want: true},
		{name: "F", input: "F", want: false},
		{name: "off", input: "off", want: false},
		{name: "no", input: "NO", want: false},
		{name: "unknown string", input: "maybe", wantErr: "boolean.invalid"},
		{name: "empty string", input: "", wantErr: "boolean.invalid"},
		{name: "internal zero", input: 0, want: false},
		{name: "internal two", input: 2, want: true},
		{name: "internal empty list", input: []any{}, want: false},
		{name: "internal struct", input: struct{}{}, want: true},
		{name: "request one", input: 1, opts: request, want: true},
		{name: "request zero float", input: 0.0, opts: request, want: false},
		{name: "request two", input: 2, opts: request, wantErr: "boolean.invalid"},
		{name: "request list", input: []any{1}, opts: request, wantErr: "boolean.invalid"},
		{name: "strict string", input: "true", opts: strict, wantErr: "boolean.invalid"},
		{name: "strict bool", input: false, opts: strict, want: false},
	})
}

func TestNumber(t *testing.T) {
	t.Parallel()

	strict := []types.ProcessOption{types.WithStrict(true)}
	lang := func(tag string) []types.ProcessOption {
		return []types.ProcessOption{types.WithLanguage(tag)}
	}

	t.Run("int", func(t *testing.T) {
		t.Parallel()
		runScalarCases(t, "int", []scalarCase{
			{name: "string", input: "42", want: int64(42)},
			{name: "padded", input: " 42 ", want: int64(42)},
			{name: "negative", input: "-7", want: int64(-7)},
			{name: "grouped", input: "1,000", want: int64(1000)},
			{name: "negative grouped", input: "-1,000,000", want: int64(-1000000)},
			{name: "kilo", input: "2k", want: int64(2000)},
			{name: "mega fraction", input: "1.5M", want: int64(1500000)},
			{name: "whole float", input: 3.0, want: int64(3)},
			{name: "int32", input: int32(7), want: int64(7)},
			{name: "uint8", input: uint8(3), want: int64(3)},
			{name: "named float", input: celsius(21), want: int64(21)},
			{name: "integerable", input: id(9), want: int64(9)},
			{name: "fraction", input: "1.5", wantErr: "number.not_integer"},
			{name: "float fraction", input: 2.5, wantErr: "number.not_integer"},
			{name: "uint64 overflow", input: uint64(math.MaxUint64), wantErr: "number.out_of_range"},
			{name: "huge string", input: "99999999999999999999", wantErr: "number.out_of_range"},
			{name: "huge float", input: 1e19, wantErr: "number.out_of_range"},
			{name: "strict uint64 overflow", input: uint64(math.MaxUint64), opts: strict, wantErr: "number.out_of_range"},
			{name: "garbage", input: "abc", wantErr: "number.invalid"},
			{name: "bad grouping", input: "1,00", wantErr: "number.invalid"},
			{name: "empty", input: "", wantErr: "number.invalid"},
			{name: "bool", input: true, wantErr: "number.invalid"},
			{name: "strict int", input: 5, opts: strict, want: int64(5)},
			{name: "strict float", input: 1.0, opts: strict, wantErr: "number.invalid"},
			{name: "strict string", input: "5", opts: strict, wantErr: "number.invalid"},
		})
	})

	t.Run("float", func(t *testing.T) {
		t.Parallel()
		runScalarCases(t, "float", []scalarCase{
			{name: "int", input: 1, want: 1.0},
			{name: "string", input: "3", want: 3.0},
			{name: "grouped", input: "1,000.5", want: 1000.5},
			{name: "german", input: "1.234,5", opts: lang("de"), want: 1234.5},
			{name: "german region", input: "1.234,5", opts: lang("de-AT"), want: 1234.5},
			{name: "swiss", input: "1'234.5", opts: lang("de-CH"), want: 1234.5},
			{name: "french", input: "1\u202f234,5", opts: lang("fr"), want: 1234.5},
			{name: "french space", input: "1\u00a0234,5", opts: lang("fr-FR"), want: 1234.5},
			{name: "english", input: "1,234.5", opts: lang("en-US"), want: 1234.5},
			{name: "german comma decimal", input: "1,5", opts: lang("de"), want: 1.5},
			{name: "unknown language", input: "2.5", opts: lang("not a tag"), want: 2.5},
			{name: "strict float", input: 1.5, opts: strict, want: 1.5},
			{name: "strict int", input: 1, opts: strict, wantErr: "number.invalid"},
		})
	})

	t.Run("number", func(t *testing.T) {
		t.Parallel()
		runScalarCases(t, "number", []scalarCase{
			{name: "fraction", input: 2.5, want: 2.5},
			{name: "whole float", input: 2.0, want: int64(2)},
			{name: "string fraction", input: "0.25", want: 0.25},
			{name: "strict keeps float", input: 2.0, opts: strict, want: 2.0},
			{name: "strict int", input: int16(4), opts: strict, want: int64(4)},
		})
	})

	t.Run("textify", func(t *testing.T) {
		t.Parallel()
		tx, err := types.MustBuild("float", nil).Textify("1.25")
		require.NoError(t, err)
		assert.Equal(t, "1.25", tx.String())
	})
}

func TestString(t *testing.T) {
	t.Parallel()

	strict := []types.ProcessOption{types.WithStrict(true)}

	t.Run("string", func(t *testing.T) {
		t.Parallel()
		runScalarCases(t, "string", []scalarCase{
			{name: "string", input: "abc", want: "abc"},
			{name: "int", input: 12, want: "12"},
			{name: "float", input: 1.5, want: "1.5"},
			{name: "bool", input: true, want: "true"},
			{name: "stringer", input: label("x"), want: "label:x"},
			{name: "bytes", input: []byte("x"), wantErr: "string.invalid"},
			{name: "nil", input: nil, wantErr: "string.invalid"},
			{name: "list", input: []any{"a"}, wantErr: "string.invalid"},
			{name: "strict int", input: 12, opts: strict, wantErr: "string.invalid"},
			{name: "latin1 kept", input: "\xe9t\xe9", want: "\xe9t\xe9"},
		})
	})

	t.Run("ustring", func(t *testing.T) {
		t.Parallel()
		runScalarCases(t, "ustring", []scalarCase{
			{name: "bytes", input: []byte("x"), want: "x"},
			{name: "latin1 decoded", input: "\xe9t\xe9", want: "été"},
			{name: "bom stripped", input: "\ufeffabc", want: "abc"},
			{name: "utf8 kept", input: "日本", want: "日本"},
		})
	})
}

func TestText(t *testing.T) {
	t.Parallel()

	typ := types.MustBuild("text", nil)

	t.Run("text passes through", func(t *testing.T) {
		t.Parallel()
		tx := text.New("Hello {{name}}.").SetParameter("name", "Ann")
		v, err := typ.Cast(tx)
		require.NoError(t, err)
		assert.Same(t, tx, v)
	})

	t.Run("scalars become raw texts", func(t *testing.T) {
		t.Parallel()
		v, err := typ.Cast(42)
		require.NoError(t, err)
		require.IsType(t, &text.Text{}, v)
		assert.Equal(t, "42", v.(*text.Text).String())

		v, err = typ.Cast(label("y"))
		require.NoError(t, err)
		assert.Equal(t, "label:y", v.(*text.Text).String())
	})

	t.Run("rejected", func(t *testing.T) {
		t.Parallel()
		_, err := typ.Cast("hi", types.WithStrict(true))
		require.Error(t, err)
		_, err = typ.Cast((*text.Text)(nil))
		require.Error(t, err)
		_, err = typ.Cast([]any{})
		require.Error(t, err)
	})
}
