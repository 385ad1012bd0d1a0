package types

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/dmitrymomot/kit/pkg/collection"
	"github.com/dmitrymomot/kit/pkg/fault"
	"github.com/dmitrymomot/kit/pkg/mutator"
	"github.com/dmitrymomot/kit/pkg/property"
	"github.com/dmitrymomot/kit/pkg/text"
)

// Array accepts lists and keyed arrays: []any and other slices, maps (ordered by
// key), *collection.Dictionary, *collection.Vector and Arrayable values. Outside the
// internal context a comma-separated string is also accepted, with "key: value"
// pairs unless NonAssociative is set.
//
// Lists come out as []any and keyed arrays as *collection.Dictionary.
// NonAssociative arrays always come out as []any.
type Array struct {
	Type           *Type
	KeyType        *Type
	NonAssociative bool
}

var arrayMutators = []string{"count", "min_count", "max_count", "unique", "non_empty"}

// Name implements Prototype.
func (a Array) Name() string {
	switch {
	case a.NonAssociative && a.Type == nil:
		return "list"
	case a.NonAssociative:
		name := a.Type.String()
		if strings.ContainsAny(name, "|?") {
			name = "(" + name + ")"
		}
		return name + "[]"
	case a.Type == nil && a.KeyType == nil:
		return "array"
	}
	value := "any"
	if a.Type != nil {
		value = a.Type.String()
	}
	if a.KeyType != nil {
		return "array<" + a.KeyType.String() + "," + value + ">"
	}
	return "array<" + value + ">"
}

// Process implements Prototype.
func (a Array) Process(value *any, env Env) *fault.Error {
	entries, ferr := a.entries(*value, env)
	if ferr != nil {
		return ferr
	}

	out := collection.NewDictionary()
	position := 0
	for k, v := range entries.All() {
		position++
		key := k
		if a.KeyType != nil && !a.NonAssociative {
			kv := k
			if err := a.KeyType.process(&kv, env); err != nil {
				return elementError("array.invalid_key", "Invalid key {{key}}:", k, err)
			}
			nk, ok := collection.NormalizeKey(kv)
			if !ok {
				return elementError("array.invalid_key", "Invalid key {{key}}:", k,
					invalid("array.invalid_key", "Only an integer or a string can be used as a key."))
			}
			key = nk
		}
		if a.Type != nil {
			if err := a.Type.process(&v, env); err != nil {
				if _, isIndex := k.(int64); isIndex {
					return elementError("array.invalid_value", "Invalid value at index {{key}}:", k, err)
				}
				return elementError("array.invalid_value", "Invalid value at key {{key}}:", k, err)
			}
		}
		if out.Has(key) {
			return duplicateKeyError(key, position)
		}
		if err := out.Set(key, v); err != nil {
			return fault.Wrap("array.invalid", err)
		}
	}

	if a.NonAssociative || out.IsList() {
		*value = out.Values()
		return nil
	}
	*value = out
	return nil
}

// entries converts the input into a dictionary without validating elements.
func (a Array) entries(v any, env Env) (*collection.Dictionary, *fault.Error) {
	switch val := v.(type) {
	case []any:
		d, _ := collection.DictionaryFromSlice(val)
		return d, nil
	case *collection.Dictionary:
		if val != nil {
			return val, nil
		}
	case *collection.Vector:
		if val != nil {
			return val.ToArray(), nil
		}
	case string:
		if !env.Strict && env.Context != ContextInternal {
			return parseList(val, a.NonAssociative)
		}
	case Arrayable:
		if !env.Strict {
			if d := val.ToArray(); d != nil {
				return d, nil
			}
		}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return collection.NewDictionary(), nil
		}
		d := collection.NewDictionary()
		for i := range rv.Len() {
			_ = d.Set(int64(i), rv.Index(i).Interface())
		}
		return d, nil
	case reflect.Map:
		d := collection.NewDictionary()
		it := rv.MapRange()
		for it.Next() {
			if err := d.Set(it.Key().Interface(), it.Value().Interface()); err != nil {
				return nil, arrayError(env)
			}
		}
		d.SortKeys()
		return d, nil
	}
	return nil, arrayError(env)
}

// parseList parses "a, b, c" or "k1: v1, k2: v2". Pairs without a key get the next
// integer key.
func parseList(s string, nonAssociative bool) (*collection.Dictionary, *fault.Error) {
	d := collection.NewDictionary()
	s = strings.TrimSpace(s)
	if s == "" {
		return d, nil
	}

	var next int64
	for i, part := range strings.Split(s, ",") {
		var key any
		val := strings.TrimSpace(part)
		if !nonAssociative {
			if k, v, found := strings.Cut(part, ":"); found {
				key = listKey(strings.TrimSpace(k))
				val = strings.TrimSpace(v)
			}
		}
		if key == nil {
			key = next
		}
		if d.Has(key) {
			return nil, duplicateKeyError(key, i+1)
		}
		_ = d.Set(key, val)
		if n, ok := key.(int64); ok && n >= next {
			next = n + 1
		}
	}
	return d, nil
}

func listKey(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return s
}

// Textify implements Textifier. Elements are joined with ", ".
func (a Array) Textify(value any, env Env) (*text.Text, error) {
	var values []any
	switch v := value.(type) {
	case []any:
		values = v
	case *collection.Dictionary:
		values = v.Values()
	}

	parts := make([]any, len(values))
	for i, v := range values {
		var (
			t   *text.Text
			err error
		)
		if a.Type != nil {
			t, err = a.Type.textify(v, env)
		} else {
			t, err = defaultTextify(v)
		}
		if err != nil {
			return nil, err
		}
		parts[i] = t
	}
	return text.New("{{values}}").SetParameter("values", parts).SetLocalize(false), nil
}

// ProduceMutator implements MutatorProducer.
func (Array) ProduceMutator(name string, props property.Map) (mutator.Mutator, bool, error) {
	return produceFrom(arrayMutators, name, props)
}

func arrayError(env Env) *fault.Error {
	if env.Strict {
		return invalid("array.invalid", "Only an array is strictly allowed.")
	}
	t := text.New("Only an array is allowed.").SetDomain(Domain)
	if env.Context != ContextInternal {
		t.SetString(text.Technical, "Only an array is allowed, which may also be given as a "+
			"comma-separated list such as \"a, b, c\" or \"k1: v1, k2: v2\".")
	}
	return fault.New("array.invalid").WithText(t)
}

func duplicateKeyError(key any, position int) *fault.Error {
	t := text.New("Duplicate key {{key}} found at position {{position}}.").
		SetParameter("key", key).
		SetParameter("position", position).
		SetPlaceholderFlags("key", text.FlagQuote).
		SetDomain(Domain)
	return fault.New("array.duplicate_key").WithText(t).WithData(text.Technical, key)
}

func elementError(name, message string, key any, child *fault.Error) *fault.Error {
	t := text.New(message).
		SetParameter("key", key).
		SetPlaceholderFlags("key", text.FlagQuote).
		SetDomain(Domain)
	if child.HasText() {
		t.AppendText(child.Text())
	}
	return fault.New(name).WithText(t).WithCause(child).WithData(text.Technical, key)
}
