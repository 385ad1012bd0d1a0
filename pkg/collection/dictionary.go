package collection

import (
	"bytes"
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"maps"
	"math"
	"reflect"
	"slices"
)

// Dictionary is an insertion-ordered key/value container.
type Dictionary struct {
	keys   []any
	values map[any]any
	opts   options
}

// NewDictionary creates an empty dictionary.
func NewDictionary(opts ...Option) *Dictionary {
	return &Dictionary{
		values: make(map[any]any),
		opts:   buildOptions(opts),
	}
}

// DictionaryFromMap builds a dictionary from a string-keyed map, ordering keys
// lexically so the result is deterministic.
func DictionaryFromMap(m map[string]any, opts ...Option) (*Dictionary, error) {
	d := NewDictionary(opts...)
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if err := d.Set(k, m[k]); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// DictionaryFromSlice builds a dictionary keyed by position.
func DictionaryFromSlice(s []any, opts ...Option) (*Dictionary, error) {
	d := NewDictionary(opts...)
	for i, v := range s {
		if err := d.Set(int64(i), v); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// NormalizeKey converts k into a dictionary key: strings stay strings and every
// integer kind becomes int64. Unsigned values above math.MaxInt64 are rejected.
func NormalizeKey(k any) (any, bool) {
	switch key := k.(type) {
	case string:
		return key, true
	case int64:
		return key, true
	}
	rv := reflect.ValueOf(k)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if rv.Uint() > math.MaxInt64 {
			return nil, false
		}
		return int64(rv.Uint()), true
	case reflect.String:
		return rv.String(), true
	}
	return nil, false
}

// Set stores value under key, appending the key if it is new.
func (d *Dictionary) Set(key, value any) error {
	nk, ok := NormalizeKey(key)
	if !ok {
		return fmt.Errorf("%w: %T", ErrInvalidKey, key)
	}
	if d.opts.keyEvaluator != nil {
		ek, err := evaluate(d.opts.keyEvaluator, nk)
		if err != nil {
			return errors.Join(ErrInvalidKey, err)
		}
		if nk, ok = NormalizeKey(ek); !ok {
			return fmt.Errorf("%w: %T", ErrInvalidKey, ek)
		}
	}
	v, err := evaluate(d.opts.valueEvaluator, value)
	if err != nil {
		return errors.Join(ErrInvalidValue, err)
	}
	if _, exists := d.values[nk]; !exists {
		d.keys = append(d.keys, nk)
	}
	d.values[nk] = v
	return nil
}

// Get returns the value stored under key.
func (d *Dictionary) Get(key any) (any, bool) {
	nk, ok := NormalizeKey(key)
	if !ok {
		return nil, false
	}
	v, ok := d.values[nk]
	return v, ok
}

// Has reports whether key is present.
func (d *Dictionary) Has(key any) bool {
	_, ok := d.Get(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (d *Dictionary) Delete(key any) bool {
	nk, ok := NormalizeKey(key)
	if !ok {
		return false
	}
	if _, exists := d.values[nk]; !exists {
		return false
	}
	delete(d.values, nk)
	d.keys = slices.DeleteFunc(d.keys, func(k any) bool { return k == nk })
	return true
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Keys returns the keys in insertion order.
func (d *Dictionary) Keys() []any {
	return slices.Clone(d.keys)
}

// Values returns the values in key order.
func (d *Dictionary) Values() []any {
	out := make([]any, 0, len(d.keys))
	for _, k := range d.keys {
		out = append(out, d.values[k])
	}
	return out
}

// All iterates over entries in insertion order.
func (d *Dictionary) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for _, k := range d.keys {
			if !yield(k, d.values[k]) {
				return
			}
		}
	}
}

// IsList reports whether the keys are exactly 0..Len()-1 in order.
func (d *Dictionary) IsList() bool {
	for i, k := range d.keys {
		if n, ok := k.(int64); !ok || n != int64(i) {
			return false
		}
	}
	return true
}

// Clone returns a shallow copy carrying the same evaluators.
func (d *Dictionary) Clone() *Dictionary {
	return &Dictionary{
		keys:   slices.Clone(d.keys),
		values: maps.Clone(d.values),
		opts:   d.opts,
	}
}

// SortKeys reorders entries: int64 keys first in numeric order, then strings.
func (d *Dictionary) SortKeys() {
	slices.SortStableFunc(d.keys, func(a, b any) int {
		ai, aInt := a.(int64)
		bi, bInt := b.(int64)
		switch {
		case aInt && bInt:
			return cmp.Compare(ai, bi)
		case aInt:
			return -1
		case bInt:
			return 1
		}
		return cmp.Compare(a.(string), b.(string))
	})
}

// ToArray returns the dictionary itself.
func (d *Dictionary) ToArray() *Dictionary {
	return d
}

// MarshalJSON encodes the dictionary as a JSON object in key order. Integer keys
// are written as their decimal strings.
func (d *Dictionary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(fmt.Sprint(k))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(d.values[k])
		if err != nil {
			return nil, fmt.Errorf("key %v: %w", k, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
