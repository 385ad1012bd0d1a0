package property

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Map holds named configuration values.
type Map map[string]any

// Has reports whether key is set, even to nil.
func (m Map) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// Value returns the raw value stored under key.
func (m Map) Value(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// Keys returns the property names in sorted order.
func (m Map) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

// Without returns a copy of m without the given keys.
func (m Map) Without(keys ...string) Map {
	out := make(Map, len(m))
	for k, v := range m {
		if !slices.Contains(keys, k) {
			out[k] = v
		}
	}
	return out
}

// Check fails with ErrUnknownProperty for the first key not listed in allowed.
func (m Map) Check(allowed ...string) error {
	for _, k := range m.Keys() {
		if !slices.Contains(allowed, k) {
			return fmt.Errorf("%w: %q", ErrUnknownProperty, k)
		}
	}
	return nil
}

// Require fails with ErrMissingProperty unless every key is present.
func (m Map) Require(keys ...string) error {
	for _, k := range keys {
		if !m.Has(k) {
			return fmt.Errorf("%w: %q", ErrMissingProperty, k)
		}
	}
	return nil
}

// Bool returns the boolean stored under key or def when absent.
func (m Map) Bool(key string, def bool) (bool, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return def, nil
	}
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return def, invalid(key, "a boolean", v)
		}
		return parsed, nil
	}
	return def, invalid(key, "a boolean", v)
}

// Int returns the integer stored under key or def when absent.
// Whole floats and numeric strings are accepted.
func (m Map) Int(key string, def int) (int, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return def, nil
	}
	n, ok := toInt(v)
	if !ok {
		return def, invalid(key, "an integer", v)
	}
	return n, nil
}

// OptionalInt is like Int but reports absence with a nil pointer.
func (m Map) OptionalInt(key string) (*int, error) {
	if v, ok := m[key]; !ok || v == nil {
		return nil, nil
	}
	n, err := m.Int(key, 0)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Float returns the number stored under key or def when absent.
func (m Map) Float(key string, def float64) (float64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return def, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return def, invalid(key, "a number", v)
	}
	return f, nil
}

// OptionalFloat is like Float but reports absence with a nil pointer.
func (m Map) OptionalFloat(key string) (*float64, error) {
	if v, ok := m[key]; !ok || v == nil {
		return nil, nil
	}
	f, err := m.Float(key, 0)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// String returns the string stored under key or def when absent.
func (m Map) String(key, def string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return def, nil
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case fmt.Stringer:
		return s.String(), nil
	}
	return def, invalid(key, "a string", v)
}

// Strings returns the string list stored under key. A single string becomes a
// one-element list.
func (m Map) Strings(key string) ([]string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch s := v.(type) {
	case string:
		return []string{s}, nil
	case []string:
		return slices.Clone(s), nil
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil, invalid(key, "a list of strings", v)
			}
			out = append(out, str)
		}
		return out, nil
	}
	return nil, invalid(key, "a list of strings", v)
}

func invalid(key, want string, got any) error {
	return fmt.Errorf("%w: %q must be %s, got %T", ErrInvalidProperty, key, want, got)
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32, float64:
		f, _ := toFloat(n)
		if f != math.Trunc(f) {
			return 0, false
		}
		return int(f), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	if i, ok := toInt(v); ok {
		return float64(i), true
	}
	return 0, false
}
