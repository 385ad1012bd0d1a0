package mutator

import (
	"reflect"

	"github.com/dmitrymomot/kit/pkg/collection"
	"github.com/dmitrymomot/kit/pkg/fault"
	"github.com/dmitrymomot/kit/pkg/text"
)

// Count requires an array with exactly n elements.
func Count(n int) Mutator {
	return countCheck(n, "count.exact", func(c int) bool { return c == n },
		"The given value must have exactly {{count}} element.",
		"The given value must have exactly {{count}} elements.")
}

// MinCount requires an array with at least n elements.
func MinCount(n int) Mutator {
	return countCheck(n, "count.minimum", func(c int) bool { return c >= n },
		"The given value must have at least {{count}} element.",
		"The given value must have at least {{count}} elements.")
}

// MaxCount requires an array with at most n elements.
func MaxCount(n int) Mutator {
	return countCheck(n, "count.maximum", func(c int) bool { return c <= n },
		"The given value must have at most {{count}} element.",
		"The given value must have at most {{count}} elements.")
}

func countCheck(n int, name string, ok func(int) bool, singular, plural string) Mutator {
	return Func(func(value *any) *fault.Error {
		c, counted := countOf(*value)
		if !counted {
			return unsupported(*value)
		}
		if ok(c) {
			return nil
		}
		t := text.New(singular).
			SetPluralString(text.EndUser, plural).
			SetPluralNumber(float64(n)).
			SetDomain(Domain)
		return fault.New(name).WithText(t).WithData(text.Technical, c)
	})
}

// Unique rejects arrays containing the same value twice. Comparable elements,
// pointers included, match with ==; slices and maps match with reflect.DeepEqual.
// Values of different types never match.
func Unique() Mutator {
	return Func(func(value *any) *fault.Error {
		values, ok := elementsOf(*value)
		if !ok {
			return unsupported(*value)
		}
		seen := make(map[any]int, len(values))
		var deep []int
		for i, v := range values {
			first, dup := -1, false
			if v == nil || reflect.ValueOf(v).Comparable() {
				if first, dup = seen[v]; !dup {
					seen[v] = i
				}
			} else {
				for _, j := range deep {
					if reflect.DeepEqual(values[j], v) {
						first, dup = j, true
						break
					}
				}
				if !dup {
					deep = append(deep, i)
				}
			}
			if dup {
				t := text.New("The given value must contain only unique elements.").
					SetString(text.Technical, "Element {{index}} repeats element {{first}}.").
					SetParameter("index", i).
					SetParameter("first", first).
					SetDomain(Domain)
				return fault.New("unique.duplicate").WithText(t)
			}
		}
		return nil
	})
}

func countOf(v any) (int, bool) {
	switch a := v.(type) {
	case []any:
		return len(a), true
	case *collection.Dictionary:
		return a.Len(), true
	case *collection.Vector:
		return a.Len(), true
	case nil:
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	}
	return 0, false
}

func elementsOf(v any) ([]any, bool) {
	switch a := v.(type) {
	case []any:
		return a, true
	case *collection.Dictionary:
		return a.Values(), true
	case *collection.Vector:
		return a.Values(), true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
