package types

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/dmitrymomot/kit/pkg/fault"
	"github.com/dmitrymomot/kit/pkg/mutator"
	"github.com/dmitrymomot/kit/pkg/property"
	"github.com/dmitrymomot/kit/pkg/text"
)

// NumberKind restricts a Number to integers or floats.
type NumberKind uint8

const (
	// AnyNumber accepts integers and floats.
	AnyNumber NumberKind = iota
	// IntegerNumber accepts whole numbers only and yields int64.
	IntegerNumber
	// FloatNumber yields float64.
	FloatNumber
)

// Number accepts integers and floats and yields int64 for whole values and float64
// otherwise. Outside strict mode it also parses numeric strings, honouring the
// separators of the call language, and human-readable magnitudes such as "2k" or
// "1.5M".
type Number struct {
	Kind NumberKind
}

var numberMutators = []string{"range", "minimum", "maximum", "positive", "negative", "multiple"}

var magnitudes = map[byte]float64{
	'k': 1e3, 'K': 1e3,
	'M': 1e6,
	'G': 1e9, 'B': 1e9,
	'T': 1e12,
}

// Name implements Prototype.
func (n Number) Name() string {
	switch n.Kind {
	case IntegerNumber:
		return "int"
	case FloatNumber:
		return "float"
	}
	return "number"
}

// Process implements Prototype.
func (n Number) Process(value *any, env Env) *fault.Error {
	if env.Strict {
		return n.processStrict(value)
	}

	result, ok := coerceNumber(*value, env.Language)
	if !ok {
		return numberError(n.Kind, false)
	}
	switch n.Kind {
	case IntegerNumber:
		if f, isFloat := result.(float64); isFloat {
			if f == math.Trunc(f) {
				return outOfRangeError()
			}
			return notIntegerError()
		}
	case FloatNumber:
		if i, isInt := result.(int64); isInt {
			result = float64(i)
		}
	}
	*value = result
	return nil
}

func (n Number) processStrict(value *any) *fault.Error {
	rv := reflect.ValueOf(*value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n.Kind == FloatNumber {
			break
		}
		if i, ok := toInt64(rv); ok {
			*value = i
			return nil
		}
		return outOfRangeError()
	case reflect.Float32, reflect.Float64:
		if n.Kind == IntegerNumber {
			break
		}
		*value = rv.Float()
		return nil
	}
	return numberError(n.Kind, true)
}

// Textify implements Textifier.
func (Number) Textify(value any, _ Env) (*text.Text, error) {
	s, _ := scalarString(value)
	return text.Raw(s), nil
}

// ProduceMutator implements MutatorProducer.
func (Number) ProduceMutator(name string, props property.Map) (mutator.Mutator, bool, error) {
	return produceFrom(numberMutators, name, props)
}

func coerceNumber(v any, lang string) (any, bool) {
	switch val := v.(type) {
	case Integerable:
		return val.ToInteger(), true
	case Floatable:
		return normalizeFloat(val.ToFloat()), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if i, ok := toInt64(rv); ok {
			return i, true
		}
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return normalizeFloat(rv.Float()), true
	case reflect.String:
		return parseNumber(rv.String(), separatorsFor(lang))
	}
	return nil, false
}

func toInt64(rv reflect.Value) (int64, bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	}
	return 0, false
}

// normalizeFloat turns whole floats that fit into an int64.
func normalizeFloat(f float64) any {
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f)
	}
	return f
}

// parseNumber parses a locale-formatted number with an optional magnitude suffix.
func parseNumber(s string, seps separators) (any, bool) {
	s = strings.TrimSpace(s)
	mult := 1.0
	if n := len(s); n > 1 {
		if m, ok := magnitudes[s[n-1]]; ok {
			mult = m
			s = strings.TrimSpace(s[:n-1])
		}
	}

	norm, ok := normalizeNumber(s, seps)
	if !ok {
		return nil, false
	}
	if i, err := strconv.ParseInt(norm, 10, 64); err == nil && mult == 1 {
		return i, true
	}
	f, err := strconv.ParseFloat(norm, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, false
	}
	return normalizeFloat(f * mult), true
}

// normalizeNumber rewrites s into the form accepted by strconv.
func normalizeNumber(s string, seps separators) (string, bool) {
	if s == "" {
		return "", false
	}
	if seps.decimal == "." && strings.Trim(s, "0123456789+-.eE") == "" {
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			return s, true
		}
	}

	sign := ""
	if s[0] == '+' || s[0] == '-' {
		sign, s = s[:1], s[1:]
	}
	intPart, fracPart, hasDecimal := s, "", false
	if i := strings.LastIndex(s, seps.decimal); i >= 0 {
		intPart, fracPart, hasDecimal = s[:i], s[i+len(seps.decimal):], true
	}

	if groups := splitGroups(intPart, seps.group); len(groups) > 1 {
		if l := len(groups[0]); l < 1 || l > 3 {
			return "", false
		}
		for _, g := range groups[1:] {
			if len(g) != 3 {
				return "", false
			}
		}
		intPart = strings.Join(groups, "")
	}

	if !digits(intPart) || !digits(fracPart) || intPart == "" && fracPart == "" {
		return "", false
	}
	if hasDecimal {
		return sign + intPart + "." + fracPart, true
	}
	return sign + intPart, true
}

func splitGroups(s string, group []string) []string {
	for _, g := range group {
		if strings.Contains(s, g) {
			return strings.Split(s, g)
		}
	}
	return []string{s}
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func numberError(kind NumberKind, strict bool) *fault.Error {
	what := "a number"
	switch kind {
	case IntegerNumber:
		what = "an integer number"
	case FloatNumber:
		what = "a float number"
	}
	if strict {
		return invalid("number.invalid", "Only "+what+" is strictly allowed.")
	}
	t := text.New("Only "+what+" is allowed.").
		SetString(text.Technical, "Only "+what+" is allowed, which may be given as a numeric string "+
			"such as \"1000.5\" or \"1,000.5\", or as a human-readable string such as \"1k\" or \"1.5M\".").
		SetDomain(Domain)
	return fault.New("number.invalid").WithText(t)
}

func outOfRangeError() *fault.Error {
	t := text.New("The given number is out of range.").
		SetString(text.Technical, "Only integer numbers between -9223372036854775808 and 9223372036854775807 are allowed.").
		SetDomain(Domain)
	return fault.New("number.out_of_range").WithText(t)
}

func notIntegerError() *fault.Error {
	return invalid("number.not_integer", "Only an integer number is allowed.")
}
