package text

import (
	"fmt"
	"strconv"
	"strings"
)

// Stringify renders a placeholder value. Lists are joined with ", ".
func Stringify(v any, quote bool, opts Options) string {
	q := func(s string) string {
		if quote {
			return strconv.Quote(s)
		}
		return s
	}

	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return q(val)
	case *Text:
		return q(val.Render(opts))
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []string:
		parts := make([]string, len(val))
		for i, s := range val {
			parts[i] = q(s)
		}
		return strings.Join(parts, ", ")
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = Stringify(item, quote, opts)
		}
		return strings.Join(parts, ", ")
	case fmt.Stringer:
		return q(val.String())
	case error:
		return q(val.Error())
	}
	return fmt.Sprint(v)
}
