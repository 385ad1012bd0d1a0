package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Expression records a type expression under the key "expression".
func Expression(expr string) slog.Attr {
	return slog.String("expression", expr)
}

// Prototype records the resolved prototype name under the key "prototype".
func Prototype(name string) slog.Attr {
	return slog.String("prototype", name)
}

// Mutator records a mutator name under the key "mutator".
func Mutator(name string) slog.Attr {
	return slog.String("mutator", name)
}

// Language records a language tag under the key "language".
// An empty tag returns an empty Attr.
func Language(tag string) slog.Attr {
	if tag == "" {
		return slog.Attr{}
	}
	return slog.String("language", tag)
}

// Path records a file path under the key "path".
func Path(path string) slog.Attr {
	return slog.String("path", path)
}
