package protoname

import (
	"strings"
)

// Kind is the structural form of an expression.
type Kind int

const (
	// Simple is a bare name, e.g. "int".
	Simple Kind = iota
	// Generic is a parametrised name, e.g. "array<string>".
	Generic
	// Array is a postfix array, e.g. "int[]".
	Array
	// Union is a list of alternatives, e.g. "int|string".
	Union
	// Group is a parenthesised expression, e.g. "(int|string)".
	Group
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Simple:
		return "simple"
	case Generic:
		return "generic"
	case Array:
		return "array"
	case Union:
		return "union"
	case Group:
		return "group"
	}
	return "unknown"
}

// Protoname is a parsed type expression.
type Protoname struct {
	Kind  Kind
	Names []string
}

// String renders the expression back.
func (p Protoname) String() string {
	switch p.Kind {
	case Generic:
		if len(p.Names) == 0 {
			return ""
		}
		return p.Names[0] + "<" + strings.Join(p.Names[1:], ",") + ">"
	case Array:
		return p.first() + "[]"
	case Union:
		return strings.Join(p.Names, "|")
	case Group:
		return "(" + p.first() + ")"
	}
	return p.first()
}

func (p Protoname) first() string {
	if len(p.Names) == 0 {
		return ""
	}
	return p.Names[0]
}

// Parse parses expr. A parenthesised expression yields a Group.
func Parse(expr string) (Protoname, bool) {
	toks, ok := tokenize(expr)
	if !ok || len(toks) == 0 {
		return Protoname{}, false
	}
	return parse(toks)
}

// ParseDegrouped parses expr and replaces Group results by their inner expression
// until a non-group form is reached.
func ParseDegrouped(expr string) (Protoname, bool) {
	p, ok := Parse(expr)
	for ok && p.Kind == Group {
		p, ok = Parse(p.Names[0])
	}
	return p, ok
}
