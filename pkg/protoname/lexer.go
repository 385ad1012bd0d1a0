package protoname

import "strings"

type tokenKind int

const (
	tokName tokenKind = iota
	tokLAngle
	tokRAngle
	tokLParen
	tokRParen
	tokPipe
	tokComma
	tokBrackets
)

type token struct {
	kind tokenKind
	text string
}

// tokenize splits expr on the delimiter set, keeping literal runs trimmed.
func tokenize(expr string) ([]token, bool) {
	var (
		toks []token
		lit  strings.Builder
	)
	flush := func() {
		if s := strings.TrimSpace(lit.String()); s != "" {
			toks = append(toks, token{kind: tokName, text: s})
		}
		lit.Reset()
	}

	for i := 0; i < len(expr); i++ {
		var kind tokenKind
		switch expr[i] {
		case '<':
			kind = tokLAngle
		case '>':
			kind = tokRAngle
		case '(':
			kind = tokLParen
		case ')':
			kind = tokRParen
		case '|':
			kind = tokPipe
		case ',':
			kind = tokComma
		case '[':
			if i+1 >= len(expr) || expr[i+1] != ']' {
				return nil, false
			}
			kind = tokBrackets
			i++
		case ']':
			return nil, false
		default:
			lit.WriteByte(expr[i])
			continue
		}
		flush()
		toks = append(toks, token{kind: kind, text: delimiterText(kind)})
	}
	flush()
	return toks, true
}

func delimiterText(k tokenKind) string {
	switch k {
	case tokLAngle:
		return "<"
	case tokRAngle:
		return ">"
	case tokLParen:
		return "("
	case tokRParen:
		return ")"
	case tokPipe:
		return "|"
	case tokComma:
		return ","
	case tokBrackets:
		return "[]"
	}
	return ""
}

// join renders tokens back into a normalised expression.
func join(toks []token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.text)
	}
	return b.String()
}
