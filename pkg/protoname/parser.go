package protoname

// parse interprets the outermost structure of toks.
func parse(toks []token) (Protoname, bool) {
	if !balanced(toks) {
		return Protoname{}, false
	}

	// Union takes precedence: split on depth-0 pipes.
	if alts, isUnion := splitTop(toks, tokPipe); isUnion {
		names := make([]string, 0, len(alts))
		for _, alt := range alts {
			if len(alt) == 0 || !operand(alt) {
				return Protoname{}, false
			}
			names = append(names, join(alt))
		}
		return Protoname{Kind: Union, Names: names}, true
	}

	if !operand(toks) {
		return Protoname{}, false
	}

	last := toks[len(toks)-1]
	switch {
	case last.kind == tokBrackets:
		return Protoname{Kind: Array, Names: []string{join(toks[:len(toks)-1])}}, true

	case toks[0].kind == tokLParen:
		return Protoname{Kind: Group, Names: []string{join(toks[1 : len(toks)-1])}}, true

	case len(toks) == 1:
		return Protoname{Kind: Simple, Names: []string{toks[0].text}}, true
	}

	// Generic: name < args >
	args, _ := splitTop(toks[2:len(toks)-1], tokComma)
	names := []string{toks[0].text}
	for _, arg := range args {
		if len(arg) == 0 {
			return Protoname{}, false
		}
		names = append(names, join(arg))
	}
	return Protoname{Kind: Generic, Names: names}, true
}

// operand reports whether toks form a single operand with optional [] suffixes:
// a name, name<...>, or (...).
func operand(toks []token) bool {
	for len(toks) > 0 && toks[len(toks)-1].kind == tokBrackets {
		toks = toks[:len(toks)-1]
	}
	if len(toks) == 0 {
		return false
	}

	switch toks[0].kind {
	case tokName:
		if len(toks) == 1 {
			return true
		}
		if toks[1].kind != tokLAngle || toks[len(toks)-1].kind != tokRAngle {
			return false
		}
		if closing(toks, 1) != len(toks)-1 {
			return false
		}
		return len(toks) > 3
	case tokLParen:
		return closing(toks, 0) == len(toks)-1 && len(toks) > 2
	}
	return false
}

// closing returns the index of the bracket matching toks[open].
func closing(toks []token, open int) int {
	depth := 0
	for i := open; i < len(toks); i++ {
		switch toks[i].kind {
		case tokLAngle, tokLParen:
			depth++
		case tokRAngle, tokRParen:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// balanced checks that brackets nest properly and pair up by kind.
func balanced(toks []token) bool {
	var stack []tokenKind
	for _, t := range toks {
		switch t.kind {
		case tokLAngle, tokLParen:
			stack = append(stack, t.kind)
		case tokRAngle, tokRParen:
			if len(stack) == 0 {
				return false
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if (t.kind == tokRAngle) != (open == tokLAngle) {
				return false
			}
		}
	}
	return len(stack) == 0
}

// splitTop splits toks on sep at depth 0 and reports whether sep occurred.
func splitTop(toks []token, sep tokenKind) ([][]token, bool) {
	var (
		parts [][]token
		start int
		depth int
		found bool
	)
	for i, t := range toks {
		switch t.kind {
		case tokLAngle, tokLParen:
			depth++
		case tokRAngle, tokRParen:
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, toks[start:i])
				start = i + 1
				found = true
			}
		}
	}
	parts = append(parts, toks[start:])
	return parts, found
}
