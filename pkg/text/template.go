package text

import (
	"strings"
	"sync"
	"sync/atomic"
)

// step is one accessor in a placeholder chain.
type step struct {
	name string
	call bool
}

type placeholder struct {
	raw   string
	steps []step
}

// segment is either a literal run or a placeholder.
type segment struct {
	literal     string
	placeholder *placeholder
}

// maxCachedTemplates bounds templateCache. Templates beyond it are parsed on
// every render.
const maxCachedTemplates = 4096

var (
	templateCache  sync.Map // string -> []segment
	cachedTemplate atomic.Int64
)

// parseTemplate splits tmpl into segments. Only cacheable templates are kept,
// and only until the cache is full.
func parseTemplate(tmpl string, cacheable bool) []segment {
	if !strings.Contains(tmpl, "{{") {
		if tmpl == "" {
			return nil
		}
		return []segment{{literal: tmpl}}
	}
	if cacheable {
		if cached, ok := templateCache.Load(tmpl); ok {
			return cached.([]segment)
		}
	}

	var segments []segment
	rest := tmpl
	for rest != "" {
		start := strings.Index(rest, "{{")
		if start < 0 {
			segments = appendLiteral(segments, rest)
			break
		}
		end := strings.Index(rest[start+2:], "}}")
		if end < 0 {
			segments = appendLiteral(segments, rest)
			break
		}
		end += start + 2

		segments = appendLiteral(segments, rest[:start])
		raw := rest[start : end+2]
		if p, ok := parsePlaceholder(rest[start+2 : end]); ok {
			p.raw = raw
			segments = append(segments, segment{placeholder: p})
		} else {
			segments = appendLiteral(segments, raw)
		}
		rest = rest[end+2:]
	}

	if cacheable && cachedTemplate.Load() < maxCachedTemplates {
		if _, loaded := templateCache.LoadOrStore(tmpl, segments); !loaded {
			cachedTemplate.Add(1)
		}
	}
	return segments
}

func appendLiteral(segments []segment, s string) []segment {
	if s == "" {
		return segments
	}
	if n := len(segments); n > 0 && segments[n-1].placeholder == nil {
		segments[n-1].literal += s
		return segments
	}
	return append(segments, segment{literal: s})
}

func parsePlaceholder(body string) (*placeholder, bool) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, false
	}
	parts := strings.Split(body, ".")
	p := &placeholder{steps: make([]step, 0, len(parts))}
	for _, part := range parts {
		s := step{name: part}
		if name, ok := strings.CutSuffix(part, "()"); ok {
			s = step{name: name, call: true}
		}
		if !validName(s.name) {
			return nil, false
		}
		p.steps = append(p.steps, s)
	}
	return p, true
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r == '_', r == '-':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
