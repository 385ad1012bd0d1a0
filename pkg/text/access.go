package text

import "strconv"

// Accessor exposes named fields to placeholders such as {{user.name}}.
type Accessor interface {
	Access(name string) (any, bool)
}

// Caller exposes zero-argument getters to placeholders such as {{user.Name()}}.
type Caller interface {
	Call(name string) (any, bool)
}

type keyed interface {
	Get(key any) (any, bool)
}

type indexed interface {
	Get(index int) (any, bool)
}

func access(v any, s step) (any, bool) {
	if s.call {
		if c, ok := v.(Caller); ok {
			return c.Call(s.name)
		}
		return nil, false
	}

	switch m := v.(type) {
	case map[string]any:
		r, ok := m[s.name]
		return r, ok
	case map[string]string:
		r, ok := m[s.name]
		return r, ok
	case []any:
		return index(m, s.name)
	case []string:
		if i, ok := position(s.name, len(m)); ok {
			return m[i], true
		}
		return nil, false
	case Accessor:
		return m.Access(s.name)
	case keyed:
		if r, ok := m.Get(s.name); ok {
			return r, true
		}
		if i, err := strconv.ParseInt(s.name, 10, 64); err == nil {
			return m.Get(i)
		}
		return nil, false
	case indexed:
		if i, err := strconv.Atoi(s.name); err == nil {
			return m.Get(i)
		}
	}
	return nil, false
}

func index(s []any, name string) (any, bool) {
	if i, ok := position(name, len(s)); ok {
		return s[i], true
	}
	return nil, false
}

func position(name string, n int) (int, bool) {
	i, err := strconv.Atoi(name)
	if err != nil || i < 0 || i >= n {
		return 0, false
	}
	return i, true
}
