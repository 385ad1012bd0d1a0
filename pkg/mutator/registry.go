package mutator

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/dmitrymomot/kit/pkg/property"
)

// Factory builds a mutator from its properties.
type Factory func(props property.Map) (Mutator, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register makes a factory available under name, replacing any previous one.
func Register(name string, factory Factory) {
	if name == "" || factory == nil {
		panic("mutator: Register requires a name and a factory")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[name]
	return f, ok
}

// Names returns the registered mutator names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return slices.Sorted(maps.Keys(registry))
}

// Build creates the mutator registered under name.
func Build(name string, props property.Map) (Mutator, error) {
	factory, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMutator, name)
	}
	m, err := factory(props)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidMutator, name, err)
	}
	return m, nil
}

func init() {
	Register("trim", func(p property.Map) (Mutator, error) {
		if err := p.Check("chars", "unicode"); err != nil {
			return nil, err
		}
		chars, err := p.String("chars", "")
		if err != nil {
			return nil, err
		}
		return Trim(chars), nil
	})
	Register("lowercase", caseFactory(Lowercase))
	Register("uppercase", caseFactory(Uppercase))
	Register("length", lengthFactory(Length))
	Register("min_length", lengthFactory(MinLength))
	Register("max_length", lengthFactory(MaxLength))
	Register("truncate", truncateFactory)
	Register("wildcards", wildcardsFactory)
	Register("pattern", patternFactory)
	Register("non_empty", func(p property.Map) (Mutator, error) {
		if err := p.Check("unicode"); err != nil {
			return nil, err
		}
		return NonEmpty(), nil
	})
	Register("uuid", func(p property.Map) (Mutator, error) {
		if err := p.Check("unicode", "no_dashes"); err != nil {
			return nil, err
		}
		noDashes, err := p.Bool("no_dashes", false)
		if err != nil {
			return nil, err
		}
		return UUID(noDashes), nil
	})

	Register("slug", func(p property.Map) (Mutator, error) {
		if err := p.Check("unicode", "separator", "max_length"); err != nil {
			return nil, err
		}
		sep, err := p.String("separator", "-")
		if err != nil {
			return nil, err
		}
		maxLength, err := p.Int("max_length", 0)
		if err != nil {
			return nil, err
		}
		return Slug(sep, maxLength), nil
	})

	Register("range", rangeFactory)
	Register("minimum", boundFactory(true))
	Register("maximum", boundFactory(false))
	Register("positive", signFactory(Positive))
	Register("negative", signFactory(Negative))
	Register("multiple", multipleFactory)

	Register("count", countFactory(Count))
	Register("min_count", countFactory(MinCount))
	Register("max_count", countFactory(MaxCount))
	Register("unique", func(p property.Map) (Mutator, error) {
		if err := p.Check(); err != nil {
			return nil, err
		}
		return Unique(), nil
	})
}

func caseFactory(fn func(unicode bool) Mutator) Factory {
	return func(p property.Map) (Mutator, error) {
		if err := p.Check("unicode"); err != nil {
			return nil, err
		}
		unicode, err := p.Bool("unicode", false)
		if err != nil {
			return nil, err
		}
		return fn(unicode), nil
	}
}

func lengthFactory(fn func(n int, unicode bool) Mutator) Factory {
	return func(p property.Map) (Mutator, error) {
		if err := p.Check("length", "unicode"); err != nil {
			return nil, err
		}
		if err := p.Require("length"); err != nil {
			return nil, err
		}
		n, err := p.Int("length", 0)
		if err != nil {
			return nil, err
		}
		unicode, err := p.Bool("unicode", false)
		if err != nil {
			return nil, err
		}
		return fn(n, unicode), nil
	}
}

func truncateFactory(p property.Map) (Mutator, error) {
	if err := p.Check("length", "ellipsis", "keep_words", "keep_sentences", "unicode"); err != nil {
		return nil, err
	}
	if err := p.Require("length"); err != nil {
		return nil, err
	}
	n, err := p.Int("length", 0)
	if err != nil {
		return nil, err
	}
	var opts TruncateOptions
	if opts.Ellipsis, err = p.String("ellipsis", ""); err != nil {
		return nil, err
	}
	if opts.KeepWords, err = p.Bool("keep_words", false); err != nil {
		return nil, err
	}
	if opts.KeepSentences, err = p.Bool("keep_sentences", false); err != nil {
		return nil, err
	}
	if opts.Unicode, err = p.Bool("unicode", false); err != nil {
		return nil, err
	}
	return Truncate(n, opts), nil
}

func wildcardsFactory(p property.Map) (Mutator, error) {
	if err := p.Check("wildcards", "insensitive", "negate", "unicode"); err != nil {
		return nil, err
	}
	if err := p.Require("wildcards"); err != nil {
		return nil, err
	}
	patterns, err := p.Strings("wildcards")
	if err != nil {
		return nil, err
	}
	insensitive, err := p.Bool("insensitive", false)
	if err != nil {
		return nil, err
	}
	negate, err := p.Bool("negate", false)
	if err != nil {
		return nil, err
	}
	return Wildcards(patterns, insensitive, negate), nil
}

func patternFactory(p property.Map) (Mutator, error) {
	if err := p.Check("pattern", "negate", "unicode"); err != nil {
		return nil, err
	}
	if err := p.Require("pattern"); err != nil {
		return nil, err
	}
	patterns, err := p.Strings("pattern")
	if err != nil {
		return nil, err
	}
	negate, err := p.Bool("negate", false)
	if err != nil {
		return nil, err
	}
	return Pattern(patterns, negate)
}

func rangeFactory(p property.Map) (Mutator, error) {
	if err := p.Check("minimum", "maximum", "min_exclusive", "max_exclusive", "negate"); err != nil {
		return nil, err
	}
	if err := p.Require("minimum", "maximum"); err != nil {
		return nil, err
	}
	var (
		r   RangeOptions
		err error
	)
	if r.Minimum, err = p.OptionalFloat("minimum"); err != nil {
		return nil, err
	}
	if r.Maximum, err = p.OptionalFloat("maximum"); err != nil {
		return nil, err
	}
	if r.MinExclusive, err = p.Bool("min_exclusive", false); err != nil {
		return nil, err
	}
	if r.MaxExclusive, err = p.Bool("max_exclusive", false); err != nil {
		return nil, err
	}
	if r.Negate, err = p.Bool("negate", false); err != nil {
		return nil, err
	}
	return Range(r), nil
}

func boundFactory(lower bool) Factory {
	key := "maximum"
	if lower {
		key = "minimum"
	}
	return func(p property.Map) (Mutator, error) {
		if err := p.Check(key, "exclusive", "negate"); err != nil {
			return nil, err
		}
		if err := p.Require(key); err != nil {
			return nil, err
		}
		bound, err := p.OptionalFloat(key)
		if err != nil {
			return nil, err
		}
		exclusive, err := p.Bool("exclusive", false)
		if err != nil {
			return nil, err
		}
		negate, err := p.Bool("negate", false)
		if err != nil {
			return nil, err
		}
		r := RangeOptions{Negate: negate}
		if lower {
			r.Minimum, r.MinExclusive = bound, exclusive
		} else {
			r.Maximum, r.MaxExclusive = bound, exclusive
		}
		return Range(r), nil
	}
}

func signFactory(fn func(negate bool) Mutator) Factory {
	return func(p property.Map) (Mutator, error) {
		if err := p.Check("negate"); err != nil {
			return nil, err
		}
		negate, err := p.Bool("negate", false)
		if err != nil {
			return nil, err
		}
		return fn(negate), nil
	}
}

func multipleFactory(p property.Map) (Mutator, error) {
	if err := p.Check("multiple", "negate"); err != nil {
		return nil, err
	}
	if err := p.Require("multiple"); err != nil {
		return nil, err
	}
	n, err := p.Float("multiple", 0)
	if err != nil {
		return nil, err
	}
	negate, err := p.Bool("negate", false)
	if err != nil {
		return nil, err
	}
	return Multiple(n, negate)
}

func countFactory(fn func(n int) Mutator) Factory {
	return func(p property.Map) (Mutator, error) {
		if err := p.Check("count"); err != nil {
			return nil, err
		}
		if err := p.Require("count"); err != nil {
			return nil, err
		}
		n, err := p.Int("count", 0)
		if err != nil {
			return nil, err
		}
		return fn(n), nil
	}
}
