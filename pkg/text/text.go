package text

import (
	"maps"
	"math"
	"slices"
	"strings"
)

// DefaultPluralPlaceholder is the parameter receiving the plural number.
const DefaultPluralPlaceholder = "count"

// Flag changes how a placeholder value is rendered.
type Flag uint8

const (
	// FlagQuote wraps string values in double quotes.
	FlagQuote Flag = 1 << iota
)

// Stringifier renders a placeholder value.
type Stringifier func(value any, opts Options) string

// Text is a leveled message template with parameters and child texts.
// Setters mutate the receiver and return it for chaining.
type Text struct {
	strings           map[InfoLevel]string
	pluralStrings     map[InfoLevel]string
	pluralNumber      *float64
	pluralPlaceholder string
	parameters        map[string]any
	object            any
	flags             map[string]Flag
	stringifiers      map[string]Stringifier
	texts             []*Text
	domain            string
	noLocalize        bool
}

// New creates a text whose EndUser template is s.
func New(s string) *Text {
	t := &Text{}
	if s != "" {
		t.SetString(EndUser, s)
	}
	return t
}

// Raw creates a text that is never localised.
func Raw(s string) *Text {
	return New(s).SetLocalize(false)
}

// Join creates an empty text whose children are texts.
func Join(texts ...*Text) *Text {
	return New("").AppendText(texts...)
}

// SetString sets the template for level.
func (t *Text) SetString(level InfoLevel, s string) *Text {
	if t.strings == nil {
		t.strings = make(map[InfoLevel]string, 1)
	}
	t.strings[clampLevel(level)] = s
	return t
}

// SetPluralString sets the plural template for level.
func (t *Text) SetPluralString(level InfoLevel, s string) *Text {
	if t.pluralStrings == nil {
		t.pluralStrings = make(map[InfoLevel]string, 1)
	}
	t.pluralStrings[clampLevel(level)] = s
	return t
}

// SetPluralNumber sets the number used to choose between singular and plural.
func (t *Text) SetPluralNumber(n float64) *Text {
	t.pluralNumber = &n
	return t
}

// SetPluralPlaceholder renames the parameter receiving the plural number.
func (t *Text) SetPluralPlaceholder(name string) *Text {
	t.pluralPlaceholder = name
	return t
}

// SetParameter binds a placeholder value.
func (t *Text) SetParameter(name string, value any) *Text {
	if t.parameters == nil {
		t.parameters = make(map[string]any)
	}
	t.parameters[name] = value
	return t
}

// SetParameters binds several placeholder values.
func (t *Text) SetParameters(params map[string]any) *Text {
	for k, v := range params {
		t.SetParameter(k, v)
	}
	return t
}

// SetObject binds the object used for placeholders not found among the parameters.
func (t *Text) SetObject(object any) *Text {
	t.object = object
	return t
}

// SetPlaceholderFlags sets rendering flags for a placeholder.
func (t *Text) SetPlaceholderFlags(name string, flags Flag) *Text {
	if t.flags == nil {
		t.flags = make(map[string]Flag)
	}
	t.flags[name] = flags
	return t
}

// SetPlaceholderStringifier overrides how a placeholder value is rendered.
func (t *Text) SetPlaceholderStringifier(name string, fn Stringifier) *Text {
	if t.stringifiers == nil {
		t.stringifiers = make(map[string]Stringifier)
	}
	t.stringifiers[name] = fn
	return t
}

// AppendText adds child texts, rendered after the receiver one per line.
func (t *Text) AppendText(texts ...*Text) *Text {
	for _, c := range texts {
		if c != nil {
			t.texts = append(t.texts, c)
		}
	}
	return t
}

// SetDomain sets the localisation domain.
func (t *Text) SetDomain(domain string) *Text {
	t.domain = domain
	return t
}

// SetLocalize switches localisation on or off. It is on by default.
func (t *Text) SetLocalize(on bool) *Text {
	t.noLocalize = !on
	return t
}

// Get returns the template set exactly at level.
func (t *Text) Get(level InfoLevel) (string, bool) {
	s, ok := t.strings[level]
	return s, ok
}

// Parameter returns a bound placeholder value.
func (t *Text) Parameter(name string) (any, bool) {
	v, ok := t.parameters[name]
	return v, ok
}

// Texts returns the child texts.
func (t *Text) Texts() []*Text {
	return slices.Clone(t.texts)
}

// Domain returns the localisation domain.
func (t *Text) Domain() string {
	return t.domain
}

// IsEmpty reports whether the text renders to nothing at every level.
func (t *Text) IsEmpty() bool {
	if t == nil {
		return true
	}
	for _, s := range t.strings {
		if s != "" {
			return false
		}
	}
	for _, c := range t.texts {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// Clone returns a copy that can be modified independently. Children are shared.
func (t *Text) Clone() *Text {
	c := *t
	c.strings = maps.Clone(t.strings)
	c.pluralStrings = maps.Clone(t.pluralStrings)
	c.parameters = maps.Clone(t.parameters)
	c.flags = maps.Clone(t.flags)
	c.stringifiers = maps.Clone(t.stringifiers)
	c.texts = slices.Clone(t.texts)
	if t.pluralNumber != nil {
		n := *t.pluralNumber
		c.pluralNumber = &n
	}
	return &c
}

// String renders the EndUser message without localisation.
func (t *Text) String() string {
	return t.Render(Options{})
}

// Render renders the message for opts.
func (t *Text) Render(opts Options) string {
	if t == nil {
		return ""
	}
	opts.Level = clampLevel(opts.Level)

	var parts []string
	if s := t.renderOwn(opts); s != "" {
		parts = append(parts, s)
	}
	for _, c := range t.texts {
		if s := c.Render(opts); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

func (t *Text) renderOwn(opts Options) string {
	singular, level, ok := pick(t.strings, opts.Level)
	if !ok || singular == "" {
		return ""
	}

	params := t.parameters
	tmpl := singular
	if t.pluralNumber != nil {
		n := *t.pluralNumber
		plural, hasPlural := t.pluralStrings[level]
		if !hasPlural {
			plural = singular
		}
		tmpl = t.localizePlural(opts, singular, plural, n)

		name := t.pluralPlaceholder
		if name == "" {
			name = DefaultPluralPlaceholder
		}
		if _, set := params[name]; !set {
			params = maps.Clone(params)
			if params == nil {
				params = make(map[string]any, 1)
			}
			params[name] = pluralValue(n)
		}
	} else {
		tmpl = t.localize(opts, singular)
	}

	return t.substitute(tmpl, params, opts)
}

func (t *Text) localizer(opts Options) Localizer {
	if t.noLocalize || opts.Localizer == nil {
		return Identity
	}
	return opts.Localizer
}

func (t *Text) localize(opts Options, s string) string {
	return t.localizer(opts).Localize(opts.Language, t.domain, s)
}

func (t *Text) localizePlural(opts Options, singular, plural string, n float64) string {
	return t.localizer(opts).LocalizePlural(opts.Language, t.domain, singular, plural, n)
}

func (t *Text) substitute(tmpl string, params map[string]any, opts Options) string {
	segments := parseTemplate(tmpl, !t.noLocalize)
	var b strings.Builder
	for _, seg := range segments {
		if seg.placeholder == nil {
			b.WriteString(seg.literal)
			continue
		}
		b.WriteString(t.renderPlaceholder(seg.placeholder, params, opts))
	}
	return b.String()
}

func (t *Text) renderPlaceholder(p *placeholder, params map[string]any, opts Options) (out string) {
	defer func() {
		if recover() != nil {
			out = p.raw
		}
	}()

	value, ok := t.resolve(p, params)
	if !ok {
		return p.raw
	}
	name := p.steps[0].name
	if fn, ok := t.stringifiers[name]; ok && fn != nil {
		return fn(value, opts)
	}
	return Stringify(value, t.flags[name]&FlagQuote != 0, opts)
}

func (t *Text) resolve(p *placeholder, params map[string]any) (any, bool) {
	first := p.steps[0]
	var (
		current any
		ok      bool
	)
	if !first.call {
		current, ok = params[first.name]
	}
	if !ok && t.object != nil {
		current, ok = access(t.object, first)
	}
	if !ok {
		return nil, false
	}
	for _, s := range p.steps[1:] {
		if current, ok = access(current, s); !ok {
			return nil, false
		}
	}
	return current, true
}

// pick returns the most specific template at or below level and the level it was
// found at.
func pick(m map[InfoLevel]string, level InfoLevel) (string, InfoLevel, bool) {
	for l := level; l >= EndUser; l-- {
		if s, ok := m[l]; ok {
			return s, l, true
		}
	}
	return "", EndUser, false
}

func pluralValue(n float64) any {
	if n == math.Trunc(n) && math.Abs(n) < 1<<53 {
		return int64(n)
	}
	return n
}
