// Package text provides Text, a multi-level, parameterised, pluralisable and
// localisable message container.
//
// A Text holds one template per info level (EndUser, Technical, Internal). Rendering
// picks the most specific template at or below the requested level, localises it
// through an optional Localizer, applies pluralisation, substitutes placeholders and
// appends any child texts, one per line:
//
//	t := text.New("Invalid value at index {{index}}.").
//		SetString(text.Technical, "Invalid value {{value}} at index {{index}}.").
//		SetParameter("index", 2).
//		SetParameter("value", "abc").
//		SetPlaceholderFlags("value", text.FlagQuote)
//
//	t.String()                                   // Invalid value at index 2.
//	t.Render(text.Options{Level: text.Technical}) // Invalid value "abc" at index 2.
//
// # Placeholders
//
// Placeholders use the {{name}} form. A name may be followed by a dotted accessor
// chain: {{user.name}} looks up "name" in the value bound to "user", {{items.0}}
// indexes a list and {{user.Name()}} calls a zero-argument getter. Lookups never use
// reflection: maps, slices, ordered containers and values implementing Accessor or
// Caller are supported. Names not found among the parameters are resolved against the
// bound object (SetObject). Unresolved placeholders are kept verbatim.
//
// Rendering never fails; an empty string is the floor.
package text
