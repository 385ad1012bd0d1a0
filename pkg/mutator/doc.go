// Package mutator provides composable transformers and constraints that run after a
// value has been validated by a type.
//
// A Mutator receives a pointer to the value and either rewrites it (trim, case
// folding, truncation, slugs, UUID canonicalisation) or checks it (length, range, count,
// patterns), returning a *fault.Error on failure. A failing mutator never changes the
// value.
//
//	m := mutator.Chain{mutator.Lowercase(false), mutator.Trim("")}
//	v := any(" ABC ")
//	if err := m.Process(&v); err == nil {
//		fmt.Println(v) // "abc"
//	}
//
// # Registry
//
// Every built-in is also available by name through a process-wide registry, which
// is how types attach mutators from configuration:
//
//	m, err := mutator.Build("max_length", property.Map{"length": 10, "unicode": true})
//
// Registered names: trim, lowercase, uppercase, length, min_length, max_length,
// truncate, slug, wildcards, pattern, non_empty, uuid, range, minimum, maximum, positive,
// negative, multiple, count, min_count, max_count, unique. Custom factories are added
// with Register, usually from an init function.
//
// Predicates that support a negate flag (wildcards, pattern, range, minimum, maximum,
// positive, negative, multiple) invert the check and use the negated form of the same
// message.
//
// Messages are Text values in the "kit/mutators" domain and can be localised through
// any text.Localizer.
package mutator
