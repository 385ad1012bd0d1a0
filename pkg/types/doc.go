// Package types validates and coerces dynamically typed values against type
// expressions.
//
// A Type is built once from an expression and then used to process values:
//
//	t := types.MustBuild("?array<string,int>", nil)
//
//	v := any(map[string]any{"a": "1", "b": 2.0})
//	if err := t.Process(&v); err != nil {
//		fmt.Println(err.Message(text.Options{Level: text.Technical}))
//	}
//	// v is now a *collection.Dictionary {"a": int64(1), "b": int64(2)}
//
// Processing never panics on bad input: failures are returned as *fault.Error
// values carrying a leveled, localisable message. Errors from Build (unknown names,
// bad properties) are ordinary Go errors matching the sentinels in errors.go.
//
// # Expressions
//
// The syntax is parsed by package protoname:
//
//	int             built-in name (see below)
//	?int            nullable
//	int|string      union, the first member that accepts the value wins
//	int|null        nullable through a null member
//	array<string>   generic array of strings; array<K,V> adds a key type
//	list<int>       list of integers, also written int[]
//	class<Foo>      class, object or resource restricted to Foo
//	(int|string)[]  grouping
//
// Built-in names: any, mixed, boolean, bool, number, integer, int, float, double,
// string, ustring, enumeration, enum, class, interface, object, resource, callable,
// closure, array, list, component, structure, struct and text. Other names are
// looked up in the Registry: classes and interfaces build restricted objects,
// enumerations, components and structures build their variants.
//
// # Contexts and strictness
//
// Values from outside the program are processed with WithContext(ContextRequest)
// or ContextInterface, which accept fewer coercions (booleans only accept explicit
// literals, enumerations only accept case names) but also accept comma-separated
// strings for arrays. Strict types accept only the native Go representation of
// their kind.
//
// # Mutators
//
// Mutators run after the prototype succeeds, in the order they were added:
//
//	t := types.MustBuild("string", nil,
//		types.WithMutator("trim", nil),
//		types.WithMutator("max_length", property.Map{"length": 64}),
//	)
//
// Names are resolved by the prototype first (string mutators inherit the unicode
// flag of ustring) and by the mutator registry second.
package types
