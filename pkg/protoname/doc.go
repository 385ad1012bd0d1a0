// Package protoname parses type expressions such as "int|string", "array<string>",
// "string[]" or "(int|float)" into a structural descriptor.
//
// Only the outermost structure is parsed. Inner names are kept as verbatim strings so
// the caller can resolve them recursively:
//
//	p, ok := protoname.Parse("array<string,int|float>")
//	// ok == true, p.Kind == protoname.Generic
//	// p.Names == []string{"array", "string", "int|float"}
//
// An expression that is not parseable is not an error: Parse reports ok == false and
// the caller may treat the input as a literal name instead. A leading "?" and "null"
// union members are not handled here.
package protoname
