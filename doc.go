// Package kit validates and coerces dynamically typed values against compact type
// expressions and reports failures as leveled, localisable messages.
//
// The root package is a convenience layer over package types that builds each
// expression once and reuses it:
//
//	n, err := kit.CastAs[int]("int", "42")
//	// n == 42
//
//	v := any("1,2,3")
//	err := kit.Coerce("int[]", &v, types.WithContext(types.ContextRequest))
//	// v == []any{int64(1), int64(2), int64(3)}
//
// Failures wrap a *fault.Error whose message renders at the end user, technical
// or internal level, optionally translated through a text.Localizer such as
// *i18n.Translator:
//
//	_, err := kit.Cast("?array<string,int>", "a:1,b:x", types.WithContext(types.ContextRequest))
//	var ce *types.CastError
//	if errors.As(err, &ce) {
//		fmt.Println(ce.Fault.Message(text.Options{Level: text.Technical}))
//	}
//
// Packages:
//
//   - pkg/protoname parses type expressions.
//   - pkg/types builds types from expressions and processes values.
//   - pkg/mutator holds the post-processing steps attached to types.
//   - pkg/fault and pkg/text model errors and leveled texts.
//   - pkg/collection provides the ordered Dictionary and Vector containers.
//   - pkg/i18n loads YAML and JSON catalogs and implements text.Localizer.
//   - pkg/config and pkg/logger carry configuration and structured logging.
//
// The cmd/kit binary exposes the same processing on the command line.
package kit
