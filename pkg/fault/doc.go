// Package fault provides Error, the value returned by validation code when the data
// being checked is wrong.
//
// An Error carries a machine-readable name, a multi-level *text.Text message, an
// optional underlying cause and leveled side data. It is built with chained setters
// before being returned and is not modified afterwards:
//
//	err := fault.New("array.duplicate_key").
//		WithText(text.New("Duplicate key {{key}} at position {{position}}.").
//			SetParameter("key", "a").
//			SetParameter("position", 2)).
//		WithData(text.Technical, map[string]any{"key": "a", "position": 2})
//
// Error implements the error interface. Error() renders the EndUser message so it is
// safe to show; Message renders any level with an optional localizer. errors.Is
// matches two faults by name, so package-level faults can be used as sentinels:
//
//	var ErrNotBoolean = fault.New("boolean.invalid")
//	errors.Is(err, ErrNotBoolean)
package fault
