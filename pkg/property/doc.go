// Package property provides typed access to string-keyed configuration maps.
//
// Prototypes and mutators can be built from names and a property map, e.g. when a type
// is declared as `types.Build("string", property.Map{"unicode": true})`. The helpers in
// this package convert loosely typed values (ints given as floats, booleans given as
// strings, ...) into the Go type a constructor needs and report misuse as plain errors
// wrapping ErrInvalidProperty, ErrUnknownProperty or ErrMissingProperty.
//
// Property maps are read-only after they are handed to a builder.
package property
