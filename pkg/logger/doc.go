// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers that keep key naming consistent across kit.
//
// New selects slog.NewTextHandler or slog.NewJSONHandler based on the
// configured Format and attaches any static attributes supplied with WithAttr
// or the environment presets.
//
// # Usage
//
//	import "github.com/dmitrymomot/kit/pkg/logger"
//
//	log := logger.New(logger.WithDevelopment("kit"))
//	log.Debug("type built",
//	    logger.Expression("?int"),
//	    logger.Prototype("int"),
//	)
//
// Attribute helpers such as Error, Errors, Expression, Prototype and Mutator
// return empty attributes for empty input where noted, so they can be passed
// unconditionally.
package logger
