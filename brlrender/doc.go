/*
Package brlrender draws Braille record sequences, as produced by package
brlconv, into raster images or SVG documents.

Rendering consumes the records as-is: the sequence is split into lines at
records whose cell is the newline marker, whitespace records advance the
pen without emitting anything, and all other records are drawn as one
Braille cell from their dot set. The renderer never consults the lookup
tables itself.

Geometry and colors come from an [Options] value, passed by value with
defaults from [DefaultOptions]. Option files in TOML form are read with
[LoadOptions].
*/
package brlrender

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns a trace sink for the brlrender package namespace.
func tracer() tracing.Trace {
	return tracing.Select("braille.render")
}
