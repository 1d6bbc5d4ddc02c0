/*
Package brl provides the data model for Braille cells and the static
per-script lookup tables used by the conversion pipeline.

A Braille cell is a 2×4 grid of raised-dot positions, numbered 1–8:
dots 1 and 4 form the top row, 2 and 5 the middle row, 3 and 6 the
bottom row, and 7 and 8 the extended row used only by 8-dot systems.
Package brl represents the subset of raised positions as a [DotSet],
a compact bitmask whose layout is chosen to coincide with the Unicode
Braille Patterns block (U+2800–U+28FF): the code point for a cell is
simply U+2800 plus the mask.

The lookup tables map single runes to dot sets. They are populated at
package initialization and never mutated afterwards, so all functions
in this package are safe for concurrent use without locking.

Coverage is deliberately partial: the Korean table holds jamo-level
entries plus a handful of precomposed syllables, the Japanese table
holds the basic kana rows, and the English table holds the lowercase
letters (capitals and digits are composed by the conversion pipeline
from indicator dots). Package brl exposes the tables; it does not
decide which table applies to a rune of input text — that ordered
classification lives in the sister package brlconv.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package brl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns a trace sink for the braille core namespace.
func tracer() tracing.Trace {
	return tracing.Select("braille.core")
}
