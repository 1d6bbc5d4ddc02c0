/*
Package brlconv converts plain text into Braille cell records.

The package API is centered around [Converter] and [ConvertString]:
  - runes are consumed from an io.RuneReader,
  - one [Record] per input rune is emitted to a [RecordSink],
  - records carry the original rune, its Braille cell and dot set, and a
    flag telling recognized entries apart from the fallback marker.

Conversion is total: no input rune ever produces an error or is dropped.
A rune that no table covers degrades to the conventional unrecognized
marker (dots 2 and 6) instead of failing. Callers that need to surface
such misses check [Record.Recognized].

Each rune is classified by its own script, through a fixed chain:
whitespace, then the Hangul syllable block, the kana blocks, ASCII
letters and digits, and finally punctuation. A requested language (see
[Params]) never overrides this chain; [DetectLanguage] exists for
informational auto-selection by callers, not for gating conversion.
*/
package brlconv

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer returns a trace sink for the brlconv package namespace.
func tracer() tracing.Trace {
	return tracing.Select("braille.convert")
}

// errConv wraps a message as a user-facing conversion error.
func errConv(x string) error {
	return fmt.Errorf("Braille conversion: %s", x)
}
