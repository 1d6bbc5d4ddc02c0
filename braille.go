/*
Package braille converts plain text into Braille dot patterns.

The package is a thin facade over the module's subpackages:

▪︎ brl holds the cell data model (dot sets, Unicode bit-packing) and the
static per-script lookup tables.

▪︎ brlconv runs the conversion pipeline: per-rune script classification,
table lookup and fallback handling, plus presence-based language
detection.

▪︎ brlrender draws record sequences as raster images or SVG.

Conversion is grade-1 (uncontracted) only, with deliberately partial
table coverage; see the brl package documentation for what is and is not
covered.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package braille

import (
	"strings"

	"github.com/npillmayer/braille/brlconv"
)

type recordCollector struct {
	recs []brlconv.Record
}

// WriteRecord appends one conversion record to the collector.
func (c *recordCollector) WriteRecord(rec brlconv.Record) error {
	c.recs = append(c.recs, rec)
	return nil
}

// Convert converts text to Braille records, one per rune of input, in
// input order. It never fails: runes without a table entry yield the
// fallback marker record.
//
// This is a convenience API over the streaming converter in package
// brlconv. Clients that stream large inputs or want to control record
// delivery use brlconv directly.
func Convert(text string) []brlconv.Record {
	if text == "" {
		return nil
	}
	sink := &recordCollector{
		recs: make([]brlconv.Record, 0, len(text)),
	}
	conv := brlconv.NewConverter()
	params := brlconv.Params{
		Language: brlconv.DetectLanguage(text),
	}
	if err := conv.Convert(params, strings.NewReader(text), sink); err != nil {
		// The collector sink cannot fail and the source is in-memory, so
		// conversion of a non-empty string cannot return an error.
		tracer().Errorf("string conversion failed unexpectedly: %v", err)
		return nil
	}
	return sink.recs
}

// DetectLanguage reports the dominant script mixture of text. See
// [brlconv.DetectLanguage] for the classification rules.
func DetectLanguage(text string) brlconv.Language {
	return brlconv.DetectLanguage(text)
}

// String renders text as a plain string of Braille Patterns characters,
// with whitespace and line breaks preserved. Lossy: the per-record dot
// sets and recognized flags are discarded.
func String(text string) string {
	var sb strings.Builder
	for _, rec := range Convert(text) {
		sb.WriteRune(rec.Cell)
	}
	return sb.String()
}
