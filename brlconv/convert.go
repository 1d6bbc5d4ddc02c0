package brlconv

import (
	"errors"
	"io"
	"unicode"

	"github.com/npillmayer/braille/brl"
)

var (
	// ErrNilRuneSource indicates that the conversion input source is nil.
	ErrNilRuneSource = errors.New("brlconv: nil rune source")
	// ErrNilRecordSink indicates that the conversion output sink is nil.
	ErrNilRecordSink = errors.New("brlconv: nil record sink")
)

// Record is the conversion result for one input rune.
//
// Cell is the character a downstream renderer should emit: a code point
// from the Braille Patterns block for cells with dot content, the literal
// space for whitespace, or the literal newline as a line-break marker.
// For all cells with dot content, Cell is derived from Dots by the
// bit-packing rule of [brl.DotSet.Rune].
type Record struct {
	Char       rune       // original input rune, unchanged
	Cell       rune       // rendered cell or control character
	Dots       brl.DotSet // raised dots of the cell (blank for whitespace)
	Recognized bool       // false iff this is the fallback marker
}

// RecordSink receives conversion output, one record per input rune, in
// input order.
type RecordSink interface {
	WriteRecord(Record) error
}

// Params carries per-request conversion parameters.
type Params struct {
	// Language is accepted for interface symmetry with DetectLanguage.
	// Conversion classifies every rune by its own script, so this field
	// does not select lookup tables.
	Language Language
}

// Converter converts rune streams to Braille record streams. It holds no
// state across calls; the zero value is ready to use and a single
// Converter may serve concurrent calls.
type Converter struct{}

// NewConverter creates a Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Convert reads runes from src until EOF and writes one record per rune
// to sink, in input order.
//
// Conversion itself cannot fail: every rune yields a record, worst case
// the fallback marker. Returned errors therefore stem only from invalid
// arguments, from src, or from sink; on a sink error conversion stops
// with records written so far already delivered.
func (c *Converter) Convert(params Params, src io.RuneReader, sink RecordSink) error {
	if src == nil {
		return ErrNilRuneSource
	}
	if sink == nil {
		return ErrNilRecordSink
	}
	tracer().Debugf("convert stream, requested language %s", params.Language)
	for {
		r, _, err := src.ReadRune()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := sink.WriteRecord(convertRune(r)); err != nil {
			return err
		}
	}
}

// ConvertString converts text in one call and returns the records. The
// record count always equals the rune count of text.
func ConvertString(text string) []Record {
	recs := make([]Record, 0, len(text))
	for _, r := range text {
		recs = append(recs, convertRune(r))
	}
	return recs
}

// convertRune runs the ordered classification chain for one rune. First
// matching rule wins; a lookup miss in any table falls through to the
// fallback marker.
func convertRune(r rune) Record {
	switch r {
	case ' ', '\t':
		return Record{Char: r, Cell: ' ', Dots: brl.Blank, Recognized: true}
	case '\n':
		return Record{Char: r, Cell: '\n', Dots: brl.Blank, Recognized: true}
	}
	if d, ok := lookupDots(r); ok {
		return Record{Char: r, Cell: d.Rune(), Dots: d, Recognized: true}
	}
	tracer().Debugf("no braille mapping for %q, emitting fallback marker", r)
	return Record{Char: r, Cell: brl.Fallback.Rune(), Dots: brl.Fallback}
}

// lookupDots consults the table matching r's script. Capital letters
// collapse the capitalization indicator into the base letter's cell;
// digit entries in the English table already carry the numeric indicator.
// Folding indicators into one cell deviates from two-cell 6-dot Braille
// and is kept for compatibility with reference output.
func lookupDots(r rune) (brl.DotSet, bool) {
	switch {
	case brl.IsHangulSyllable(r):
		return brl.KoreanTable().Lookup(r)
	case brl.IsKana(r):
		return brl.JapaneseTable().Lookup(r)
	case brl.IsLatinLetter(r) || brl.IsASCIIDigit(r):
		if r >= 'A' && r <= 'Z' {
			base, ok := brl.EnglishTable().Lookup(unicode.ToLower(r))
			if !ok {
				return brl.Blank, false
			}
			return base.Union(brl.Capital), true
		}
		return brl.EnglishTable().Lookup(r)
	}
	return brl.PunctTable().Lookup(r)
}
