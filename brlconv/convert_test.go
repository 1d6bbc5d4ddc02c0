package brlconv

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/braille/brl"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type ConvertTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestConvertFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "braille.convert")
	defer teardown()
	suite.Run(t, new(ConvertTestEnviron))
}

// --- Tests -----------------------------------------------------------------

func (env *ConvertTestEnviron) TestOneRecordPerRune() {
	texts := []string{
		"",
		"a",
		"Hello World",
		"안녕하세요",
		"こんにちは",
		"Hello 안녕\nこんにちは!",
		"∑∏∫",
	}
	for _, text := range texts {
		recs := ConvertString(text)
		env.Equal(len([]rune(text)), len(recs), "record count for %q", text)
		for i, r := range []rune(text) {
			env.Equal(r, recs[i].Char, "input order for %q at %d", text, i)
		}
	}
}

func (env *ConvertTestEnviron) TestLowercaseLetter() {
	recs := ConvertString("a")
	env.Require().Len(recs, 1)
	env.Equal(brl.Dots(1), recs[0].Dots)
	env.Equal('⠁', recs[0].Cell)
	env.True(recs[0].Recognized)
}

func (env *ConvertTestEnviron) TestWhitespace() {
	recs := ConvertString("a b")
	env.Require().Len(recs, 3)
	env.Equal(' ', recs[1].Char)
	env.Equal(' ', recs[1].Cell)
	env.Equal(brl.Blank, recs[1].Dots)
	env.True(recs[1].Recognized)

	recs = ConvertString("a\tb")
	env.Require().Len(recs, 3)
	env.Equal('\t', recs[1].Char, "tab keeps its identity in Char")
	env.Equal(' ', recs[1].Cell, "tab renders as a space cell")
}

func (env *ConvertTestEnviron) TestNewlineMarker() {
	recs := ConvertString("a\nb")
	env.Require().Len(recs, 3)
	env.Equal('\n', recs[1].Cell)
	env.Equal(brl.Blank, recs[1].Dots)
}

func (env *ConvertTestEnviron) TestCombinedCapitalCell() {
	// The capitalization indicator is folded into the letter's cell.
	recs := ConvertString("A")
	env.Require().Len(recs, 1)
	env.Equal(brl.Dots(1, 6), recs[0].Dots)

	recs = ConvertString("H")
	env.Require().Len(recs, 1)
	env.Equal(brl.Dots(1, 2, 5, 6), recs[0].Dots)
}

func (env *ConvertTestEnviron) TestCombinedDigitCell() {
	recs := ConvertString("1")
	env.Require().Len(recs, 1)
	env.Equal(brl.Dots(1, 3, 4, 5, 6), recs[0].Dots)

	recs = ConvertString("0")
	env.Require().Len(recs, 1)
	env.Equal(brl.Dots(2, 3, 4, 5, 6), recs[0].Dots)
}

func (env *ConvertTestEnviron) TestPunctuation() {
	recs := ConvertString("Hello!")
	env.Require().Len(recs, 6)
	env.Equal(brl.Dots(2, 3, 5), recs[5].Dots)
	env.True(recs[5].Recognized)
}

func (env *ConvertTestEnviron) TestKoreanSyllables() {
	recs := ConvertString("안녕하세요")
	env.Require().Len(recs, 5)
	for i, rec := range recs {
		env.True(rec.Recognized, "syllable %d", i)
		env.NotEqual(brl.Blank, rec.Dots, "syllable %d", i)
	}
}

func (env *ConvertTestEnviron) TestJapaneseKana() {
	recs := ConvertString("こんにちは")
	env.Require().Len(recs, 5)
	for i, rec := range recs {
		env.True(rec.Recognized, "kana %d", i)
	}
	env.Equal(brl.Dots(2, 4, 6), recs[0].Dots, "こ")
	env.Equal(brl.Dots(3, 5, 6), recs[1].Dots, "ん")
}

func (env *ConvertTestEnviron) TestFallbackMarker() {
	recs := ConvertString("∑")
	env.Require().Len(recs, 1)
	env.Equal('∑', recs[0].Char, "original rune is preserved")
	env.Equal(brl.Fallback, recs[0].Dots)
	env.Equal('⠢', recs[0].Cell)
	env.False(recs[0].Recognized)
}

func (env *ConvertTestEnviron) TestUncoveredSyllableFallsThrough() {
	// A Hangul syllable without a table entry must not end up in the
	// punctuation table; it degrades to the fallback marker.
	recs := ConvertString("국")
	env.Require().Len(recs, 1)
	env.Equal(brl.Fallback, recs[0].Dots)
	env.False(recs[0].Recognized)
}

func (env *ConvertTestEnviron) TestCellMatchesDotsForContentCells() {
	for _, rec := range ConvertString("Welt 점자 こんにちは 42 ∑!") {
		if rec.Cell == ' ' || rec.Cell == '\n' {
			continue
		}
		env.Equal(rec.Dots.Rune(), rec.Cell, "cell for %q", rec.Char)
	}
}

// --- Streaming API ---------------------------------------------------------

type recordCollector struct {
	recs []Record
}

func (c *recordCollector) WriteRecord(rec Record) error {
	c.recs = append(c.recs, rec)
	return nil
}

type failingSink struct {
	after int
}

func (s *failingSink) WriteRecord(Record) error {
	if s.after == 0 {
		return errors.New("sink full")
	}
	s.after--
	return nil
}

func (env *ConvertTestEnviron) TestStreamMatchesConvertString() {
	const text = "Hello 안녕!\n42"
	sink := &recordCollector{}
	err := NewConverter().Convert(Params{}, strings.NewReader(text), sink)
	env.Require().NoError(err)
	env.Equal(ConvertString(text), sink.recs)
}

func (env *ConvertTestEnviron) TestStreamArgumentChecks() {
	conv := NewConverter()
	err := conv.Convert(Params{}, nil, &recordCollector{})
	env.ErrorIs(err, ErrNilRuneSource)
	err = conv.Convert(Params{}, strings.NewReader("x"), nil)
	env.ErrorIs(err, ErrNilRecordSink)
}

func (env *ConvertTestEnviron) TestStreamStopsOnSinkError() {
	err := NewConverter().Convert(Params{}, strings.NewReader("abc"), &failingSink{after: 1})
	env.Error(err)
}

func (env *ConvertTestEnviron) TestLanguageParamDoesNotGateTables() {
	// Requesting Korean must not keep Latin letters from converting.
	sink := &recordCollector{}
	err := NewConverter().Convert(Params{Language: Korean}, strings.NewReader("a안"), sink)
	env.Require().NoError(err)
	env.Require().Len(sink.recs, 2)
	env.Equal(brl.Dots(1), sink.recs[0].Dots)
	env.True(sink.recs[1].Recognized)
}
