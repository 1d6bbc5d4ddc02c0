package brl

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEnglishTableLetters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "braille.core")
	defer teardown()
	//
	cases := []struct {
		r    rune
		want DotSet
	}{
		{'a', Dots(1)},
		{'b', Dots(1, 2)},
		{'w', Dots(2, 4, 5, 6)},
		{'z', Dots(1, 3, 5, 6)},
	}
	for _, c := range cases {
		d, ok := EnglishTable().Lookup(c.r)
		if !ok {
			t.Errorf("no entry for %q", c.r)
			continue
		}
		if d != c.want {
			t.Errorf("%q = %s, want %s", c.r, d, c.want)
		}
	}
	if _, ok := EnglishTable().Lookup('A'); ok {
		t.Error("capitals are composed by the pipeline, not stored in the table")
	}
}

func TestEnglishTableDigits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "braille.core")
	defer teardown()
	//
	// Digits carry the numeric indicator folded into the letter shape.
	one, ok := EnglishTable().Lookup('1')
	if !ok {
		t.Fatal("no entry for '1'")
	}
	if one != Dots(1).Union(Number) {
		t.Errorf("'1' = %s, want %s", one, Dots(1).Union(Number))
	}
	zero, ok := EnglishTable().Lookup('0')
	if !ok {
		t.Fatal("no entry for '0'")
	}
	if zero != Dots(2, 4, 5).Union(Number) {
		t.Errorf("'0' = %s, want j-shape plus indicator", zero)
	}
}

func TestKoreanTableEntries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "braille.core")
	defer teardown()
	//
	for _, r := range []rune{'ㄱ', 'ㅎ', 'ㅏ', 'ㅣ', '안', '녕', '하', '세', '요'} {
		if _, ok := KoreanTable().Lookup(r); !ok {
			t.Errorf("no entry for %q", r)
		}
	}
	// Arbitrary syllables are not derivable from the jamo entries.
	if _, ok := KoreanTable().Lookup('국'); ok {
		t.Error("syllable coverage is limited to the hard-coded entries")
	}
}

func TestJapaneseTableKatakanaMirror(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "braille.core")
	defer teardown()
	//
	pairs := []struct{ hira, kata rune }{
		{'あ', 'ア'},
		{'こ', 'コ'},
		{'ん', 'ン'},
		{'わ', 'ワ'},
	}
	for _, p := range pairs {
		h, okH := JapaneseTable().Lookup(p.hira)
		k, okK := JapaneseTable().Lookup(p.kata)
		if !okH || !okK {
			t.Errorf("missing kana pair %q/%q", p.hira, p.kata)
			continue
		}
		if h != k {
			t.Errorf("%q = %s but %q = %s", p.hira, h, p.kata, k)
		}
	}
}

func TestPunctTableCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "braille.core")
	defer teardown()
	//
	for _, r := range []rune{'.', ',', '?', '!', ':', ';', '-', '(', ')', '"', '\''} {
		if _, ok := PunctTable().Lookup(r); !ok {
			t.Errorf("no entry for %q", r)
		}
	}
	if d, _ := PunctTable().Lookup('!'); d != Dots(2, 3, 5) {
		t.Errorf("'!' = %s, want {2,3,5}", d)
	}
}

func TestTableRunesSorted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "braille.core")
	defer teardown()
	//
	for _, table := range AllTables() {
		runes := table.Runes()
		if len(runes) != table.Len() {
			t.Errorf("%s: Runes() returned %d entries, Len() = %d", table.Name(), len(runes), table.Len())
		}
		for i := 1; i < len(runes); i++ {
			if runes[i-1] >= runes[i] {
				t.Errorf("%s: Runes() not strictly ascending at %d", table.Name(), i)
			}
		}
	}
}

func TestAuditFindsNoSevereIssues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "braille.core")
	defer teardown()
	//
	for _, issue := range Audit() {
		t.Logf("audit: %s", issue)
		if issue.Severity != SeverityMinor {
			t.Errorf("unexpected severe table issue: %s", issue)
		}
	}
}

func TestScriptOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "braille.core")
	defer teardown()
	//
	cases := []struct {
		r    rune
		want Script
	}{
		{'한', ScriptHangul},
		{'あ', ScriptKana},
		{'ア', ScriptKana},
		{'x', ScriptLatin},
		{'7', ScriptLatin},
		{'!', ScriptNone},
		{'∑', ScriptNone},
		{'ㄱ', ScriptNone}, // compatibility jamo are not classified as Hangul syllables
	}
	for _, c := range cases {
		if got := ScriptOf(c.r); got != c.want {
			t.Errorf("ScriptOf(%q) = %s, want %s", c.r, got, c.want)
		}
	}
}
