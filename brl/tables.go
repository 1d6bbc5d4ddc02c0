package brl

import "sort"

// Table is an immutable mapping from single runes to Braille dot sets.
// Tables are created at package initialization and never mutated, hence
// safe for concurrent lookup.
type Table struct {
	name string
	m    map[rune]DotSet
}

// Name returns the table's display name, e.g. "korean".
func (t *Table) Name() string {
	return t.name
}

// Lookup returns the dot set for r and whether r is covered by the table.
func (t *Table) Lookup(r rune) (DotSet, bool) {
	d, ok := t.m[r]
	return d, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.m)
}

// Runes returns all covered runes in ascending code point order.
func (t *Table) Runes() []rune {
	runes := make([]rune, 0, len(t.m))
	for r := range t.m {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}

// KoreanTable returns the Korean Braille table: jamo-level entries keyed
// by compatibility jamo, plus a handful of precomposed syllables.
func KoreanTable() *Table { return &koreanTable }

// JapaneseTable returns the Japanese kana table. Hiragana entries are
// authored directly; their katakana counterparts are derived at package
// initialization via the +0x60 block offset.
func JapaneseTable() *Table { return &japaneseTable }

// EnglishTable returns the English letter/digit table. Lowercase letters
// map to their base patterns; digit entries already carry the numeric
// indicator dots folded in. Capitals are composed by the conversion
// pipeline from [Capital] and the lowercase pattern.
func EnglishTable() *Table { return &englishTable }

// PunctTable returns the punctuation table.
func PunctTable() *Table { return &punctTable }

// AllTables returns the four static tables, in classification order.
func AllTables() []*Table {
	return []*Table{&koreanTable, &japaneseTable, &englishTable, &punctTable}
}

// Korean Braille (한국 점자) at the jamo level. Initial-consonant and
// vowel patterns only; final-consonant (받침) patterns differ and are not
// represented. Keys are compatibility jamo (U+3131–U+3163).
var koreanTable = Table{
	name: "korean",
	m: map[rune]DotSet{
		'ㄱ': Dots(4),
		'ㄴ': Dots(1, 4),
		'ㄷ': Dots(2, 4),
		'ㄹ': Dots(5),
		'ㅁ': Dots(1, 5),
		'ㅂ': Dots(4, 5),
		'ㅅ': Dots(6),
		'ㅇ': Dots(1, 2, 4, 5),
		'ㅈ': Dots(4, 6),
		'ㅊ': Dots(5, 6),
		'ㅋ': Dots(1, 2, 4),
		'ㅌ': Dots(1, 2, 5),
		'ㅍ': Dots(1, 4, 5),
		'ㅎ': Dots(2, 4, 5),
		'ㅏ': Dots(1, 2, 6),
		'ㅑ': Dots(3, 4, 5),
		'ㅓ': Dots(2, 3, 4),
		'ㅕ': Dots(1, 5, 6),
		'ㅗ': Dots(1, 3, 6),
		'ㅛ': Dots(3, 4, 6),
		'ㅜ': Dots(1, 3, 4),
		'ㅠ': Dots(1, 4, 6),
		'ㅡ': Dots(2, 4, 6),
		'ㅣ': Dots(1, 3, 5),
		'ㅐ': Dots(1, 2, 3, 5),
		'ㅔ': Dots(1, 3, 4, 5),
		// Precomposed syllables, folded into single cells ad hoc. Full
		// Hangul coverage needs initial/medial/final decomposition, which
		// this table does not attempt.
		'안': Dots(1, 2, 5, 6),
		'녕': Dots(1, 4, 5, 6),
		'하': Dots(1, 2, 4, 5, 6),
		'세': Dots(1, 3, 4, 5, 6),
		'요': Dots(3, 4, 6),
	},
}

// Japanese Braille (てんじ), gojūon rows plus や/ら/わ rows and ん.
// Voiced and small kana are not covered and fall through to the
// unrecognized marker.
var japaneseTable = Table{
	name: "japanese",
	m: map[rune]DotSet{
		'あ': Dots(1),
		'い': Dots(1, 2),
		'う': Dots(1, 4),
		'え': Dots(1, 2, 4),
		'お': Dots(2, 4),
		'か': Dots(1, 6),
		'き': Dots(1, 2, 6),
		'く': Dots(1, 4, 6),
		'け': Dots(1, 2, 4, 6),
		'こ': Dots(2, 4, 6),
		'さ': Dots(1, 5, 6),
		'し': Dots(1, 2, 5, 6),
		'す': Dots(1, 4, 5, 6),
		'せ': Dots(1, 2, 4, 5, 6),
		'そ': Dots(2, 4, 5, 6),
		'た': Dots(1, 3, 5),
		'ち': Dots(1, 2, 3, 5),
		'つ': Dots(1, 3, 4, 5),
		'て': Dots(1, 2, 3, 4, 5),
		'と': Dots(2, 3, 4, 5),
		'な': Dots(1, 3),
		'に': Dots(1, 2, 3),
		'ぬ': Dots(1, 3, 4),
		'ね': Dots(1, 2, 3, 4),
		'の': Dots(2, 3, 4),
		'は': Dots(1, 3, 6),
		'ひ': Dots(1, 2, 3, 6),
		'ふ': Dots(1, 3, 4, 6),
		'へ': Dots(1, 2, 3, 4, 6),
		'ほ': Dots(2, 3, 4, 6),
		'ま': Dots(1, 3, 5, 6),
		'み': Dots(1, 2, 3, 5, 6),
		'む': Dots(1, 3, 4, 5, 6),
		'め': Dots(1, 2, 3, 4, 5, 6),
		'も': Dots(2, 3, 4, 5, 6),
		'や': Dots(3, 4),
		'ゆ': Dots(3, 4, 6),
		'よ': Dots(3, 4, 5),
		'ら': Dots(1, 5),
		'り': Dots(1, 2, 5),
		'る': Dots(1, 4, 5),
		'れ': Dots(1, 2, 4, 5),
		'ろ': Dots(2, 4, 5),
		'わ': Dots(3),
		'を': Dots(3, 5),
		'ん': Dots(3, 5, 6),
	},
}

// English Braille, lowercase letters. Digits are added at package
// initialization from the a–j shapes with the numeric indicator folded
// in (see init below).
var englishTable = Table{
	name: "english",
	m: map[rune]DotSet{
		'a': Dots(1),
		'b': Dots(1, 2),
		'c': Dots(1, 4),
		'd': Dots(1, 4, 5),
		'e': Dots(1, 5),
		'f': Dots(1, 2, 4),
		'g': Dots(1, 2, 4, 5),
		'h': Dots(1, 2, 5),
		'i': Dots(2, 4),
		'j': Dots(2, 4, 5),
		'k': Dots(1, 3),
		'l': Dots(1, 2, 3),
		'm': Dots(1, 3, 4),
		'n': Dots(1, 3, 4, 5),
		'o': Dots(1, 3, 5),
		'p': Dots(1, 2, 3, 4),
		'q': Dots(1, 2, 3, 4, 5),
		'r': Dots(1, 2, 3, 5),
		's': Dots(2, 3, 4),
		't': Dots(2, 3, 4, 5),
		'u': Dots(1, 3, 6),
		'v': Dots(1, 2, 3, 6),
		'w': Dots(2, 4, 5, 6),
		'x': Dots(1, 3, 4, 6),
		'y': Dots(1, 3, 4, 5, 6),
		'z': Dots(1, 3, 5, 6),
	},
}

var punctTable = Table{
	name: "punctuation",
	m: map[rune]DotSet{
		'.':  Dots(2, 5, 6),
		',':  Dots(2),
		'?':  Dots(2, 3, 6),
		'!':  Dots(2, 3, 5),
		':':  Dots(2, 5),
		';':  Dots(2, 3),
		'-':  Dots(3, 6),
		'(':  Dots(1, 2, 6),
		')':  Dots(3, 4, 5),
		'"':  Dots(2, 3, 6),
		'\'': Dots(3),
	},
}

func init() {
	// Digits reuse the a–j shapes, with the numeric indicator collapsed
	// into the same cell.
	shapes := []rune{'j', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i'}
	for digit, letter := range shapes {
		englishTable.m[rune('0'+digit)] = englishTable.m[letter].Union(Number)
	}
	// Katakana mirrors hiragana one block up.
	const katakanaOffset = 0x60
	hiragana := make([]rune, 0, japaneseTable.Len())
	for r := range japaneseTable.m {
		if r >= 0x3041 && r <= 0x3096 {
			hiragana = append(hiragana, r)
		}
	}
	for _, r := range hiragana {
		japaneseTable.m[r+katakanaOffset] = japaneseTable.m[r]
	}
	tracer().Debugf("braille tables initialized: ko=%d ja=%d en=%d punct=%d",
		koreanTable.Len(), japaneseTable.Len(), englishTable.Len(), punctTable.Len())
}
