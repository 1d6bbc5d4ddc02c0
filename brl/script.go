package brl

// Script identifies the Unicode block family a rune belongs to, as far as
// the Braille tables are concerned. Classification is per rune and purely
// block-based; it is independent of any language requested by the caller.
type Script int

const (
	// ScriptNone marks runes outside all blocks the tables know about.
	ScriptNone Script = iota
	// ScriptHangul covers the Hangul syllable block (U+AC00–U+D7A3).
	ScriptHangul
	// ScriptKana covers the contiguous Hiragana and Katakana blocks.
	ScriptKana
	// ScriptLatin covers ASCII letters and digits.
	ScriptLatin
)

func (s Script) String() string {
	switch s {
	case ScriptHangul:
		return "Hangul"
	case ScriptKana:
		return "Kana"
	case ScriptLatin:
		return "Latin"
	default:
		return "None"
	}
}

// IsHangulSyllable reports whether r lies in the Hangul syllable block.
// Compatibility jamo (U+3130–U+318F) are intentionally not included:
// the Korean table keys jamo entries by compatibility jamo runes, but
// input text classification only triggers on full syllables.
func IsHangulSyllable(r rune) bool {
	return r >= 0xAC00 && r <= 0xD7A3
}

// IsKana reports whether r lies in the Hiragana or Katakana block.
// The two blocks are contiguous (U+3040–U+30FF).
func IsKana(r rune) bool {
	return r >= 0x3040 && r <= 0x30FF
}

// IsLatinLetter reports whether r is an ASCII letter A–Z or a–z.
func IsLatinLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// IsASCIIDigit reports whether r is an ASCII digit 0–9.
func IsASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// ScriptOf classifies a single rune by Unicode block.
func ScriptOf(r rune) Script {
	switch {
	case IsHangulSyllable(r):
		return ScriptHangul
	case IsKana(r):
		return ScriptKana
	case IsLatinLetter(r) || IsASCIIDigit(r):
		return ScriptLatin
	}
	return ScriptNone
}
