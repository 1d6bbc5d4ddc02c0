package brlconv

import (
	"strings"

	"github.com/npillmayer/braille/brl"
	"golang.org/x/text/language"
)

// Language tags the dominant script mixture of a span of text. It is the
// result type of [DetectLanguage]; it deliberately is not a lookup key —
// conversion dispatches on each rune's own script, not on a Language.
type Language int

const (
	// English is the default when no known script is present.
	English Language = iota
	// Korean marks text containing Hangul syllables only.
	Korean
	// Japanese marks text containing kana only.
	Japanese
	// Mixed marks text where two or more scripts are present.
	Mixed
)

func (l Language) String() string {
	switch l {
	case Korean:
		return "korean"
	case Japanese:
		return "japanese"
	case Mixed:
		return "mixed"
	default:
		return "english"
	}
}

// Tag maps a Language onto a BCP 47 language tag. Mixed text has no
// single language and maps to the undetermined tag.
func (l Language) Tag() language.Tag {
	switch l {
	case Korean:
		return language.Korean
	case Japanese:
		return language.Japanese
	case Mixed:
		return language.Und
	default:
		return language.English
	}
}

// ParseLanguage parses a language name as printed by [Language.String].
// Matching is case-insensitive.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "english", "en":
		return English, nil
	case "korean", "ko":
		return Korean, nil
	case "japanese", "ja":
		return Japanese, nil
	case "mixed":
		return Mixed, nil
	}
	return English, errConv("unknown language name " + s)
}

// DetectLanguage classifies text by script presence, not frequency: it
// tests whether any Hangul syllable, any kana, and any Latin letter
// occur. Two or more scripts present yields [Mixed]; exactly one yields
// that script's language; none (digits, punctuation, symbols only)
// defaults to [English].
//
// Detection only informs language auto-selection in callers; it has no
// influence on conversion, which classifies every rune independently.
func DetectLanguage(text string) Language {
	var hangul, kana, latin bool
	for _, r := range text {
		switch {
		case brl.IsHangulSyllable(r):
			hangul = true
		case brl.IsKana(r):
			kana = true
		case brl.IsLatinLetter(r):
			latin = true
		}
		if hangul && kana && latin {
			break
		}
	}
	present := 0
	for _, b := range []bool{hangul, kana, latin} {
		if b {
			present++
		}
	}
	var lang Language
	switch {
	case present >= 2:
		lang = Mixed
	case hangul:
		lang = Korean
	case kana:
		lang = Japanese
	default:
		lang = English
	}
	tracer().Debugf("detected language %s (hangul=%v kana=%v latin=%v)", lang, hangul, kana, latin)
	return lang
}
