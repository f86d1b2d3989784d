package keywords

import (
	"strings"
	"unicode/utf8"

	snowballeng "github.com/kljensen/snowball/english"
)

// Language selects the stemming algorithm. It is an explicit parameter on
// every entry point; there is no content-based detection.
type Language string

const (
	LanguageCzech   Language = "cs"
	LanguageEnglish Language = "en"
)

// DefaultLanguage is applied when a request leaves the language empty.
const DefaultLanguage = LanguageCzech

// Valid reports whether l names a supported language.
func (l Language) Valid() bool {
	return l == LanguageCzech || l == LanguageEnglish
}

// Stem reduces a lowercased term to its canonical root. English uses the
// snowball stemmer; Czech uses a light suffix stripper (case endings and
// possessives), since no Go snowball port covers Czech. Deterministic and
// side-effect free; unknown languages fall back to Czech.
func Stem(lang Language, term string) string {
	if lang == LanguageEnglish {
		return snowballeng.Stem(term, false)
	}
	return stemCzech(term)
}

// Case endings stripped by the Czech light stemmer, longest first. Length
// guards are in runes so suffixes with diacritics count correctly.
var (
	czCase5 = []string{"atech"}
	czCase4 = []string{"ětem", "etem", "atům"}
	czCase3 = []string{
		"ech", "ich", "ích", "ého", "ěmi", "emi", "ému", "ete", "eti",
		"iho", "ího", "ími", "imu", "ách", "ata", "aty", "ých", "ama",
		"ami", "ové", "ovi", "ými",
	}
	czCase2 = []string{"em", "es", "ém", "ím", "ům", "at", "ám", "os", "us", "ým", "mi", "ou"}
	czCase1 = []string{"a", "e", "i", "o", "u", "ů", "y", "á", "é", "í", "ý", "ě"}
)

func stemCzech(word string) string {
	word = czRemoveCase(word)
	return czRemovePossessive(word)
}

func czRemoveCase(word string) string {
	n := utf8.RuneCountInString(word)
	if n > 7 {
		if s, ok := czStripAny(word, czCase5); ok {
			return s
		}
	}
	if n > 6 {
		if s, ok := czStripAny(word, czCase4); ok {
			return s
		}
	}
	if n > 5 {
		if s, ok := czStripAny(word, czCase3); ok {
			return s
		}
	}
	if n > 4 {
		if s, ok := czStripAny(word, czCase2); ok {
			return s
		}
	}
	if n > 3 {
		if s, ok := czStripAny(word, czCase1); ok {
			return s
		}
	}
	return word
}

func czRemovePossessive(word string) string {
	if utf8.RuneCountInString(word) <= 5 {
		return word
	}
	if s, ok := czStripAny(word, []string{"ov", "ův", "in"}); ok {
		return s
	}
	return word
}

func czStripAny(word string, suffixes []string) (string, bool) {
	for _, suf := range suffixes {
		if strings.HasSuffix(word, suf) {
			return word[:len(word)-len(suf)], true
		}
	}
	return word, false
}
