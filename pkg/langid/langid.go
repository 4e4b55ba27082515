// Package langid detects the main language of extracted document text.
// The tool targets Portuguese documents that occasionally mix in English,
// so the detector is restricted to those two.
package langid

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// sampleRunes bounds how much text feeds the detector; language identity
// is settled long before that.
const sampleRunes = 4000

var (
	once     sync.Once
	detector lingua.LanguageDetector
)

// Detect returns the ISO-639-1 code ("pt", "en") of the text's language,
// or an empty string when detection is inconclusive.
func Detect(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if runes := []rune(text); len(runes) > sampleRunes {
		text = string(runes[:sampleRunes])
	}

	once.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.Portuguese, lingua.English).
			Build()
	})

	lang, ok := detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}
