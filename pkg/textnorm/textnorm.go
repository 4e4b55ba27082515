// Package textnorm normalizes text extracted from PDF documents.
//
// Two operations are exposed: Normalize, a plain NFKC composition pass,
// and RepairLatexArtifacts, a substitution table for the broken diacritic
// sequences that some LaTeX-based PDF producers emit when accented Latin
// characters are stored as separate marker glyphs.
package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize applies Unicode NFKC composition: combining marks merge with
// their base letters into single codepoints. Idempotent.
func Normalize(text string) string {
	return norm.NFKC.String(text)
}

// hyphenBreak matches a letter, a hyphen, a line break and a letter:
// a word hyphenated across lines by the typesetter.
var hyphenBreak = regexp.MustCompile(`(\p{L})-\n(\p{L})`)

// repairPair is one entry of the fixed substitution table.
type repairPair struct {
	broken string
	fixed  string
}

// repairTable lists the malformed sequences in application order. The
// broken side is spelled with explicit escapes because the exact codepoint
// sequence is the whole point: combining marks (U+0301 acute, U+0300
// grave, U+0302 circumflex, U+0303 tilde, U+0327 cedilla) appear both
// after the base letter, where NFC would recompose them, and before it,
// where it will not; the spacing modifiers (U+00B4, U+0060, U+02C6,
// U+02DC, U+00B8) are never recomposed by normalization at all.
var repairTable = []repairPair{
	// cedilla
	{"ç", "ç"}, {"̧c", "ç"}, {"¸c", "ç"}, {"c¸", "ç"},
	{"Ç", "Ç"}, {"̧C", "Ç"}, {"¸C", "Ç"}, {"C¸", "Ç"},

	// tilde
	{"ã", "ã"}, {"̃a", "ã"}, {"˜a", "ã"}, {"a˜", "ã"},
	{"õ", "õ"}, {"̃o", "õ"}, {"˜o", "õ"}, {"o˜", "õ"},

	// acute
	{"á", "á"}, {"́a", "á"}, {"´a", "á"}, {"a´", "á"},
	{"é", "é"}, {"́e", "é"}, {"´e", "é"}, {"e´", "é"},
	{"í", "í"}, {"́i", "í"}, {"´i", "í"}, {"i´", "í"},
	{"ó", "ó"}, {"́o", "ó"}, {"´o", "ó"}, {"o´", "ó"},
	{"ú", "ú"}, {"́u", "ú"}, {"´u", "ú"}, {"u´", "ú"},

	// circumflex
	{"â", "â"}, {"̂a", "â"}, {"ˆa", "â"}, {"aˆ", "â"},
	{"ê", "ê"}, {"̂e", "ê"}, {"ˆe", "ê"}, {"eˆ", "ê"},
	{"ô", "ô"}, {"̂o", "ô"}, {"ˆo", "ô"}, {"oˆ", "ô"},

	// grave
	{"à", "à"}, {"̀a", "à"}, {"`a", "à"}, {"a`", "à"},
	{"è", "è"}, {"̀e", "è"}, {"`e", "è"}, {"e`", "è"},

	// smart quotes
	{"“", `"`}, {"”", `"`},
	{"‘", "'"}, {"’", "'"},
}

// RepairLatexArtifacts corrects the fixed table of malformed diacritic
// sequences and joins words hyphenated across line breaks. It is meant to
// run only on text from documents flagged as LaTeX-produced; on other text
// the substitutions can corrupt legitimate punctuation.
func RepairLatexArtifacts(text string) string {
	text = hyphenBreak.ReplaceAllString(text, "$1$2")
	for _, p := range repairTable {
		text = strings.ReplaceAll(text, p.broken, p.fixed)
	}
	return text
}
