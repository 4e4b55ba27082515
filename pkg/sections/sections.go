// Package sections recognizes canonical academic section headings in
// Portuguese documents (Introdução, Resumo, Metodologia, ...).
package sections

import (
	"regexp"
	"strings"
)

// maxWords is the word budget for a heading candidate. Longer strings are
// body text that slipped into the candidate list, never headings.
const maxWords = 3

// leadingNumbering strips numbering runs like "1. ", "2.3 - " from a
// matched heading.
var leadingNumbering = regexp.MustCompile(`^[\d.\-\s]+`)

// keywordPattern is the fixed vocabulary of canonical section names,
// case-insensitive and accent-aware. Order inside the alternation does not
// matter for matching; the list is kept alphabetical-ish for review.
var keywordPattern = regexp.MustCompile(`(?i)\b(` +
	`introdução|` +
	`resumo|` +
	`metodologia|` +
	`resultados?|` +
	`discussão|` +
	`conclusão|conclusões|` +
	`considerações\s+finais|` +
	`referências?|` +
	`agradecimentos` +
	`)\b`)

// Match reports whether candidate is a canonical section heading. On a
// match it returns the candidate with any leading numbering or punctuation
// run removed ("1. Introdução" -> "Introdução"). Candidates longer than
// three whitespace-separated words never match.
func Match(candidate string) (string, bool) {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return "", false
	}
	if len(strings.Fields(trimmed)) > maxWords {
		return "", false
	}
	if !keywordPattern.MatchString(trimmed) {
		return "", false
	}
	return leadingNumbering.ReplaceAllString(trimmed, ""), true
}
