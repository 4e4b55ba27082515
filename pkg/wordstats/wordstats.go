// Package wordstats tokenizes document text and computes stopword-filtered
// word frequency statistics.
package wordstats

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dtnitsch/llm-pdf-parser/models"
	"github.com/dtnitsch/llm-pdf-parser/pkg/textnorm"
)

// topN is how many of the most frequent tokens are reported.
const topN = 10

// wordPattern extracts maximal runs of Unicode letters. Digits and
// underscores are separators, not word characters.
var wordPattern = regexp.MustCompile(`\p{L}+`)

// Stats holds the word statistics for one document.
type Stats struct {
	WordCount      int
	VocabularySize int
	TopWords       []models.TopWord
}

// Compute tokenizes text and returns its filtered word count, vocabulary
// size and top-10 most frequent tokens. Ties in the ranking are broken by
// order of first occurrence in the token stream, not alphabetically.
// When isLatex is set the diacritic repair pass runs before tokenization.
func Compute(text string, isLatex bool) Stats {
	if isLatex {
		text = textnorm.RepairLatexArtifacts(text)
	}
	text = textnorm.Normalize(text)

	tokens := wordPattern.FindAllString(strings.ToLower(text), -1)

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	wordCount := 0

	for _, token := range tokens {
		if utf8.RuneCountInString(token) <= 1 {
			continue
		}
		if IsStopword(token) {
			continue
		}
		wordCount++
		if _, ok := counts[token]; !ok {
			firstSeen[token] = wordCount
		}
		counts[token]++
	}

	ranked := make([]models.TopWord, 0, len(counts))
	for token, count := range counts {
		ranked = append(ranked, models.TopWord{Token: token, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Token] < firstSeen[ranked[j].Token]
	})

	limit := topN
	if len(ranked) < limit {
		limit = len(ranked)
	}

	return Stats{
		WordCount:      wordCount,
		VocabularySize: len(counts),
		TopWords:       ranked[:limit:limit],
	}
}
