// Package headings detects section titles on a PDF page from the font
// sizes of its text spans.
//
// The detector is a multi-stage filter pipeline with ordered exclusion
// rules. The order is load-bearing: a keyword match is checked before the
// punctuation filter, and the punctuation filter before the font-size
// threshold, so reordering the stages changes the output.
package headings

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/dtnitsch/llm-pdf-parser/models"
	"github.com/dtnitsch/llm-pdf-parser/pkg/sections"
)

const (
	// maxTitleLen rejects candidates longer than a plausible heading.
	maxTitleLen = 120
	// maxTitleWords rejects candidates with too many words.
	maxTitleWords = 15
	// sizeRatio is how much larger than the dominant size a span must be.
	sizeRatio = 1.25
	// absoluteMinSize guards small-font documents: when the dominant size
	// is below smallFontCutoff, a heading must be at least this large.
	absoluteMinSize = 14.0
	smallFontCutoff = 10.0
)

// sentencePunctuation disqualifies a candidate as body text. It also
// rejects short headings with abbreviation periods ("Fig. 1").
const sentencePunctuation = ".;,:"

// roundSize rounds a font size to one decimal, collapsing float noise
// between spans rendered at the same nominal size.
func roundSize(size float64) float64 {
	return math.Round(size*10) / 10
}

// DominantFontSize returns a single representative "body text" size for a
// page: the statistical mode of the rounded span sizes, falling back to
// the median when no unique mode exists. Returns 0 for an empty page.
func DominantFontSize(spans []models.Span) float64 {
	if len(spans) == 0 {
		return 0
	}

	counts := make(map[float64]int, len(spans))
	sizes := make([]float64, 0, len(spans))
	for _, s := range spans {
		r := roundSize(s.FontSize)
		counts[r]++
		sizes = append(sizes, r)
	}

	// Mode, only when unique.
	best, bestCount, ties := 0.0, 0, 0
	for size, count := range counts {
		switch {
		case count > bestCount:
			best, bestCount, ties = size, count, 1
		case count == bestCount:
			ties++
		}
	}
	if ties == 1 {
		return best
	}

	// Median fallback. Even length takes the mean of the middle pair.
	sort.Float64s(sizes)
	mid := len(sizes) / 2
	if len(sizes)%2 == 1 {
		return sizes[mid]
	}
	return (sizes[mid-1] + sizes[mid]) / 2
}

// isAllUpper reports whether text contains letters and every letter is
// upper case. All-caps running heads are treated as noise, not titles.
func isAllUpper(text string) bool {
	hasLetter := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// hasLeaderDots reports a run of five or more consecutive dots, the
// telltale of a table-of-contents leader line.
func hasLeaderDots(text string) bool {
	return strings.Contains(text, ".....")
}

// Detect scans the page's spans and returns the detected section titles
// joined with "; ", or ok=false when the page yields none.
func Detect(spans []models.Span) (string, bool) {
	// Only spans with text participate, including in the dominant-size
	// computation.
	candidates := make([]models.Span, 0, len(spans))
	for _, span := range spans {
		if text := strings.TrimSpace(span.Text); text != "" {
			candidates = append(candidates, models.Span{Text: text, FontSize: span.FontSize})
		}
	}

	dominant := DominantFontSize(candidates)

	var titles []string
	seen := make(map[string]struct{})

	for _, span := range candidates {
		text := span.Text
		if len(text) > maxTitleLen {
			continue
		}
		if len(strings.Split(text, " ")) > maxTitleWords {
			continue
		}
		if isAllUpper(text) {
			continue
		}
		if hasLeaderDots(text) {
			continue
		}

		// A section keyword is a title regardless of font size.
		if _, ok := sections.Match(text); !ok {
			if strings.ContainsAny(text, sentencePunctuation) {
				continue
			}
			size := roundSize(span.FontSize)
			if size <= dominant*sizeRatio {
				continue
			}
			if dominant < smallFontCutoff && size < absoluteMinSize {
				continue
			}
		}

		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		titles = append(titles, text)
	}

	if len(titles) == 0 {
		return "", false
	}
	return strings.Join(titles, "; "), true
}
