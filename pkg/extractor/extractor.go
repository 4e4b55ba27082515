// Package extractor aggregates per-page detection results into one
// DocumentMetadata record: section titles, links, word statistics, page
// count and file size.
package extractor

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/llm-pdf-parser/models"
	"github.com/dtnitsch/llm-pdf-parser/pkg/headings"
	"github.com/dtnitsch/llm-pdf-parser/pkg/langid"
	"github.com/dtnitsch/llm-pdf-parser/pkg/pdfdoc"
	"github.com/dtnitsch/llm-pdf-parser/pkg/storage"
	"github.com/dtnitsch/llm-pdf-parser/pkg/textnorm"
	"github.com/dtnitsch/llm-pdf-parser/pkg/wordstats"
)

// Source is the page-level view the aggregator needs from an open
// document. *pdfdoc.Document satisfies it; tests substitute fakes.
type Source interface {
	PageCount() int
	IsLatexProduced() bool
	PageText(pageNum int) (string, error)
	PageSpans(pageNum int) ([]models.Span, error)
	PageLinks(pageNum int) []string
}

// ExtractMetadata opens the PDF at path, walks its pages in order and
// returns the assembled metadata record. On any document-level read
// failure the whole extraction fails; no partial record is returned.
func ExtractMetadata(path string, logger *slog.Logger) (*models.DocumentMetadata, error) {
	doc, err := pdfdoc.Open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	s := &storage.Storage{}
	sizeKB, err := s.SizeKB(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return extract(doc, path, sizeKB, logger)
}

// extract runs the aggregation over an already-open source.
func extract(src Source, path string, sizeKB float64, logger *slog.Logger) (*models.DocumentMetadata, error) {
	if logger == nil {
		logger = slog.Default()
	}

	isLatex := src.IsLatexProduced()
	pageCount := src.PageCount()

	var (
		titles   []string
		links    [][]string
		fullText strings.Builder
	)

	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		text, err := src.PageText(pageNum)
		if err != nil {
			// Text feeds the document-wide word statistics; a page we
			// cannot read makes the whole record unreliable.
			return nil, fmt.Errorf("extraction failed: %w", err)
		}
		fullText.WriteString(text)
		fullText.WriteString("\n")

		// A failed span parse is isolated: the page contributes no title.
		spans, err := src.PageSpans(pageNum)
		if err != nil {
			logger.Warn("title detection skipped", "page", pageNum, "error", err)
		} else if title, ok := headings.Detect(spans); ok {
			if isLatex {
				title = textnorm.RepairLatexArtifacts(title)
			}
			titles = append(titles, textnorm.Normalize(title))
		}

		if uris := src.PageLinks(pageNum); len(uris) > 0 {
			links = append(links, uris)
		}
	}

	text := fullText.String()
	stats := wordstats.Compute(text, isLatex)

	return &models.DocumentMetadata{
		FilePath:       path,
		FileName:       strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Titles:         titles,
		PageCount:      pageCount,
		FileSize:       sizeKB,
		WordCount:      stats.WordCount,
		VocabularySize: stats.VocabularySize,
		TopWords:       stats.TopWords,
		Links:          links,
		IsLatex:        isLatex,
		Language:       langid.Detect(text),
	}, nil
}
