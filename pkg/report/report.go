// Package report renders extraction results for the terminal and for the
// Markdown file the tool leaves behind.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/dtnitsch/llm-pdf-parser/models"
	"github.com/dtnitsch/llm-pdf-parser/pkg/storage"
)

// Markdown renders the extracted-data fragment of the report.
func Markdown(meta *models.DocumentMetadata) string {
	var b strings.Builder

	b.WriteString("## **Dados extraídos**\n\n")

	b.WriteString("**Título das seções**:\n")
	if len(meta.Titles) == 0 {
		b.WriteString("- (nenhum título detectado)\n")
	}
	for _, t := range meta.Titles {
		fmt.Fprintf(&b, "- %s\n", t)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "**Número de páginas**: %d\n\n", meta.PageCount)
	fmt.Fprintf(&b, "**Número de palavras**: %d\n\n", meta.WordCount)
	fmt.Fprintf(&b, "**Número de palavras únicas**: %d\n\n", meta.VocabularySize)
	fmt.Fprintf(&b, "**10 palavras mais citadas**: %s\n\n", FormatTopWords(meta.TopWords))
	fmt.Fprintf(&b, "**Tamanho do arquivo (KB)**: %.2f\n\n", meta.FileSize)

	b.WriteString("**Links**:\n")
	links := flattenLinks(meta.Links)
	if len(links) == 0 {
		b.WriteString("- (nenhum link encontrado)\n")
	}
	for _, l := range links {
		fmt.Fprintf(&b, "- %s\n", l)
	}
	b.WriteString("\n")

	return b.String()
}

// FormatTopWords renders the ranked words as "palavra (n)" pairs.
func FormatTopWords(words []models.TopWord) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		parts = append(parts, fmt.Sprintf("%s (%d)", w.Token, w.Count))
	}
	return strings.Join(parts, ", ")
}

func flattenLinks(groups [][]string) []string {
	var flat []string
	for _, group := range groups {
		flat = append(flat, group...)
	}
	return flat
}

// WriteConsole prints the extraction results as an aligned table.
func WriteConsole(w io.Writer, meta *models.DocumentMetadata) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintf(tw, "Arquivo\t%s\n", meta.FileName)
	fmt.Fprintf(tw, "Páginas\t%d\n", meta.PageCount)
	fmt.Fprintf(tw, "Palavras\t%d\n", meta.WordCount)
	fmt.Fprintf(tw, "Palavras únicas\t%d\n", meta.VocabularySize)
	fmt.Fprintf(tw, "Tamanho (KB)\t%.2f\n", meta.FileSize)
	fmt.Fprintf(tw, "LaTeX\t%v\n", meta.IsLatex)
	if meta.Language != "" {
		fmt.Fprintf(tw, "Idioma\t%s\n", meta.Language)
	}
	fmt.Fprintf(tw, "Títulos\t%s\n", strings.Join(meta.Titles, "; "))
	fmt.Fprintf(tw, "Top 10\t%s\n", FormatTopWords(meta.TopWords))
	fmt.Fprintf(tw, "Links\t%d\n", len(flattenLinks(meta.Links)))

	tw.Flush()
}

// Save writes the final Markdown report to dir/<file name>.md. The
// summary, when present, comes before the extracted-data fragment.
func Save(dir string, meta *models.DocumentMetadata, summary string) (string, error) {
	var b strings.Builder
	if summary != "" {
		b.WriteString(summary)
		b.WriteString("\n\n")
	}
	b.WriteString(Markdown(meta))
	b.WriteString("\n")

	path := filepath.Join(dir, meta.FileName+".md")
	s := &storage.Storage{}
	if err := s.SaveFile(path, []byte(b.String())); err != nil {
		return "", err
	}
	return path, nil
}
