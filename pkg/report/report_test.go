package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dtnitsch/llm-pdf-parser/models"
)

func sampleMetadata() *models.DocumentMetadata {
	return &models.DocumentMetadata{
		FilePath:       "papers/estudo.pdf",
		FileName:       "estudo",
		Titles:         []string{"Introdução", "Metodologia"},
		PageCount:      12,
		FileSize:       384.5,
		WordCount:      4200,
		VocabularySize: 900,
		TopWords: []models.TopWord{
			{Token: "dados", Count: 42},
			{Token: "modelo", Count: 30},
		},
		Links:    [][]string{{"https://example.org"}, {"https://example.org/b"}},
		IsLatex:  true,
		Language: "pt",
	}
}

func TestMarkdownFragment(t *testing.T) {
	got := Markdown(sampleMetadata())

	for _, want := range []string{
		"## **Dados extraídos**",
		"- Introdução",
		"- Metodologia",
		"**Número de páginas**: 12",
		"**Número de palavras**: 4200",
		"**Número de palavras únicas**: 900",
		"dados (42), modelo (30)",
		"**Tamanho do arquivo (KB)**: 384.50",
		"- https://example.org\n",
		"- https://example.org/b\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("fragment missing %q:\n%s", want, got)
		}
	}
}

func TestMarkdownEmptyTitlesAndLinks(t *testing.T) {
	meta := sampleMetadata()
	meta.Titles = nil
	meta.Links = nil

	got := Markdown(meta)
	if !strings.Contains(got, "(nenhum título detectado)") {
		t.Error("missing placeholder for empty titles")
	}
	if !strings.Contains(got, "(nenhum link encontrado)") {
		t.Error("missing placeholder for empty links")
	}
}

func TestSaveWritesSummaryBeforeData(t *testing.T) {
	dir := t.TempDir()

	path, err := Save(dir, sampleMetadata(), "## **Resumo**\n\ntexto do resumo")
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if path != filepath.Join(dir, "estudo.md") {
		t.Errorf("path = %q", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	text := string(content)

	summaryAt := strings.Index(text, "## **Resumo**")
	dataAt := strings.Index(text, "## **Dados extraídos**")
	if summaryAt == -1 || dataAt == -1 {
		t.Fatalf("report missing sections:\n%s", text)
	}
	if summaryAt > dataAt {
		t.Error("summary section placed after extracted data")
	}
}

func TestSaveWithoutSummary(t *testing.T) {
	dir := t.TempDir()

	path, err := Save(dir, sampleMetadata(), "")
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	if !strings.HasPrefix(string(content), "## **Dados extraídos**") {
		t.Errorf("report without summary should start with the data fragment:\n%s", content)
	}
}
