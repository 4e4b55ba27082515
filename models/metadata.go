// Package models defines the shared records passed between the extraction
// pipeline, the report layer and the CLI.
package models

// TopWord is one entry of the most-frequent-words ranking.
type TopWord struct {
	Token string `json:"token" yaml:"token"`
	Count int    `json:"count" yaml:"count"`
}

// DocumentMetadata is the aggregate record produced by one extraction run.
// It is built once per invocation and never mutated after construction.
type DocumentMetadata struct {
	FilePath string `json:"file_path" yaml:"file_path"`
	FileName string `json:"file_name" yaml:"file_name"`

	// Titles holds one joined string per page that had detected headings,
	// in page order. Pages without headings contribute nothing.
	Titles []string `json:"titles" yaml:"titles"`

	PageCount int     `json:"page_count" yaml:"page_count"`
	FileSize  float64 `json:"size_kb" yaml:"size_kb"`

	// Word statistics over the stopword-filtered token stream.
	WordCount      int       `json:"word_count" yaml:"word_count"`
	VocabularySize int       `json:"vocabulary_size" yaml:"vocabulary_size"`
	TopWords       []TopWord `json:"top_words" yaml:"top_words"`

	// Links holds, for each page with at least one URI-bearing link, that
	// page's URIs in page order.
	Links [][]string `json:"links" yaml:"links"`

	// IsLatex reports whether the producer/creator metadata identified a
	// LaTeX toolchain (drives the diacritic repair pass).
	IsLatex bool `json:"is_latex" yaml:"is_latex"`

	// Language is the ISO-639-1 code detected from the document text,
	// empty when detection was inconclusive.
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
}
