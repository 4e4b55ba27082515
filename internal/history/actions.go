package history

import (
	"fmt"

	"github.com/dtnitsch/llm-pdf-parser/models"
	dbpkg "github.com/dtnitsch/llm-pdf-parser/pkg/db"
	"github.com/dtnitsch/llm-pdf-parser/pkg/report"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// historyEntry is the YAML shape of one listed run.
type historyEntry struct {
	ID             int64   `yaml:"id"`
	CreatedAt      string  `yaml:"created_at"`
	File           string  `yaml:"file"`
	Pages          int     `yaml:"pages"`
	Words          int     `yaml:"words"`
	VocabularySize int     `yaml:"vocabulary_size"`
	SizeKB         float64 `yaml:"size_kb"`
	IsLatex        bool    `yaml:"is_latex"`
	Language       string  `yaml:"language,omitempty"`
	TopWords       string  `yaml:"top_words,omitempty"`
}

func HistoryAction(c *cli.Context) error {
	config, err := models.LoadConfig("config.yaml")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var database *dbpkg.DB
	if config.HistoryDB != "" {
		database, err = dbpkg.OpenAt(config.HistoryDB)
	} else {
		database, err = dbpkg.Open()
	}
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	extractions, err := database.ListExtractions(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list extractions: %w", err)
	}

	if len(extractions) == 0 {
		fmt.Println("No extractions found")
		return nil
	}

	entries := make([]historyEntry, 0, len(extractions))
	for _, e := range extractions {
		entries = append(entries, historyEntry{
			ID:             e.ExtractionID,
			CreatedAt:      e.CreatedAt.Format("2006-01-02 15:04:05"),
			File:           e.FilePath,
			Pages:          e.PageCount,
			Words:          e.WordCount,
			VocabularySize: e.VocabularySize,
			SizeKB:         e.SizeKB,
			IsLatex:        e.IsLatex,
			Language:       e.Language,
			TopWords:       report.FormatTopWords(e.TopWords),
		})
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	fmt.Printf("# Extractions: %d\n", len(entries))
	fmt.Print(string(data))
	return nil
}
