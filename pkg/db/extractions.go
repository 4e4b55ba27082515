package db

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dtnitsch/llm-pdf-parser/models"
)

// Extraction is one recorded document run
type Extraction struct {
	ExtractionID   int64
	FilePath       string
	FileName       string
	PageCount      int
	WordCount      int
	VocabularySize int
	SizeKB         float64
	IsLatex        bool
	Language       string
	TopWords       []models.TopWord
	CreatedAt      time.Time
}

// InsertExtraction records a completed extraction and returns its ID
func (db *DB) InsertExtraction(meta *models.DocumentMetadata) (int64, error) {
	topWords, err := json.Marshal(meta.TopWords)
	if err != nil {
		return 0, fmt.Errorf("failed to encode top words: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO extractions (file_path, file_name, page_count, word_count, vocabulary_size, size_kb, is_latex, language, top_words)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, meta.FilePath, meta.FileName, meta.PageCount, meta.WordCount, meta.VocabularySize,
		meta.FileSize, meta.IsLatex, meta.Language, string(topWords))
	if err != nil {
		return 0, fmt.Errorf("failed to insert extraction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get extraction ID: %w", err)
	}
	return id, nil
}

// ListExtractions retrieves extractions ordered by most recent first
func (db *DB) ListExtractions(limit int) ([]Extraction, error) {
	query := `
		SELECT extraction_id, file_path, file_name, page_count, word_count,
		       vocabulary_size, size_kb, is_latex, language, top_words, created_at
		FROM extractions
		ORDER BY created_at DESC, extraction_id DESC
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list extractions: %w", err)
	}
	defer rows.Close()

	var extractions []Extraction
	for rows.Next() {
		var e Extraction
		var topWordsJSON string
		if err := rows.Scan(&e.ExtractionID, &e.FilePath, &e.FileName, &e.PageCount,
			&e.WordCount, &e.VocabularySize, &e.SizeKB, &e.IsLatex, &e.Language,
			&topWordsJSON, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan extraction: %w", err)
		}
		if topWordsJSON != "" {
			if err := json.Unmarshal([]byte(topWordsJSON), &e.TopWords); err != nil {
				return nil, fmt.Errorf("failed to decode top words: %w", err)
			}
		}
		extractions = append(extractions, e)
	}

	return extractions, rows.Err()
}
