package db

import (
	"testing"

	"github.com/dtnitsch/llm-pdf-parser/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	// Use in-memory database for tests
	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func sampleMetadata(name string) *models.DocumentMetadata {
	return &models.DocumentMetadata{
		FilePath:       "papers/" + name + ".pdf",
		FileName:       name,
		PageCount:      10,
		FileSize:       128.25,
		WordCount:      3000,
		VocabularySize: 800,
		TopWords: []models.TopWord{
			{Token: "dados", Count: 42},
			{Token: "modelo", Count: 30},
		},
		IsLatex:  true,
		Language: "pt",
	}
}

func TestInsertExtraction(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	id, err := db.InsertExtraction(sampleMetadata("estudo"))
	if err != nil {
		t.Fatalf("InsertExtraction() error = %v", err)
	}
	if id == 0 {
		t.Error("InsertExtraction() returned 0 ID")
	}

	extractions, err := db.ListExtractions(0)
	if err != nil {
		t.Fatalf("ListExtractions() error = %v", err)
	}
	if len(extractions) != 1 {
		t.Fatalf("got %d extractions, want 1", len(extractions))
	}

	e := extractions[0]
	if e.FileName != "estudo" {
		t.Errorf("file_name = %q, want %q", e.FileName, "estudo")
	}
	if e.PageCount != 10 {
		t.Errorf("page_count = %d, want 10", e.PageCount)
	}
	if e.SizeKB != 128.25 {
		t.Errorf("size_kb = %v, want 128.25", e.SizeKB)
	}
	if !e.IsLatex {
		t.Error("is_latex = false, want true")
	}
	if e.Language != "pt" {
		t.Errorf("language = %q, want %q", e.Language, "pt")
	}
	if len(e.TopWords) != 2 || e.TopWords[0].Token != "dados" || e.TopWords[0].Count != 42 {
		t.Errorf("top_words = %v", e.TopWords)
	}
}

func TestListExtractions_MostRecentFirst(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for _, name := range []string{"primeiro", "segundo", "terceiro"} {
		if _, err := db.InsertExtraction(sampleMetadata(name)); err != nil {
			t.Fatalf("InsertExtraction(%q) error = %v", name, err)
		}
	}

	extractions, err := db.ListExtractions(0)
	if err != nil {
		t.Fatalf("ListExtractions() error = %v", err)
	}
	if len(extractions) != 3 {
		t.Fatalf("got %d extractions, want 3", len(extractions))
	}
	if extractions[0].FileName != "terceiro" {
		t.Errorf("first listed = %q, want %q", extractions[0].FileName, "terceiro")
	}
}

func TestListExtractions_Limit(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for _, name := range []string{"a1", "b2", "c3"} {
		if _, err := db.InsertExtraction(sampleMetadata(name)); err != nil {
			t.Fatalf("InsertExtraction(%q) error = %v", name, err)
		}
	}

	extractions, err := db.ListExtractions(2)
	if err != nil {
		t.Fatalf("ListExtractions() error = %v", err)
	}
	if len(extractions) != 2 {
		t.Errorf("got %d extractions, want 2", len(extractions))
	}
}

func TestListExtractions_Empty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	extractions, err := db.ListExtractions(0)
	if err != nil {
		t.Fatalf("ListExtractions() error = %v", err)
	}
	if len(extractions) != 0 {
		t.Errorf("got %d extractions, want 0", len(extractions))
	}
}
