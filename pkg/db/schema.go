package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA temp_store = MEMORY;

-- Extractions: one row per processed document
CREATE TABLE IF NOT EXISTS extractions (
    extraction_id INTEGER PRIMARY KEY AUTOINCREMENT,
    file_path TEXT NOT NULL,
    file_name TEXT NOT NULL,
    page_count INTEGER NOT NULL,
    word_count INTEGER NOT NULL,
    vocabulary_size INTEGER NOT NULL,
    size_kb REAL NOT NULL,
    is_latex BOOLEAN NOT NULL DEFAULT 0,
    language TEXT,

    -- Ranked words as JSON array: [{"token":"dados","count":42}, ...]
    top_words TEXT,

    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_extractions_created ON extractions(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_extractions_file ON extractions(file_name);
`
