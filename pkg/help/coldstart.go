package help

const ColdstartYAML = `# llm-pdf-parser Quick Start

commands:
  extract_data: |
    llm-pdf-parser extract --path artigo.pdf

  extract_with_images: |
    llm-pdf-parser extract --path artigo.pdf --images --image-name figuras

  extract_with_summary: |
    llm-pdf-parser extract --path artigo.pdf --summarize

  extract_everything: |
    llm-pdf-parser extract --path artigo.pdf --all

  list_history: |
    llm-pdf-parser history --limit 10

outputs:
  - "Console table with pages, words, section titles and links"
  - "markdown/<pdf name>.md (summary first, extracted data after)"
  - "images/<name>/ when --images or --all is set"

configuration:
  file: "config.yaml in the working directory (optional)"
  keys:
    ollama_url: "Ollama server, default http://localhost:11434"
    ollama_model: "summarization model"
    markdown_dir: "report output directory, default markdown"
    images_dir: "image output directory, default images"
    history_db: "SQLite path, default next to the binary"

history_system:
  - "Every successful extract run is recorded in SQLite"
  - "Auto-incrementing extraction IDs (1, 2, 3...)"
  - "'history' prints recent runs as YAML, newest first"
  - "History failures are warnings; they never fail an extraction"

error_behavior:
  - "Invalid paths fail fast before any parsing"
  - "Unreadable page text aborts the whole extraction"
  - "A page whose layout cannot be parsed just contributes no title"
  - "Summaries require a running Ollama server"
`
