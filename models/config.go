package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration for the tool. Everything has a
// default; a config.yaml in the working directory overrides it.
type Config struct {
	// Ollama endpoint and model used for summaries.
	OllamaURL   string `yaml:"ollama_url"`
	OllamaModel string `yaml:"ollama_model"`

	// Output locations.
	MarkdownDir string `yaml:"markdown_dir"`
	ImagesDir   string `yaml:"images_dir"`

	// Extraction history database. Empty means "next to the binary".
	HistoryDB string `yaml:"history_db"`
}

// DefaultConfig returns the built-in configuration. The model default is
// the summarization model the tool was tuned against.
func DefaultConfig() Config {
	return Config{
		OllamaURL:   "http://localhost:11434",
		OllamaModel: "hf.co/tensorblock/SummLlama3.2-3B-GGUF:Q5_K_M",
		MarkdownDir: "markdown",
		ImagesDir:   "images",
	}
}

// LoadConfig reads a YAML config file, falling back to defaults when the
// file does not exist. A present-but-invalid file is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
