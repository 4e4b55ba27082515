package extract

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dtnitsch/llm-pdf-parser/internal/common"
	"github.com/dtnitsch/llm-pdf-parser/models"
	dbpkg "github.com/dtnitsch/llm-pdf-parser/pkg/db"
	"github.com/dtnitsch/llm-pdf-parser/pkg/extractor"
	"github.com/dtnitsch/llm-pdf-parser/pkg/images"
	"github.com/dtnitsch/llm-pdf-parser/pkg/llm"
	"github.com/dtnitsch/llm-pdf-parser/pkg/pdfdoc"
	"github.com/dtnitsch/llm-pdf-parser/pkg/report"
	"github.com/urfave/cli/v2"
)

func ExtractAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	path := c.String("path")
	if err := common.ValidatePDFPath(path); err != nil {
		return err
	}

	config, err := models.LoadConfig("config.yaml")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	withImages := c.Bool("images") || c.Bool("all")
	withSummary := c.Bool("summarize") || c.Bool("all")

	logger.Info("extracting document", "path", path, "images", withImages, "summarize", withSummary)

	meta, err := extractor.ExtractMetadata(path, logger)
	if err != nil {
		return fmt.Errorf("failed to extract %s: %w", path, err)
	}
	logger.Info("extraction complete",
		"pages", meta.PageCount, "words", meta.WordCount, "titles", len(meta.Titles), "latex", meta.IsLatex)

	report.WriteConsole(os.Stdout, meta)

	if withImages {
		name := c.String("image-name")
		if name == "" {
			name = meta.FileName
		}
		// Image failures do not abort the run; the metadata is already good.
		if outDir, err := images.Extract(path, config.ImagesDir, name); err != nil {
			logger.Warn("failed to extract images", "error", err)
		} else {
			logger.Info("images extracted", "dir", outDir)
		}
	}

	var summary string
	if withSummary {
		text, err := documentText(path)
		if err != nil {
			return fmt.Errorf("failed to read document text: %w", err)
		}

		summarizer, err := llm.NewSummarizer(config.OllamaURL, config.OllamaModel)
		if err != nil {
			return err
		}

		logger.Info("requesting summary", "model", config.OllamaModel)
		summary, err = summarizer.Summarize(c.Context, text)
		if err != nil {
			return fmt.Errorf("failed to summarize: %w", err)
		}
		fmt.Println()
		fmt.Println(summary)
	}

	reportPath, err := report.Save(config.MarkdownDir, meta, summary)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	logger.Info("report written", "path", reportPath)

	// History is best-effort; a broken database never fails the run.
	if err := recordExtraction(config, meta); err != nil {
		logger.Warn("failed to record extraction history", "error", err)
	}

	return nil
}

// documentText concatenates the plain text of every page.
func documentText(path string) (string, error) {
	doc, err := pdfdoc.Open(path)
	if err != nil {
		return "", err
	}
	defer doc.Close()

	var text strings.Builder
	for pageNum := 1; pageNum <= doc.PageCount(); pageNum++ {
		pageText, err := doc.PageText(pageNum)
		if err != nil {
			return "", err
		}
		text.WriteString(pageText)
		text.WriteString("\n")
	}
	return text.String(), nil
}

func recordExtraction(config models.Config, meta *models.DocumentMetadata) error {
	var (
		database *dbpkg.DB
		err      error
	)
	if config.HistoryDB != "" {
		database, err = dbpkg.OpenAt(config.HistoryDB)
	} else {
		database, err = dbpkg.Open()
	}
	if err != nil {
		return err
	}
	defer database.Close()

	_, err = database.InsertExtraction(meta)
	return err
}
