package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/llm-pdf-parser/internal/extract"
	"github.com/dtnitsch/llm-pdf-parser/internal/history"
	"github.com/dtnitsch/llm-pdf-parser/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "llm-pdf-parser",
		Usage: "extract structural data from PDFs and summarize them with a local LLM",
		Commands: []*cli.Command{
			{
				Name:   "extract",
				Usage:  "extract metadata from a PDF (pages, words, section titles, links)",
				Action: extract.ExtractAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "path",
						Aliases:  []string{"p"},
						Usage:    "path to the PDF file",
						Required: true,
					},
					&cli.BoolFlag{
						Name:    "images",
						Aliases: []string{"e"},
						Usage:   "extract embedded images to the images directory",
					},
					&cli.StringFlag{
						Name:    "image-name",
						Aliases: []string{"n"},
						Usage:   "directory name for extracted images (defaults to the PDF name)",
					},
					&cli.BoolFlag{
						Name:    "summarize",
						Aliases: []string{"s"},
						Usage:   "generate a Markdown summary with the configured Ollama model",
					},
					&cli.BoolFlag{
						Name:    "all",
						Aliases: []string{"a"},
						Usage:   "extract metadata, images and the summary",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
			},
			{
				Name:  "quickstart",
				Usage: "print a YAML quick-start reference",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
			{
				Name:   "history",
				Usage:  "list previous extraction runs",
				Action: history.HistoryAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"l"},
						Usage:   "maximum number of runs to list (0 = all)",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
