// Package images extracts the embedded images of a PDF to disk.
package images

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Extract writes every embedded image of the PDF at pdfPath into
// baseDir/name/ and returns that directory. The directory is created
// even when the document carries no images.
func Extract(pdfPath, baseDir, name string) (string, error) {
	outDir := filepath.Join(baseDir, name)
	if err := os.MkdirAll(outDir, 0750); err != nil {
		return "", fmt.Errorf("failed to create image directory %s: %w", outDir, err)
	}

	conf := model.NewDefaultConfiguration()
	if err := api.ExtractImagesFile(pdfPath, outDir, nil, conf); err != nil {
		return "", fmt.Errorf("image extraction failed for %s: %w", pdfPath, err)
	}
	return outDir, nil
}
