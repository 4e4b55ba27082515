package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidatePDFPath checks a user-supplied path before any extraction work:
// the file must exist, be a regular file and carry a .pdf extension.
func ValidatePDFPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("no PDF path provided")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", path)
		}
		return fmt.Errorf("cannot access %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a PDF: %s", path)
	}

	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return fmt.Errorf("not a PDF file: %s", path)
	}

	return nil
}
