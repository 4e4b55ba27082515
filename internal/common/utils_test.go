package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidatePDFPath(t *testing.T) {
	dir := t.TempDir()

	pdfPath := filepath.Join(dir, "artigo.pdf")
	if err := os.WriteFile(pdfPath, []byte("%PDF-1.7"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	txtPath := filepath.Join(dir, "notas.txt")
	if err := os.WriteFile(txtPath, []byte("texto"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	upperPath := filepath.Join(dir, "ARTIGO.PDF")
	if err := os.WriteFile(upperPath, []byte("%PDF-1.7"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "valid pdf", path: pdfPath, wantErr: false},
		{name: "uppercase extension", path: upperPath, wantErr: false},
		{name: "empty path", path: "", wantErr: true},
		{name: "missing file", path: filepath.Join(dir, "nao-existe.pdf"), wantErr: true},
		{name: "directory", path: dir, wantErr: true},
		{name: "wrong extension", path: txtPath, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePDFPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePDFPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
