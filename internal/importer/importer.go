package importer

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Importer extracts plain text from one source file format. The result
// feeds the structural parser; importers do no structural analysis of
// their own beyond flattening the container format.
type Importer interface {
	Extract(r io.Reader) (string, error)
}

// SupportedExtensions lists file extensions the library can ingest.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the importer for a filename.
func ForFile(filename string) (Importer, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextImporter{}, nil
	case ".md", ".markdown":
		return &MarkdownImporter{}, nil
	case ".html", ".htm":
		return &HTMLImporter{}, nil
	case ".pdf":
		return &PDFImporter{}, nil
	case ".docx":
		return &DOCXImporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupported checks if a file extension is supported.
func IsSupported(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Extract is a convenience wrapper: pick the importer for filename and run
// it over data.
func Extract(data []byte, filename string) (string, error) {
	imp, err := ForFile(filename)
	if err != nil {
		return "", err
	}
	return imp.Extract(bytes.NewReader(data))
}
