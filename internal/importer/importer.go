// Package importer converts foreign document formats into slide-separated
// markdown source for the deck compiler. Each importer emits "---" between
// slides; the compiler's own parser takes it from there.
package importer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Importer converts one document format into slide source.
type Importer interface {
	Import(r io.Reader, filename string) (string, error)
}

// SupportedExtensions lists the file extensions this service can import.
var SupportedExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the importer for a filename. Note that deck-authored
// markdown usually needs no import at all; the markdown importer is for
// restructuring plain documents (one slide per top-level heading).
func ForFile(filename string) (Importer, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md", ".markdown":
		return &MarkdownImporter{}, nil
	case ".txt":
		return &TextImporter{}, nil
	case ".html", ".htm":
		return &HTMLImporter{}, nil
	case ".pdf":
		return &PDFImporter{}, nil
	case ".docx":
		return &DOCXImporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", filepath.Ext(filename))
	}
}

// IsSupportedExtension checks if a file extension can be imported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// joinSlides glues per-slide sources with the separator line.
func joinSlides(slides []string) string {
	var parts []string
	for _, s := range slides {
		if t := strings.TrimSpace(s); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n\n---\n\n")
}
