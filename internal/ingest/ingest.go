// Package ingest converts uploaded contract files into the source-block list
// consumed by the assembler. Native Word documents are deliberately not
// handled; conversion happens upstream.
package ingest

import (
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/clausemd/clausemd/internal/parse"
)

// Ingester converts raw file bytes into source blocks.
type Ingester interface {
	Ingest(r io.Reader, filename string) ([]parse.SourceBlock, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
}

// ForFile returns the appropriate ingester for a filename.
func ForFile(filename string) (Ingester, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextIngester{}, nil
	case ".md", ".markdown":
		return &MarkdownIngester{}, nil
	case ".html", ".htm":
		return &HTMLIngester{}, nil
	case ".pdf":
		return &PDFIngester{FallbackPdftotext: true}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

var numberLabelRe = regexp.MustCompile(`^\d+(\.\d+)*\.?\s+`)

// stripNumberLabel removes a leading dotted number from imported heading
// text. Labels are derived by the numbering maintainer, never authored.
func stripNumberLabel(s string) string {
	return numberLabelRe.ReplaceAllString(s, "")
}
