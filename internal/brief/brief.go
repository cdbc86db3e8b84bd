// Package brief extracts plain text from an uploaded product brief so it
// can be used as the idea driving page generation.
package brief

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Extractor converts raw brief bytes into plain text.
type Extractor interface {
	Extract(r io.Reader, filename string) (string, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate extractor for a filename.
func ForFile(filename string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextExtractor{}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	case ".pdf":
		return &PDFExtractor{}, nil
	case ".docx":
		return &DOCXExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// Collapse flattens extracted text to single-space-separated words and
// caps it at maxChars (0 means no cap). Brief documents can be long; the
// idea field only needs the prose.
func Collapse(text string, maxChars int) string {
	joined := strings.Join(strings.Fields(text), " ")
	if maxChars > 0 && len(joined) > maxChars {
		cut := joined[:maxChars]
		// Avoid splitting the final word.
		if i := strings.LastIndexByte(cut, ' '); i > 0 {
			cut = cut[:i]
		}
		return cut
	}
	return joined
}
