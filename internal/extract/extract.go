package extract

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrUnsupportedType is returned when a file extension has no extractor.
var ErrUnsupportedType = errors.New("unsupported document type")

// Extract reads a document and returns its plain text content, dispatching
// on the file extension of name.
func Extract(name string, r io.Reader) (string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return extractPDF(r)
	case ".md", ".markdown":
		return extractMarkdown(r)
	case ".txt", ".text":
		return extractText(r)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, filepath.Ext(name))
	}
}

// Supported reports whether Extract can handle the given filename.
func Supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".md", ".markdown", ".txt", ".text":
		return true
	}
	return false
}

func extractText(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}
	return string(data), nil
}
