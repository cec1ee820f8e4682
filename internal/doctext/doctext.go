// Package doctext acquires raw invoice text on behalf of the CLI. The
// extraction engine itself only ever sees plain text; reading files and
// pulling text out of PDFs is the caller-side collaborator this package
// implements.
package doctext

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"invoscan/internal/domain"
)

// Read returns the plain text of a .txt or .pdf file.
func Read(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		return string(data), nil
	case ".pdf":
		return readPDF(path)
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, filepath.Ext(path))
	}
}

// readPDF extracts the text of every page, preserving row grouping so the
// line-anchored item patterns still see one invoice row per line.
func readPDF(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf %s: %w", path, err)
	}
	defer f.Close()

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("extracting pdf text from %s page %d: %w", path, i, err)
		}
		for _, row := range rows {
			for _, word := range row.Content {
				buf.WriteString(word.S)
				buf.WriteString(" ")
			}
			buf.WriteString("\n")
		}
	}
	return buf.String(), nil
}
