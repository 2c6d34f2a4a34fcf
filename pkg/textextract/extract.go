// Package textextract pulls plain text out of uploaded content files.
// Interview content is authored as .txt; .pdf is accepted for convenience
// and flattened to text.
package textextract

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extract returns the text content of a source file identified by its
// extension or MIME type.
func Extract(data io.ReaderAt, size int64, fileType string) (string, error) {
	switch strings.ToLower(strings.TrimPrefix(fileType, ".")) {
	case "txt", "text/plain":
		return extractTXT(data, size)
	case "pdf", "application/pdf":
		return extractPDF(data, size)
	default:
		return "", fmt.Errorf("unsupported file type: %s", fileType)
	}
}

// SupportedTypes lists the accepted upload extensions.
func SupportedTypes() []string {
	return []string{".txt", ".pdf"}
}

func extractTXT(data io.ReaderAt, size int64) (string, error) {
	buf := make([]byte, size)
	if _, err := data.ReadAt(buf, 0); err != nil && err != io.EOF {
		return "", fmt.Errorf("read txt: %w", err)
	}
	return string(bytes.TrimSpace(buf)), nil
}

func extractPDF(data io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(data, size)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var buf strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		buf.WriteString(text)
		buf.WriteString("\n")
	}
	return buf.String(), nil
}
