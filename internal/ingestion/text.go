package ingestion

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat reports a file extension the text extractor cannot handle.
type ErrUnsupportedFormat struct {
	Ext string
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported resume format %q: only .pdf and .docx are supported", e.Ext)
}

// ExtractText extracts plain text from a resume file, dispatching on the
// file extension. Supported formats: .pdf and .docx.
func ExtractText(filename string, data []byte) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".pdf":
		return extractPDFText(data)
	case ".docx":
		return extractDocxText(data)
	default:
		return "", &ErrUnsupportedFormat{Ext: ext}
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	content, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract PDF text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, content); err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}
	return normalizeWhitespace(buf.String()), nil
}

var (
	xmlTagPattern     = regexp.MustCompile(`<[^>]+>`)
	inlineSpacesRun   = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlineRunPattern = regexp.MustCompile(`\s*\n\s*`)
)

// extractDocxText pulls the main document part out of the docx zip container
// and strips its XML markup. Paragraph ends become newlines so section
// structure survives into the extracted text.
func extractDocxText(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open docx container: %w", err)
	}

	for _, file := range archive.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("failed to open document.xml: %w", err)
		}
		defer rc.Close()
		raw, err := io.ReadAll(rc)
		if err != nil {
			return "", fmt.Errorf("failed to read document.xml: %w", err)
		}

		text := strings.ReplaceAll(string(raw), "</w:p>", "\n")
		text = strings.ReplaceAll(text, "<w:tab/>", "\t")
		text = xmlTagPattern.ReplaceAllString(text, " ")
		return normalizeWhitespace(text), nil
	}
	return "", fmt.Errorf("no document.xml found in docx container")
}

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = inlineSpacesRun.ReplaceAllString(s, " ")
	s = newlineRunPattern.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
