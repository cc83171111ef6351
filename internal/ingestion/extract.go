// Package ingestion extracts plain text from uploaded job description files,
// dispatching on file extension.
package ingestion

import (
	"bytes"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// DocumentReader converts binary document bytes into plain text. It is an
// injectable capability: an Extractor without one still handles text and HTML
// uploads but fails PDF and Word files with an ExtractionError instead of
// crashing at startup.
type DocumentReader interface {
	PDF(data []byte) (string, error)
	Docx(data []byte) (string, error)
}

// Extractor dispatches text extraction by file extension.
type Extractor struct {
	docs DocumentReader
}

// New returns an Extractor backed by the local PDF and Word readers.
func New() *Extractor {
	return &Extractor{docs: localReader{}}
}

// NewWithReader returns an Extractor using the given document reader.
// A nil reader makes PDF and Word extraction unavailable.
func NewWithReader(docs DocumentReader) *Extractor {
	return &Extractor{docs: docs}
}

// ExtractText extracts plain text from file bytes. Known text formats decode
// as UTF-8, binary document formats go through the document reader, HTML is
// reduced to its visible text, and unknown extensions fall back to a UTF-8
// decode.
func (e *Extractor) ExtractText(data []byte, filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return decodeText(data, filename)
	case ".pdf":
		if e.docs == nil {
			return "", &ExtractionError{Filename: filename, Message: "PDF extraction is not available"}
		}
		text, err := e.docs.PDF(data)
		if err != nil {
			return "", &ExtractionError{Filename: filename, Message: "failed to read PDF", Cause: err}
		}
		return text, nil
	case ".doc", ".docx":
		if e.docs == nil {
			return "", &ExtractionError{Filename: filename, Message: "Word extraction is not available"}
		}
		text, err := e.docs.Docx(data)
		if err != nil {
			return "", &ExtractionError{Filename: filename, Message: "failed to read Word document", Cause: err}
		}
		return text, nil
	case ".html", ".htm":
		return extractHTML(data, filename)
	default:
		return decodeText(data, filename)
	}
}

// decodeText validates and returns the bytes as UTF-8 text.
func decodeText(data []byte, filename string) (string, error) {
	if !utf8.Valid(data) {
		return "", &ExtractionError{Filename: filename, Message: "content is not valid UTF-8 text"}
	}
	return string(data), nil
}

// extractHTML returns the visible text of an HTML document, with script and
// style contents removed.
func extractHTML(data []byte, filename string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", &ExtractionError{Filename: filename, Message: "failed to parse HTML", Cause: err}
	}
	doc.Find("script, style, noscript").Remove()

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, sel *goquery.Selection) {
		sb.WriteString(sel.Text())
	})
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		// Fragment without a body element; fall back to the whole document.
		text = doc.Text()
	}
	return text, nil
}
