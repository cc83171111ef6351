package ingestion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReader struct {
	pdfText  string
	pdfErr   error
	docxText string
	docxErr  error
}

func (s stubReader) PDF(_ []byte) (string, error)  { return s.pdfText, s.pdfErr }
func (s stubReader) Docx(_ []byte) (string, error) { return s.docxText, s.docxErr }

func TestExtractText_PlainText(t *testing.T) {
	extractor := New()

	text, err := extractor.ExtractText([]byte("software engineer wanted"), "job.txt")

	require.NoError(t, err)
	assert.Equal(t, "software engineer wanted", text)
}

func TestExtractText_InvalidUTF8(t *testing.T) {
	extractor := New()

	_, err := extractor.ExtractText([]byte{0xff, 0xfe, 0x80}, "job.txt")

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "job.txt", extractionErr.Filename)
}

func TestExtractText_UnknownExtensionFallsBackToText(t *testing.T) {
	extractor := New()

	text, err := extractor.ExtractText([]byte("plain content"), "job.md")

	require.NoError(t, err)
	assert.Equal(t, "plain content", text)
}

func TestExtractText_ExtensionCaseInsensitive(t *testing.T) {
	extractor := New()

	text, err := extractor.ExtractText([]byte("plain content"), "JOB.TXT")

	require.NoError(t, err)
	assert.Equal(t, "plain content", text)
}

func TestExtractText_PDFUsesReader(t *testing.T) {
	extractor := NewWithReader(stubReader{pdfText: "pdf content"})

	text, err := extractor.ExtractText([]byte{0x25, 0x50}, "job.pdf")

	require.NoError(t, err)
	assert.Equal(t, "pdf content", text)
}

func TestExtractText_PDFReaderError(t *testing.T) {
	cause := errors.New("corrupt xref table")
	extractor := NewWithReader(stubReader{pdfErr: cause})

	_, err := extractor.ExtractText([]byte{0x25, 0x50}, "job.pdf")

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.ErrorIs(t, err, cause)
}

func TestExtractText_PDFUnavailable(t *testing.T) {
	extractor := NewWithReader(nil)

	_, err := extractor.ExtractText([]byte{0x25, 0x50}, "job.pdf")

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Contains(t, extractionErr.Message, "not available")
}

func TestExtractText_DocxUsesReader(t *testing.T) {
	extractor := NewWithReader(stubReader{docxText: "docx content"})

	for _, name := range []string{"job.doc", "job.docx"} {
		text, err := extractor.ExtractText([]byte{0x50, 0x4b}, name)

		require.NoError(t, err, name)
		assert.Equal(t, "docx content", text)
	}
}

func TestExtractText_DocxUnavailable(t *testing.T) {
	extractor := NewWithReader(nil)

	_, err := extractor.ExtractText([]byte{0x50, 0x4b}, "job.docx")

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
}

func TestExtractText_HTMLStripsMarkup(t *testing.T) {
	extractor := New()
	html := `<html><head><title>ignored</title><style>body { color: red; }</style></head>
<body><h1>Senior Engineer</h1><script>alert("x")</script><p>Go experience required</p></body></html>`

	text, err := extractor.ExtractText([]byte(html), "job.html")

	require.NoError(t, err)
	assert.Contains(t, text, "Senior Engineer")
	assert.Contains(t, text, "Go experience required")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color: red")
}

func TestExtractText_HTMLFragment(t *testing.T) {
	extractor := New()

	text, err := extractor.ExtractText([]byte("<p>fragment text</p>"), "job.htm")

	require.NoError(t, err)
	assert.Contains(t, text, "fragment text")
}
