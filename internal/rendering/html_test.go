package rendering

import (
	"testing"

	"github.com/jonathan/cv-generator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHTML_RendersBlocks(t *testing.T) {
	blocks := []types.Block{
		{Style: types.StyleName, Text: "Jane Smith"},
		{Style: types.StyleSectionHeader, Text: "PROFESSIONAL SUMMARY"},
		{Style: types.StyleBody, Text: "Backend engineer."},
	}

	html, err := BuildHTML(blocks, "professional")

	require.NoError(t, err)
	assert.Contains(t, html, `<div class="name">Jane Smith</div>`)
	assert.Contains(t, html, `<div class="section_header">PROFESSIONAL SUMMARY</div>`)
	assert.Contains(t, html, `<div class="body">Backend engineer.</div>`)
}

func TestBuildHTML_MultiLineTextBecomesBreaks(t *testing.T) {
	blocks := []types.Block{
		{Style: types.StyleBody, Text: "• first\n• second"},
	}

	html, err := BuildHTML(blocks, "professional")

	require.NoError(t, err)
	assert.Contains(t, html, "• first<br>• second")
}

func TestBuildHTML_EscapesContent(t *testing.T) {
	blocks := []types.Block{
		{Style: types.StyleBody, Text: `<script>alert("x")</script>`},
	}

	html, err := BuildHTML(blocks, "professional")

	require.NoError(t, err)
	assert.NotContains(t, html, `<script>alert("x")</script>`)
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestBuildHTML_TemplateAccents(t *testing.T) {
	blocks := []types.Block{{Style: types.StyleName, Text: "Jane Smith"}}

	professional, err := BuildHTML(blocks, "professional")
	require.NoError(t, err)
	modern, err := BuildHTML(blocks, "modern")
	require.NoError(t, err)
	minimal, err := BuildHTML(blocks, "minimal")
	require.NoError(t, err)

	assert.Contains(t, professional, "#2563eb")
	assert.Contains(t, modern, "#0f766e")
	assert.Contains(t, minimal, "#111827")
}

func TestBuildHTML_UnknownTemplate(t *testing.T) {
	_, err := BuildHTML(nil, "fancy")

	var templateErr *TemplateError
	require.ErrorAs(t, err, &templateErr)
	assert.Contains(t, templateErr.Message, "fancy")
}

func TestBuildHTML_EmptyBlocks(t *testing.T) {
	html, err := BuildHTML(nil, "minimal")

	require.NoError(t, err)
	assert.Contains(t, html, "<body>")
	assert.NotContains(t, html, `<div class=`)
}
