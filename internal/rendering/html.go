// Package rendering turns generated content blocks into PDF artifacts by
// laying them out as styled HTML and printing through a headless browser.
package rendering

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/cv-generator/internal/types"
)

// accent colors per template id; the block structure is identical across
// templates, only the styling varies.
var templateAccents = map[string]struct {
	Accent string
	Border string
}{
	"professional": {Accent: "#2563eb", Border: "#e5e7eb"},
	"modern":       {Accent: "#0f766e", Border: "#ccfbf1"},
	"minimal":      {Accent: "#111827", Border: "#f3f4f6"},
}

var docTemplate = template.Must(template.New("cv").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #111827; margin: 0; }
  .name { font-size: 18pt; color: {{.Accent}}; text-align: center; font-weight: bold; margin-bottom: 6pt; }
  .contact { font-size: 10pt; text-align: center; margin-bottom: 12pt; }
  .section_header { font-size: 14pt; color: #1f2937; border: 1pt solid {{.Border}}; padding: 4pt 6pt; margin: 12pt 0 6pt 0; font-weight: bold; }
  .job_title { font-size: 12pt; color: #374151; font-weight: bold; margin: 6pt 0 2pt 0; }
  .company_line { font-size: 11pt; color: #6b7280; font-style: italic; margin-bottom: 4pt; }
  .body { font-size: 10pt; text-align: justify; margin-bottom: 6pt; }
</style>
</head>
<body>
{{- range .Blocks}}
<div class="{{.Class}}">{{range $i, $line := .Lines}}{{if $i}}<br>{{end}}{{$line}}{{end}}</div>
{{- end}}
</body>
</html>
`))

type htmlBlock struct {
	Class string
	Lines []string
}

type htmlDoc struct {
	Accent string
	Border string
	Blocks []htmlBlock
}

// BuildHTML lays out content blocks as an HTML document styled for the given
// template id. Block text is escaped by the template engine; multi-line block
// text becomes <br>-separated lines.
func BuildHTML(blocks []types.Block, templateID string) (string, error) {
	accents, ok := templateAccents[templateID]
	if !ok {
		return "", &TemplateError{Message: fmt.Sprintf("unknown template id: %s", templateID)}
	}

	doc := htmlDoc{Accent: accents.Accent, Border: accents.Border}
	for _, block := range blocks {
		doc.Blocks = append(doc.Blocks, htmlBlock{
			Class: string(block.Style),
			Lines: strings.Split(block.Text, "\n"),
		})
	}

	var sb strings.Builder
	if err := docTemplate.Execute(&sb, doc); err != nil {
		return "", &TemplateError{Message: "failed to execute document template", Cause: err}
	}
	return sb.String(), nil
}
