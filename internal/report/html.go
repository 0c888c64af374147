package report

import (
	"html/template"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	htmlTemplateNameConstant   = "inventory"
	sizeGroupWidthConstant     = 3
	sizeGroupSeparatorConstant = " "
)

const htmlDocumentTemplateConstant = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<meta name="viewport" content="width=device-width, initial-scale=1" />
<style>
  body { font-family: system-ui, -apple-system, Segoe UI, Roboto, Arial, sans-serif; margin: 24px; }
  h1 { font-size: 1.4rem; margin-bottom: 0.5rem; }
  .meta { color: #555; margin-bottom: 1rem; }
  table { border-collapse: collapse; width: 100%; }
  th, td { border: 1px solid #ddd; padding: 8px; vertical-align: top; }
  th { background: #f6f8fa; text-align: left; }
  tr:nth-child(even) { background: #fafafa; }
  code { font-family: ui-monospace, SFMono-Regular, Menlo, Consolas, "Liberation Mono", monospace; }
  .num { text-align: right; font-variant-numeric: tabular-nums; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="meta">
  Source: <code>{{.SourceLocation}}</code>
</div>
<table>
  <thead>
    <tr>
      <th>Project</th>
      <th>README</th>
      <th class="num">Size (bytes)</th>
    </tr>
  </thead>
  <tbody>
{{- range .Rows}}
    <tr><td>{{.Project}}</td><td><a href="{{.Link}}" target="_blank" rel="noopener noreferrer">{{.RelativePath}}</a></td><td class="num">{{.FormattedSize}}</td></tr>
{{- end}}
  </tbody>
</table>
</body>
</html>
`

var htmlDocumentTemplate = template.Must(template.New(htmlTemplateNameConstant).Parse(htmlDocumentTemplateConstant))

// HTMLReport carries everything the HTML format renders.
type HTMLReport struct {
	Title          string
	SourceLocation string
	Rows           []Row
}

type htmlTemplateData struct {
	Title          string
	SourceLocation string
	Rows           []htmlTemplateRow
}

type htmlTemplateRow struct {
	Project       string
	RelativePath  string
	Link          template.URL
	FormattedSize string
}

// WriteHTML renders the report document to the destination writer.
func WriteHTML(destination io.Writer, document HTMLReport) error {
	templateData := htmlTemplateData{
		Title:          document.Title,
		SourceLocation: document.SourceLocation,
		Rows:           make([]htmlTemplateRow, 0, len(document.Rows)),
	}
	for _, row := range document.Rows {
		templateData.Rows = append(templateData.Rows, htmlTemplateRow{
			Project:       row.Project,
			RelativePath:  row.RelativePath,
			Link:          template.URL(row.Link),
			FormattedSize: formatSizeBytes(row.SizeBytes),
		})
	}
	return htmlDocumentTemplate.Execute(destination, templateData)
}

// WriteHTMLFile renders the report document into a file at the output path.
func WriteHTMLFile(outputPath string, document HTMLReport) error {
	outputFile, createError := os.Create(outputPath)
	if createError != nil {
		return WriteFailedError{Path: outputPath, Cause: createError}
	}
	renderError := WriteHTML(outputFile, document)
	closeError := outputFile.Close()
	if renderError != nil {
		return WriteFailedError{Path: outputPath, Cause: renderError}
	}
	if closeError != nil {
		return WriteFailedError{Path: outputPath, Cause: closeError}
	}
	return nil
}

// formatSizeBytes groups digits in threes separated by spaces, e.g. 1234567
// becomes "1 234 567".
func formatSizeBytes(sizeBytes int64) string {
	digits := strconv.FormatInt(sizeBytes, 10)
	if len(digits) <= sizeGroupWidthConstant {
		return digits
	}
	groups := make([]string, 0, len(digits)/sizeGroupWidthConstant+1)
	for len(digits) > sizeGroupWidthConstant {
		groups = append([]string{digits[len(digits)-sizeGroupWidthConstant:]}, groups...)
		digits = digits[:len(digits)-sizeGroupWidthConstant]
	}
	groups = append([]string{digits}, groups...)
	return strings.Join(groups, sizeGroupSeparatorConstant)
}
