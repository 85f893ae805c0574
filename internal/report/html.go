package report

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/armor-abi/armor/internal/describe"
)

// html/template is used here instead of the teacher's own raw string
// concatenation (output/mermaid.go builds its diagram source by hand)
// because a report's Description strings come from header source text this
// tool did not author — an unescaped declaration name or macro body could
// otherwise inject markup into the rendered page.
var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"compatColor": func(c describe.Compatibility) string {
		if c == describe.BackwardIncompatible {
			return "#d32f2f"
		}
		return "#2e7d32"
	},
	"lines": func(s string) []string {
		return strings.Split(s, "\n")
	},
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>ARMOR compatibility report</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; text-align: left; vertical-align: top; }
</style>
</head>
<body>
<h1>ARMOR compatibility report</h1>
{{if .}}
<table>
<thead><tr><th>Header</th><th>Name</th><th>Description</th><th>Change type</th><th>Compatibility</th></tr></thead>
<tbody>
{{range .}}
<tr>
<td>{{.HeaderFile}}</td>
<td>{{.Name}}</td>
<td>{{range $i, $line := lines .Description}}{{if $i}}<br>{{end}}{{$line}}{{end}}</td>
<td>{{.ChangeType}}</td>
<td style="color: {{compatColor .Compatibility}}; font-weight: bold;">{{.Compatibility}}</td>
</tr>
{{end}}
</tbody>
</table>
{{else}}
<table>
<tbody>
<tr><td colspan="5">No API changes detected.</td></tr>
</tbody>
</table>
{{end}}
</body>
</html>
`))

// WriteHTML renders rows as a self-contained HTML report.
func WriteHTML(w io.Writer, rows []Row) error {
	if err := reportTemplate.Execute(w, rows); err != nil {
		return fmt.Errorf("report: rendering html: %w", err)
	}
	return nil
}
