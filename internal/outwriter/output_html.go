package outwriter

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/schema"
)

// HTMLOptions controls the standalone comparison page.
type HTMLOptions struct {
	Precision int
	Filter    string // prefilled into the filter box
	// DeleteURL enables trash buttons; the experiment id is appended to it.
	// Leave empty for static pages.
	DeleteURL string
}

type htmlCell struct {
	Text  string
	Class string
}

type htmlRow struct {
	ID    string
	Name  string
	Title string
	Cells []htmlCell
}

type htmlPage struct {
	Headers   []string
	Rows      []htmlRow
	Filter    string
	DeleteURL string
	Counts    map[string]int
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Experiment scorecard</title>
<style>
body { font-family: sans-serif; margin: 1.5em; }
table { border-collapse: collapse; }
th, td { padding: 4px 8px; border-bottom: 1px solid #ddd; text-align: right; }
th.name { text-align: left; }
tr:nth-child(even) { background: #f9f9f9; }
td.success { background: #dff0d8; }
td.warning { background: #fcf8e3; }
td.danger { background: #f2dede; }
</style>
</head>
<body>
<form method="get"><input id="filterInput" name="filter" placeholder="Filter" value="{{.Filter}}"></form>
<table class="table table-striped" id="results">
<tr><th></th><th></th>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
{{- range .Rows}}
<tr data-id="{{.ID}}"><th class="name" title="{{.Title}}">{{.Name}}</th><td>{{if $.DeleteURL}}<button class="trash" data-id="{{.ID}}">Trash</button>{{end}}</td>
{{- range .Cells}}<td class="{{.Class}}">{{.Text}}</td>{{end}}</tr>
{{- end}}
</table>
<p>good: {{index .Counts "good"}}, warning: {{index .Counts "warning"}}, bad: {{index .Counts "bad"}}</p>
{{- if .DeleteURL}}
<script>
document.querySelectorAll("button.trash").forEach(function (btn) {
  btn.addEventListener("click", function () {
    if (!confirm("Trash this experiment?")) return;
    var id = btn.getAttribute("data-id");
    fetch({{.DeleteURL}} + encodeURIComponent(id), {method: "DELETE"}).then(function (resp) {
      if (resp.ok) btn.closest("tr").remove();
    });
  });
});
</script>
{{- end}}
</body>
</html>
`))

// RenderHTML writes the comparison table as a standalone HTML page. Score
// cells carry the CSS class of their verdict and each name cell carries the
// flattened spec as its tooltip.
func RenderHTML(w io.Writer, t schema.Table, opts HTMLOptions) error {
	page := htmlPage{
		Filter:    opts.Filter,
		DeleteURL: opts.DeleteURL,
		Counts:    make(map[string]int),
	}
	for verdict, n := range t.VerdictCounts() {
		page.Counts[string(verdict)] = n
	}
	for _, col := range t.Columns {
		page.Headers = append(page.Headers, contract.ColumnTitle(col))
	}
	for _, r := range t.Rows {
		row := htmlRow{ID: r.ID, Name: r.Name, Title: specTitle(r.Spec, opts.Precision)}
		for _, c := range r.Cells {
			row.Cells = append(row.Cells, htmlCell{
				Text:  contract.FormatValue(c.Value, c.Present, opts.Precision),
				Class: contract.CSSClass(c.Verdict),
			})
		}
		page.Rows = append(page.Rows, row)
	}
	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("failed to render HTML: %w", err)
	}
	return nil
}

// specTitle renders a flattened spec as "key: value" lines.
func specTitle(spec *schema.FlatMap, precision int) string {
	var lines []string
	spec.Each(func(key string, value any) {
		lines = append(lines, key+": "+contract.FormatValue(value, true, precision))
	})
	return strings.Join(lines, "\n")
}
