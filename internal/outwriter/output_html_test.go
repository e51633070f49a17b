package outwriter

import (
	"bytes"
	"testing"

	"github.com/huangsam/scorecard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, sampleTable(), HTMLOptions{Precision: 3, Filter: "las"}))

	out := buf.String()
	assert.Contains(t, out, "<th>train R2</th>")
	assert.Contains(t, out, "<th>durbin watson</th>")
	assert.Contains(t, out, `<td class="success">0.912</td>`)
	assert.Contains(t, out, `<td class="success">2</td>`)
	assert.Contains(t, out, `<td class="danger">0.400</td>`)
	assert.Contains(t, out, `<td class="">a, b</td>`)
	assert.Contains(t, out, `value="las"`)
	assert.Contains(t, out, "name: lasso")
	assert.Contains(t, out, "good: 2, warning: 0, bad: 1")
	assert.NotContains(t, out, "<script>")
}

func TestRenderHTMLDeleteButtons(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, sampleTable(), HTMLOptions{DeleteURL: "/api/experiments/"}))

	out := buf.String()
	assert.Contains(t, out, `<button class="trash" data-id="exp-1">`)
	assert.Contains(t, out, "Trash this experiment?")
	assert.Contains(t, out, "api")
	assert.Contains(t, out, `method: "DELETE"`)
}

func TestRenderHTMLEscapes(t *testing.T) {
	table := schema.Table{
		Columns: []string{"x"},
		Rows: []schema.Row{{
			ID:    "id",
			Name:  "<script>alert(1)</script>",
			Cells: []schema.Cell{{Column: "x", Value: "<b>", Present: true, Verdict: schema.NoVerdict}},
		}},
	}
	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, table, HTMLOptions{}))
	assert.NotContains(t, buf.String(), "<script>alert(1)</script>")
	assert.Contains(t, buf.String(), "&lt;b&gt;")
}
