package outwriter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleTable() schema.Table {
	spec := schema.NewFlatMap()
	spec.Set("name", "lasso")
	spec.Set("alpha", 0.1)
	return schema.Table{
		Columns: []string{"train_R2", "durbin_watson", "note"},
		Rows: []schema.Row{
			{
				ID:   "exp-1",
				Name: "lasso",
				Spec: spec,
				Cells: []schema.Cell{
					{Column: "train_R2", Value: 0.91234, Present: true, Verdict: schema.GoodVerdict},
					{Column: "durbin_watson", Value: 2.0, Present: true, Verdict: schema.GoodVerdict},
					{Column: "note", Value: "a, b", Present: true, Verdict: schema.NoVerdict},
				},
			},
			{
				ID:   "exp-2",
				Name: "ridge",
				Cells: []schema.Cell{
					{Column: "train_R2", Value: 0.4, Present: true, Verdict: schema.BadVerdict},
					{Column: "durbin_watson", Present: false, Verdict: schema.NoVerdict},
					{Column: "note", Value: nil, Present: true, Verdict: schema.NoVerdict},
				},
			},
		},
	}
}

func textConfig() *contract.Config {
	return &contract.Config{Output: schema.TextOut, Precision: 3, Width: 120, Endpoint: contract.DefaultEndpoint}
}

func TestWriteTableCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTableCSV(&buf, sampleTable(), 2))

	expected := "name,id,train_R2,durbin_watson,note\n" +
		"lasso,exp-1,0.91,2,\"a, b\"\n" +
		"ridge,exp-2,0.40,,null\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteTextTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTextTable(&buf, sampleTable(), textConfig(), 15*time.Millisecond))

	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "TRAIN R2")
	assert.Contains(t, strings.ToUpper(out), "DURBIN WATSON")
	assert.Contains(t, out, "lasso")
	assert.Contains(t, out, "0.912")
	assert.Contains(t, out, "null")
	assert.Contains(t, out, "Showing 2 experiments across 3 scores (good: 2, warning: 0, bad: 1)")
	assert.Contains(t, out, "Source: "+contract.DefaultEndpoint)
}

func TestWriteTextTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTextTable(&buf, schema.Table{Columns: []string{}, Rows: []schema.Row{}}, textConfig(), 0))
	assert.Contains(t, buf.String(), "Showing 0 experiments")
}

func TestSourceName(t *testing.T) {
	assert.Equal(t, "stdin", sourceName(&contract.Config{InputFile: "-"}))
	assert.Equal(t, "x.json", sourceName(&contract.Config{InputFile: "x.json"}))
	assert.Equal(t, "http://h/a", sourceName(&contract.Config{Endpoint: "http://h/a"}))
}

func TestWriteTableJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.json")
	cfg := &contract.Config{Output: schema.JSONOut, OutputFile: path}
	require.NoError(t, WriteTable(sampleTable(), cfg, time.Second))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(content, &decoded))
	assert.Equal(t, []any{"train_R2", "durbin_watson", "note"}, decoded["columns"])

	rows := decoded["rows"].([]any)
	first := rows[0].(map[string]any)
	assert.Equal(t, "lasso", first["name"])
	spec := first["spec"].(map[string]any)
	assert.Equal(t, 0.1, spec["alpha"])

	cells := rows[1].(map[string]any)["cells"].([]any)
	absent := cells[1].(map[string]any)
	assert.Equal(t, false, absent["present"])
	assert.NotContains(t, absent, "value")
}

func TestWriteTableYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	cfg := &contract.Config{Output: schema.YAMLOut, OutputFile: path}
	require.NoError(t, WriteTable(sampleTable(), cfg, time.Second))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		Columns []string `yaml:"columns"`
		Rows    []struct {
			ID   string         `yaml:"id"`
			Spec map[string]any `yaml:"spec"`
		} `yaml:"rows"`
	}
	require.NoError(t, yaml.Unmarshal(content, &decoded))
	assert.Equal(t, []string{"train_R2", "durbin_watson", "note"}, decoded.Columns)
	require.Len(t, decoded.Rows, 2)
	assert.Equal(t, "lasso", decoded.Rows[0].Spec["name"])
	assert.Nil(t, decoded.Rows[1].Spec)
}

func TestWriteTableParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.parquet")
	cfg := &contract.Config{Output: schema.ParquetOut, OutputFile: path}
	require.NoError(t, WriteTable(sampleTable(), cfg, time.Second))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteTableHTMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.html")
	cfg := &contract.Config{Output: schema.HTMLOut, OutputFile: path, Precision: 2}
	require.NoError(t, WriteTable(sampleTable(), cfg, time.Second))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `<td class="danger">0.40</td>`)
}

func TestWriteTableCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")
	cfg := &contract.Config{Output: schema.CSVOut, OutputFile: path, Precision: 3}
	require.NoError(t, WriteTable(sampleTable(), cfg, time.Second))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "name,id,train_R2"))
}
