package core

import (
	"strings"
	"testing"

	"github.com/huangsam/scorecard/core/algo"
	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kv(key string, value any) schema.Field {
	if r, ok := value.(schema.Record); ok {
		return schema.Field{Key: key, Value: r}
	}
	return schema.Field{Key: key, Value: schema.NewScalar(value)}
}

func obj(fields ...schema.Field) schema.Record {
	return schema.NewObject(fields...)
}

func sampleExperiments() []schema.Experiment {
	return []schema.Experiment{
		{
			ID:   "a1",
			Spec: obj(kv("name", "lasso"), kv("alpha", 0.1)),
			Results: obj(
				kv("train", obj(kv("R2", 0.9), kv("rmse", 1.5))),
				kv("durbin_watson", 2.4),
			),
		},
		{
			ID:   "b2",
			Spec: obj(kv("planname", "ridge-plan")),
			Results: obj(
				kv("train", obj(kv("R2", 0.55), kv("rmse", 2.0))),
				kv("kfold_overfitting_indicator", 0.01),
			),
		},
		{
			ID:      "c3",
			Spec:    obj(),
			Results: obj(),
		},
	}
}

func TestBuildTableFirstColumns(t *testing.T) {
	table := BuildTable(sampleExperiments(), TableOptions{Columns: schema.FirstColumns})

	assert.Equal(t, []string{"train R2", "train rmse", "durbin_watson"}, table.Columns)
	require.Len(t, table.Rows, 3)

	first := table.Rows[0]
	assert.Equal(t, "lasso", first.Name)
	assert.Nil(t, first.Spec)
	assert.Equal(t, schema.Cell{Column: "train R2", Value: 0.9, Present: true, Verdict: schema.NoVerdict}, first.Cells[0])
	assert.Equal(t, schema.BadVerdict, first.Cells[2].Verdict)

	second := table.Rows[1]
	assert.Equal(t, "ridge-plan", second.Name)
	assert.False(t, second.Cells[2].Present)
	assert.Equal(t, schema.NoVerdict, second.Cells[2].Verdict)

	third := table.Rows[2]
	assert.Equal(t, "c3", third.Name)
	for _, c := range third.Cells {
		assert.False(t, c.Present)
	}
}

func TestBuildTableUnionColumns(t *testing.T) {
	table := BuildTable(sampleExperiments(), TableOptions{Columns: schema.UnionColumns, IncludeSpec: true})

	assert.Equal(t, []string{"train R2", "train rmse", "durbin_watson", "kfold_overfitting_indicator"}, table.Columns)
	cell := table.Rows[1].Cells[3]
	assert.True(t, cell.Present)
	assert.Equal(t, schema.GoodVerdict, cell.Verdict)

	require.NotNil(t, table.Rows[0].Spec)
	assert.Equal(t, []string{"name", "alpha"}, table.Rows[0].Spec.Keys())
}

func TestBuildTableClassifiesByColumnName(t *testing.T) {
	exps := []schema.Experiment{
		{ID: "x", Results: obj(kv("R2", 0.9), kv("adjusted_R2", 0.6))},
		{ID: "y", Results: obj(kv("R2", 0.3), kv("adjusted_R2", "n/a"))},
	}
	table := BuildTable(exps, TableOptions{})

	assert.Equal(t, schema.GoodVerdict, table.Rows[0].Cells[0].Verdict)
	assert.Equal(t, schema.WarningVerdict, table.Rows[0].Cells[1].Verdict)
	assert.Equal(t, schema.BadVerdict, table.Rows[1].Cells[0].Verdict)
	assert.Equal(t, schema.NoVerdict, table.Rows[1].Cells[1].Verdict)
}

func TestBuildTableCustomRules(t *testing.T) {
	rules := algo.NewRuleSet(algo.MetricRule{
		Metrics: []string{"loss"},
		Bands:   []algo.Band{{Verdict: schema.GoodVerdict, Range: algo.Below(1)}},
	})
	exps := []schema.Experiment{{ID: "x", Results: obj(kv("loss", 0.5), kv("R2", 0.9))}}
	table := BuildTable(exps, TableOptions{Rules: rules})

	assert.Equal(t, schema.GoodVerdict, table.Rows[0].Cells[0].Verdict)
	assert.Equal(t, schema.NoVerdict, table.Rows[0].Cells[1].Verdict)
}

func TestBuildTableDisambiguate(t *testing.T) {
	exps := []schema.Experiment{{
		ID:      "x",
		Results: obj(kv("a", obj(kv("R2", 0.9))), kv("b", obj(kv("R2", 0.1)))),
	}}

	merged := BuildTable(exps, TableOptions{})
	assert.Equal(t, []string{"R2"}, merged.Columns)
	assert.Equal(t, 0.1, merged.Rows[0].Cells[0].Value)

	split := BuildTable(exps, TableOptions{Disambiguate: true})
	assert.Equal(t, []string{"R2", "R2 (2)"}, split.Columns)
}

func TestBuildTableEmpty(t *testing.T) {
	table := BuildTable(nil, TableOptions{Columns: schema.UnionColumns})
	assert.Empty(t, table.Columns)
	assert.Empty(t, table.Rows)
}

func TestExperimentName(t *testing.T) {
	long := strings.Repeat("x", contract.MaxNameLength+10)

	tests := []struct {
		name     string
		id       string
		spec     schema.Record
		expected string
	}{
		{"name wins", "id", obj(kv("planname", "plan"), kv("name", "model")), "model"},
		{"planname fallback", "id", obj(kv("planname", "plan")), "plan"},
		{"id fallback", "id", obj(), "id"},
		{"non-string name ignored", "id", obj(kv("name", 3)), "id"},
		{"truncated", "id", obj(kv("name", long)), long[:contract.MaxNameLength]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExperimentName(tt.id, tt.spec))
		})
	}
}

func TestFilterRows(t *testing.T) {
	table := BuildTable(sampleExperiments(), TableOptions{Columns: schema.FirstColumns})

	tests := []struct {
		name     string
		filter   string
		expected []string
	}{
		{"empty keeps all", "", []string{"a1", "b2", "c3"}},
		{"by name ignoring case", "LASSO", []string{"a1"}},
		{"by id", "b2", []string{"b2"}},
		{"by rendered value", "0.550", []string{"b2"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := FilterRows(table, tt.filter, 3)
			ids := make([]string, 0, len(filtered.Rows))
			for _, r := range filtered.Rows {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.expected, ids)
			assert.Equal(t, table.Columns, filtered.Columns)
		})
	}
}

func TestLimitRows(t *testing.T) {
	table := BuildTable(sampleExperiments(), TableOptions{})

	assert.Len(t, LimitRows(table, 0).Rows, 3)
	assert.Len(t, LimitRows(table, 2).Rows, 2)
	assert.Len(t, LimitRows(table, 10).Rows, 3)
	assert.Equal(t, "a1", LimitRows(table, 1).Rows[0].ID)
}

func TestOptionsFromConfig(t *testing.T) {
	opts := OptionsFromConfig(&contract.Config{Columns: schema.UnionColumns, Disambiguate: true, Output: schema.HTMLOut})
	assert.Equal(t, schema.UnionColumns, opts.Columns)
	assert.True(t, opts.Disambiguate)
	assert.True(t, opts.IncludeSpec)
	assert.Nil(t, opts.Rules)

	assert.False(t, OptionsFromConfig(&contract.Config{Output: schema.CSVOut}).IncludeSpec)
}
