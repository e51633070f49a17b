package core

import (
	"strings"

	"github.com/huangsam/scorecard/core/algo"
	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/schema"
)

// TableOptions controls how experiments become a comparison table.
type TableOptions struct {
	Columns      schema.ColumnStrategy
	Disambiguate bool
	Rules        *algo.RuleSet // nil means algo.DefaultRules
	IncludeSpec  bool          // attach the flattened spec to each row
}

// OptionsFromConfig builds TableOptions from the validated config.
func OptionsFromConfig(cfg *contract.Config) TableOptions {
	return TableOptions{
		Columns:      cfg.Columns,
		Disambiguate: cfg.Disambiguate,
		IncludeSpec:  cfg.Output == schema.JSONOut || cfg.Output == schema.YAMLOut || cfg.Output == schema.HTMLOut,
	}
}

// BuildTable flattens every experiment's results, derives the columns and
// classifies each cell. A metric missing from an experiment yields an absent
// cell rather than an error.
func BuildTable(exps []schema.Experiment, opts TableOptions) schema.Table {
	rules := opts.Rules
	if rules == nil {
		rules = algo.DefaultRules
	}
	flattener := algo.Flattener{Disambiguate: opts.Disambiguate}

	flats := make([]*schema.FlatMap, len(exps))
	for i, e := range exps {
		flats[i] = flattener.Flatten(e.Results)
	}
	columns := algo.DeriveColumns(flats, opts.Columns)

	rows := make([]schema.Row, len(exps))
	for i, e := range exps {
		name := e.Name
		if name == "" {
			name = ExperimentName(e.ID, e.Spec)
		}
		row := schema.Row{ID: e.ID, Name: name, Cells: make([]schema.Cell, len(columns))}
		if opts.IncludeSpec {
			row.Spec = flattener.Flatten(e.Spec)
		}
		for j, col := range columns {
			value, present := flats[i].Get(col)
			verdict := schema.NoVerdict
			if present {
				verdict = rules.Classify(col, value)
			}
			row.Cells[j] = schema.Cell{Column: col, Value: value, Present: present, Verdict: verdict}
		}
		rows[i] = row
	}
	return schema.Table{Columns: columns, Rows: rows}
}

// ExperimentName picks the display name: spec.name, then spec.planname,
// then the id. The result is cut to contract.MaxNameLength runes.
func ExperimentName(id string, spec schema.Record) string {
	name := spec.Text("name")
	if name == "" {
		name = spec.Text("planname")
	}
	if name == "" {
		name = id
	}
	return contract.TruncateName(name, contract.MaxNameLength)
}

// RowText is the text a row filter matches against: name, id and every
// rendered cell value, space separated.
func RowText(r schema.Row, precision int) string {
	parts := make([]string, 0, len(r.Cells)+2)
	parts = append(parts, r.Name, r.ID)
	for _, c := range r.Cells {
		parts = append(parts, contract.FormatValue(c.Value, c.Present, precision))
	}
	return strings.Join(parts, " ")
}

// FilterRows keeps rows whose text contains filter, ignoring case.
// An empty filter keeps every row. Columns are never filtered.
func FilterRows(t schema.Table, filter string, precision int) schema.Table {
	if filter == "" {
		return t
	}
	needle := strings.ToLower(filter)
	rows := make([]schema.Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		if strings.Contains(strings.ToLower(RowText(r, precision)), needle) {
			rows = append(rows, r)
		}
	}
	return schema.Table{Columns: t.Columns, Rows: rows}
}

// LimitRows keeps the first n rows. A non-positive n keeps all rows.
func LimitRows(t schema.Table, n int) schema.Table {
	if n <= 0 || n >= len(t.Rows) {
		return t
	}
	return schema.Table{Columns: t.Columns, Rows: t.Rows[:n]}
}
