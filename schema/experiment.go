package schema

// Experiment is one stored experiment as returned by the assist service.
type Experiment struct {
	ID      string // _id
	Name    string // display name, see core.ExperimentName
	Spec    Record // _source.spec
	Results Record // _source.results
}

// Cell is one (column, experiment) value of the comparison table.
// Present is false when the experiment has no value for the column,
// which keeps a missing metric distinguishable from a zero.
type Cell struct {
	Column  string  `json:"column" yaml:"column"`
	Value   any     `json:"value,omitempty" yaml:"value,omitempty"`
	Present bool    `json:"present" yaml:"present"`
	Verdict Verdict `json:"verdict" yaml:"verdict"`
}

// Row is one experiment in the comparison table.
type Row struct {
	ID    string   `json:"id" yaml:"id"`
	Name  string   `json:"name" yaml:"name"`
	Spec  *FlatMap `json:"spec,omitempty" yaml:"spec,omitempty"`
	Cells []Cell   `json:"cells" yaml:"cells"`
}

// Table is the comparison table of experiments against flattened score columns.
type Table struct {
	Columns []string `json:"columns" yaml:"columns"`
	Rows    []Row    `json:"rows" yaml:"rows"`
}

// VerdictCounts tallies the verdicts of all present cells.
func (t Table) VerdictCounts() map[Verdict]int {
	counts := make(map[Verdict]int, len(AllVerdicts))
	for _, r := range t.Rows {
		for _, c := range r.Cells {
			if c.Present {
				counts[c.Verdict]++
			}
		}
	}
	return counts
}
