package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerdictCounts(t *testing.T) {
	table := Table{
		Columns: []string{"R2", "mae"},
		Rows: []Row{
			{ID: "a", Cells: []Cell{
				{Column: "R2", Value: 0.9, Present: true, Verdict: GoodVerdict},
				{Column: "mae", Value: 1.0, Present: true, Verdict: NoVerdict},
			}},
			{ID: "b", Cells: []Cell{
				{Column: "R2", Value: 0.1, Present: true, Verdict: BadVerdict},
				{Column: "mae", Present: false, Verdict: NoVerdict},
			}},
		},
	}

	counts := table.VerdictCounts()
	assert.Equal(t, 1, counts[GoodVerdict])
	assert.Equal(t, 1, counts[BadVerdict])
	assert.Equal(t, 0, counts[WarningVerdict])
	assert.Equal(t, 1, counts[NoVerdict])
}
