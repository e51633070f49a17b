package algo

import "github.com/huangsam/scorecard/schema"

// DeriveColumns returns the table columns for a set of flattened records.
// FirstColumns uses the keys of the first record; UnionColumns adds any key
// first seen in a later record, in the order it is seen.
func DeriveColumns(maps []*schema.FlatMap, strategy schema.ColumnStrategy) []string {
	if len(maps) == 0 {
		return []string{}
	}
	if strategy != schema.UnionColumns {
		return maps[0].Keys()
	}

	seen := make(map[string]struct{})
	columns := []string{}
	for _, m := range maps {
		for _, k := range m.Keys() {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			columns = append(columns, k)
		}
	}
	return columns
}
