// Package algo has the pure algorithms behind the comparison table:
// record flattening, column derivation and metric classification.
package algo

import (
	"strconv"

	"github.com/huangsam/scorecard/schema"
)

// Flattener turns nested records into flat path-to-value maps.
// The zero value reproduces the classic naming rule; see Flatten.
type Flattener struct {
	// Disambiguate appends " (2)", " (3)", ... to a key that an earlier leaf
	// already claimed instead of overwriting the earlier value.
	Disambiguate bool
}

// Flatten flattens r with the default Flattener.
//
// Leaves are visited depth-first in field order. A leaf is named by the path
// accumulated so far, or schema.NoKey when there is none. A container passes
// its own path down as a prefix only when it has two or more children, is not
// an array, and already has a path; otherwise its children are named by their
// own key alone. This keeps {"a": {"b": 1}} as "b" rather than "a b".
//
// Elision can make two leaves share a name. The later value then wins and the
// key keeps its first position.
func Flatten(r schema.Record) *schema.FlatMap {
	return Flattener{}.Flatten(r)
}

// Flatten flattens r into a fresh FlatMap.
func (fl Flattener) Flatten(r schema.Record) *schema.FlatMap {
	out := schema.NewFlatMap()
	fl.flatten(r, "", out)
	return out
}

func (fl Flattener) flatten(r schema.Record, key string, out *schema.FlatMap) {
	if r.IsScalar() {
		if key == "" {
			key = schema.NoKey
		}
		fl.emit(out, key, r.Scalar())
		return
	}

	prefix := key + schema.PathDelimiter
	if key == "" || r.Len() == 1 || r.Kind() == schema.ArrayKind {
		prefix = ""
	}
	for _, f := range r.Fields() {
		fl.flatten(f.Value, prefix+f.Key, out)
	}
}

func (fl Flattener) emit(out *schema.FlatMap, key string, value any) {
	if !fl.Disambiguate || !out.Has(key) {
		out.Set(key, value)
		return
	}
	for n := 2; ; n++ {
		candidate := key + " (" + strconv.Itoa(n) + ")"
		if !out.Has(candidate) {
			out.Set(candidate, value)
			return
		}
	}
}
