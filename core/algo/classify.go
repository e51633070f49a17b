package algo

import (
	"fmt"
	"math"
	"strings"

	"github.com/huangsam/scorecard/schema"
)

// Interval is a range of real numbers with optionally open ends.
// Use math.Inf for an unbounded side.
type Interval struct {
	Min, Max         float64
	MinOpen, MaxOpen bool
}

// Below returns the interval x < limit.
func Below(limit float64) Interval {
	return Interval{Min: math.Inf(-1), Max: limit, MaxOpen: true}
}

// Above returns the interval x > limit.
func Above(limit float64) Interval {
	return Interval{Min: limit, Max: math.Inf(1), MinOpen: true}
}

// HalfOpen returns the interval lo <= x < hi.
func HalfOpen(lo, hi float64) Interval {
	return Interval{Min: lo, Max: hi, MaxOpen: true}
}

// Closed returns the interval lo <= x <= hi.
func Closed(lo, hi float64) Interval {
	return Interval{Min: lo, Max: hi}
}

// Contains reports whether v lies in the interval. NaN lies in no interval.
func (iv Interval) Contains(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	if v < iv.Min || (iv.MinOpen && v == iv.Min) {
		return false
	}
	if v > iv.Max || (iv.MaxOpen && v == iv.Max) {
		return false
	}
	return true
}

// String renders the interval as an inequality on x, e.g. "0.5 ≤ x < 0.65".
func (iv Interval) String() string {
	lowOp, highOp := "≤", "≤"
	if iv.MinOpen {
		lowOp = "<"
	}
	if iv.MaxOpen {
		highOp = "<"
	}
	switch {
	case math.IsInf(iv.Min, -1) && math.IsInf(iv.Max, 1):
		return "any x"
	case math.IsInf(iv.Min, -1):
		return fmt.Sprintf("x %s %g", highOp, iv.Max)
	case math.IsInf(iv.Max, 1):
		if iv.MinOpen {
			return fmt.Sprintf("x > %g", iv.Min)
		}
		return fmt.Sprintf("x ≥ %g", iv.Min)
	default:
		return fmt.Sprintf("%g %s x %s %g", iv.Min, lowOp, highOp, iv.Max)
	}
}

// Band assigns a verdict to the values inside an interval.
type Band struct {
	Verdict schema.Verdict
	Range   Interval
}

// MetricRule holds the verdict bands for one or more metric names.
type MetricRule struct {
	Metrics []string // exact names this rule applies to
	Bands   []Band
	Note    string
}

// Evaluate returns the verdict for v. Bad bands are tested first, then good,
// then warning. A value outside every band gets schema.NoVerdict.
func (mr MetricRule) Evaluate(v float64) schema.Verdict {
	for _, verdict := range evaluationOrder {
		for _, b := range mr.Bands {
			if b.Verdict == verdict && b.Range.Contains(v) {
				return verdict
			}
		}
	}
	return schema.NoVerdict
}

// Describe renders the bands of one verdict, joined by "or". Empty when none.
func (mr MetricRule) Describe(verdict schema.Verdict) string {
	var parts []string
	for _, b := range mr.Bands {
		if b.Verdict == verdict {
			parts = append(parts, b.Range.String())
		}
	}
	return strings.Join(parts, " or ")
}

var evaluationOrder = []schema.Verdict{schema.BadVerdict, schema.GoodVerdict, schema.WarningVerdict}

// RuleSet is an immutable lookup from metric name to its rule.
type RuleSet struct {
	rules  []MetricRule
	byName map[string]int
}

// NewRuleSet indexes the rules by every metric name they list.
// A name listed twice resolves to the first rule naming it.
func NewRuleSet(rules ...MetricRule) *RuleSet {
	rs := &RuleSet{byName: make(map[string]int)}
	for _, r := range rules {
		idx := len(rs.rules)
		rs.rules = append(rs.rules, MetricRule{
			Metrics: append([]string(nil), r.Metrics...),
			Bands:   append([]Band(nil), r.Bands...),
			Note:    r.Note,
		})
		for _, name := range r.Metrics {
			if _, taken := rs.byName[name]; !taken {
				rs.byName[name] = idx
			}
		}
	}
	return rs
}

// Rules returns a copy of the rules in declaration order.
func (rs *RuleSet) Rules() []MetricRule {
	return append([]MetricRule(nil), rs.rules...)
}

// Rule returns the rule for an exact metric name.
func (rs *RuleSet) Rule(metric string) (MetricRule, bool) {
	idx, ok := rs.byName[metric]
	if !ok {
		return MetricRule{}, false
	}
	return rs.rules[idx], true
}

// Classify returns the verdict for a metric value. Unknown metrics and
// non-numeric values get schema.NoVerdict.
func (rs *RuleSet) Classify(metric string, value any) schema.Verdict {
	rule, ok := rs.Rule(metric)
	if !ok {
		return schema.NoVerdict
	}
	v, ok := AsNumber(value)
	if !ok {
		return schema.NoVerdict
	}
	return rule.Evaluate(v)
}

// Classify classifies a metric value against DefaultRules.
func Classify(metric string, value any) schema.Verdict {
	return DefaultRules.Classify(metric, value)
}

// AsNumber returns value as a float64 when it holds a Go numeric type.
// Strings, booleans and nil are not numbers.
func AsNumber(value any) (float64, bool) {
	switch t := value.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	}
	return 0, false
}
