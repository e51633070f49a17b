package algo

import "github.com/huangsam/scorecard/schema"

// DefaultRules is the built-in threshold table. Values between bands stay
// unclassified.
var DefaultRules = NewRuleSet(
	MetricRule{
		Metrics: []string{"R2", "adjusted_R2"},
		Bands: []Band{
			{Verdict: schema.BadVerdict, Range: Below(0.5)},
			{Verdict: schema.GoodVerdict, Range: Above(0.8)},
			{Verdict: schema.WarningVerdict, Range: HalfOpen(0.5, 0.65)},
		},
		Note: "Share of variance explained by the model",
	},
	MetricRule{
		Metrics: []string{"kfold_overfitting_indicator"},
		Bands: []Band{
			{Verdict: schema.BadVerdict, Range: Above(0.15)},
			{Verdict: schema.GoodVerdict, Range: Below(0.02)},
			{Verdict: schema.WarningVerdict, Range: HalfOpen(0.02, 0.05)},
		},
		Note: "Gap between training and k-fold validation scores",
	},
	MetricRule{
		Metrics: []string{"durbin_watson"},
		Bands: []Band{
			{Verdict: schema.BadVerdict, Range: Below(0.75)}, // positively correlated residuals
			{Verdict: schema.BadVerdict, Range: Above(2.25)}, // negatively correlated residuals
			{Verdict: schema.GoodVerdict, Range: Closed(1, 2)},
		},
		Note: "Autocorrelation of residuals; 2 means none",
	},
)
