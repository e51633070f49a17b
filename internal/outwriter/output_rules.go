package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/scorecard/core/algo"
	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/schema"
	"github.com/olekukonko/tablewriter"
)

// ruleView is the render model of one metric rule.
type ruleView struct {
	Metrics []string `json:"metrics" yaml:"metrics"`
	Good    string   `json:"good" yaml:"good"`
	Warning string   `json:"warning" yaml:"warning"`
	Bad     string   `json:"bad" yaml:"bad"`
	Note    string   `json:"note" yaml:"note"`
}

func buildRuleViews(rules []algo.MetricRule) []ruleView {
	views := make([]ruleView, 0, len(rules))
	for _, r := range rules {
		views = append(views, ruleView{
			Metrics: r.Metrics,
			Good:    r.Describe(schema.GoodVerdict),
			Warning: r.Describe(schema.WarningVerdict),
			Bad:     r.Describe(schema.BadVerdict),
			Note:    r.Note,
		})
	}
	return views
}

// WriteRules prints the metric threshold table using the configured output format.
func WriteRules(rules []algo.MetricRule, cfg *contract.Config) error {
	views := buildRuleViews(rules)
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, views)
		}, "Wrote JSON")
	case schema.YAMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeYAML(w, views)
		}, "Wrote YAML")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRulesCSV(w, views)
		}, "Wrote CSV")
	case schema.TextOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRulesTable(w, views, cfg.UseColors)
		}, "Wrote table")
	default:
		return fmt.Errorf("%s output is not supported for rules", cfg.Output)
	}
}

func writeRulesCSV(w io.Writer, views []ruleView) error {
	header := []string{"metrics", "good", "warning", "bad", "note"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, v := range views {
			record := []string{strings.Join(v.Metrics, "|"), v.Good, v.Warning, v.Bad, v.Note}
			if err := csvWriter.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

func writeRulesTable(writer io.Writer, views []ruleView, useColors bool) error {
	table := tablewriter.NewWriter(writer)
	label := func(v schema.Verdict) string {
		if useColors {
			return contract.GetColorLabel(v)
		}
		return contract.GetPlainLabel(v)
	}
	table.Header([]string{"Metric", label(schema.GoodVerdict), label(schema.WarningVerdict), label(schema.BadVerdict), "Note"})

	var data [][]string
	for _, v := range views {
		data = append(data, []string{strings.Join(v.Metrics, ", "), dash(v.Good), dash(v.Warning), dash(v.Bad), v.Note})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(writer, "Values outside every band are not classified.")
	return err
}

func dash(s string) string {
	if s == "" {
		return contract.NoneValue
	}
	return s
}
