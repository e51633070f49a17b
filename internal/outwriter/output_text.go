package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeTextTable generates and writes the human-readable table.
func writeTextTable(writer io.Writer, t schema.Table, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Name", "ID"}
	for _, col := range t.Columns {
		headers = append(headers, contract.ColumnTitle(col))
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	nameWidth := GetMaxNameWidth(cfg, len(t.Columns))
	var data [][]string
	for _, r := range t.Rows {
		row := []string{contract.TruncateWidth(r.Name, nameWidth), r.ID}
		for _, c := range r.Cells {
			text := contract.FormatValue(c.Value, c.Present, cfg.Precision)
			if cfg.UseColors {
				text = contract.GetColorText(c.Verdict, text)
			}
			row = append(row, text)
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	counts := t.VerdictCounts()
	if _, err := fmt.Fprintf(writer, "Showing %d experiments across %d scores (good: %d, warning: %d, bad: %d)\n",
		len(t.Rows), len(t.Columns),
		counts[schema.GoodVerdict], counts[schema.WarningVerdict], counts[schema.BadVerdict]); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Compared in %v. Source: %s\n", duration, sourceName(cfg)); err != nil {
		return err
	}
	return nil
}

// sourceName describes where experiments were read from.
func sourceName(cfg *contract.Config) string {
	switch {
	case cfg.InputFile == contract.StdinInput:
		return "stdin"
	case cfg.InputFile != "":
		return cfg.InputFile
	default:
		return cfg.Endpoint
	}
}
