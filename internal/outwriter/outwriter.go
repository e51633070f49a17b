// Package outwriter has output and writer logic.
package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/internal/parquet"
	"github.com/huangsam/scorecard/schema"
)

// WriteTable outputs the comparison table, dispatching based on the output format configured.
func WriteTable(table schema.Table, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, table)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.YAMLOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeYAML(w, table)
		}, "Wrote YAML"); err != nil {
			return fmt.Errorf("error writing YAML output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTableCSV(w, table, cfg.Precision)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteScoreCellsParquet(parquet.FromTable(table, time.Now()), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	case schema.HTMLOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return RenderHTML(w, table, HTMLOptions{Precision: cfg.Precision, Filter: cfg.Filter})
		}, "Wrote HTML"); err != nil {
			return fmt.Errorf("error writing HTML output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTextTable(w, table, cfg, duration)
		}, "Wrote table")
	}
	return nil
}

// writeTableCSV writes one line per experiment: name, id, then every column.
// Absent cells are left empty.
func writeTableCSV(w io.Writer, table schema.Table, precision int) error {
	header := append([]string{"name", "id"}, table.Columns...)
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, r := range table.Rows {
			record := make([]string, 0, len(r.Cells)+2)
			record = append(record, r.Name, r.ID)
			for _, c := range r.Cells {
				record = append(record, contract.FormatValue(c.Value, c.Present, precision))
			}
			if err := csvWriter.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}
