package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteFlatMap prints flattened path/value pairs in traversal order.
func WriteFlatMap(flat *schema.FlatMap, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, flat)
		}, "Wrote JSON")
	case schema.YAMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeYAML(w, flat)
		}, "Wrote YAML")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFlatCSV(w, flat, cfg.Precision)
		}, "Wrote CSV")
	case schema.TextOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFlatTable(w, flat, cfg.Precision)
		}, "Wrote table")
	default:
		return fmt.Errorf("%s output is not supported for flatten", cfg.Output)
	}
}

func writeFlatCSV(w io.Writer, flat *schema.FlatMap, precision int) error {
	return writeCSVWithHeader(w, []string{"path", "value"}, func(csvWriter *csv.Writer) error {
		var err error
		flat.Each(func(key string, value any) {
			if err == nil {
				err = csvWriter.Write([]string{key, contract.FormatValue(value, true, precision)})
			}
		})
		if err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
		return nil
	})
}

func writeFlatTable(writer io.Writer, flat *schema.FlatMap, precision int) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Path", "Value"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.PerColumn = []tw.Align{tw.AlignLeft, tw.AlignRight}
	})

	var data [][]string
	flat.Each(func(key string, value any) {
		data = append(data, []string{key, contract.FormatValue(value, true, precision)})
	})
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "%d values\n", flat.Len())
	return err
}
