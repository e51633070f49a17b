// Package parquet exports scorecard comparison tables to Parquet files
// using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/huangsam/scorecard/core/algo"
	"github.com/huangsam/scorecard/schema"
	"github.com/parquet-go/parquet-go"
)

// ScoreCell is one (experiment, metric) cell of a comparison table in long format.
type ScoreCell struct {
	// ExperimentID is the assist service _id of the experiment
	ExperimentID string `parquet:"experiment_id,snappy"`

	// ExperimentName is the display name of the experiment
	ExperimentName string `parquet:"experiment_name,snappy"`

	// Metric is the flattened score path, e.g. "train R2"
	Metric string `parquet:"metric,snappy"`

	// NumericValue holds the value when it is a number (nullable)
	NumericValue *float64 `parquet:"numeric_value,optional,snappy"`

	// TextValue holds strings and booleans as text (nullable)
	TextValue *string `parquet:"text_value,optional,snappy"`

	// Present is false when the experiment has no value for the metric
	Present bool `parquet:"present,snappy"`

	// Verdict is good, warning, bad or none
	Verdict string `parquet:"verdict,snappy"`

	// ExportedAt is when the table was exported (stored as TIMESTAMP with nanosecond precision)
	ExportedAt time.Time `parquet:"exported_at,snappy"`
}

// FromTable converts every cell of the table into a ScoreCell, row by row.
func FromTable(t schema.Table, exportedAt time.Time) []ScoreCell {
	cells := make([]ScoreCell, 0, len(t.Rows)*len(t.Columns))
	for _, r := range t.Rows {
		for _, c := range r.Cells {
			cell := ScoreCell{
				ExperimentID:   r.ID,
				ExperimentName: r.Name,
				Metric:         c.Column,
				Present:        c.Present,
				Verdict:        string(c.Verdict),
				ExportedAt:     exportedAt,
			}
			if f, ok := algo.AsNumber(c.Value); ok {
				cell.NumericValue = &f
			} else if text, ok := textValue(c.Value); ok {
				cell.TextValue = &text
			}
			cells = append(cells, cell)
		}
	}
	return cells
}

func textValue(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// WriteScoreCellsParquet writes a slice of ScoreCell structs to a Parquet file.
func WriteScoreCellsParquet(data []ScoreCell, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the ScoreCell struct tags
	writer := parquet.NewGenericWriter[ScoreCell](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
