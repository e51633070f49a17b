package cmd

import (
	"os"

	"github.com/huangsam/scorecard/core"
	"github.com/huangsam/scorecard/internal/assist"
	"github.com/huangsam/scorecard/internal/contract"
	"github.com/spf13/cobra"
)

// flattenCmd shows how one record maps onto table columns.
var flattenCmd = &cobra.Command{
	Use:   "flatten [file|-]",
	Short: "Flatten one JSON record into the column names used by compare.",
	Long: `Read a single JSON document and print every leaf value under its
flattened path, in document order. Reads standard input when no file or - is given.

Examples:
  echo '{"train": {"R2": 0.91, "mae": 1.2}, "test": {"R2": 0.84}}' | scorecard flatten
  scorecard flatten results.json --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		path := contract.StdinInput
		if len(args) == 1 {
			path = args[0]
		}
		record, err := assist.ReadRecord(path, os.Stdin)
		if err != nil {
			contract.LogFatal("Cannot read record", err)
		}
		if err := core.ExecuteFlatten(rootCtx, cfg, record); err != nil {
			contract.LogFatal("Cannot flatten record", err)
		}
	},
}
