package cmd

import (
	"github.com/huangsam/scorecard/core"
	"github.com/huangsam/scorecard/internal/contract"
	"github.com/spf13/cobra"
)

// compareCmd renders the experiment comparison table.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Show stored experiments side by side with scored metrics.",
	Long: `Fetch every stored experiment, flatten its nested results into columns and
classify each score against the built-in metric thresholds.

Scores are marked:
  good     - e.g. R2 above 0.8
  warning  - e.g. R2 from 0.5 up to 0.65
  bad      - e.g. R2 below 0.5
Values between bands and metrics without a rule are left unmarked.

Examples:
  # Compare everything stored in the assist service
  scorecard compare

  # Use every metric seen in any experiment as a column
  scorecard compare --columns union

  # Only show lasso runs, the first 10
  scorecard compare --filter lasso --limit 10

  # Render a saved response offline
  scorecard compare --input experiments.json --output html --output-file scorecard.html

  # Export one row per score for analysis
  scorecard compare --output parquet --output-file scores.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		checkAndExecute(core.ExecuteCompare)
	},
}

// checkAndExecute runs a table-based executor against the configured source.
func checkAndExecute(executeFunc core.ExecutorFunc) {
	if err := executeFunc(rootCtx, cfg, source); err != nil {
		contract.LogFatal("Cannot compare experiments", err)
	}
}
