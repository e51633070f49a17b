package cmd

import (
	"github.com/huangsam/scorecard/core"
	"github.com/huangsam/scorecard/internal/contract"
	"github.com/spf13/cobra"
)

// rulesCmd prints the metric thresholds.
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the metric thresholds used to mark scores.",
	Long: `Print the built-in threshold table. Each metric lists the ranges that make
a score good, warning or bad; values outside every range stay unmarked.`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRules(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot print rules", err)
		}
	},
}
