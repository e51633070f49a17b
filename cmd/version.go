package cmd

import (
	"runtime"

	"github.com/huangsam/scorecard/core/algo"
	"github.com/spf13/cobra"
)

// versionCmd shows the verbose version for diagnostic purposes.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of scorecard.",
	Long: `Display version information including build details.

Shows the release version, git commit, build timestamp, Go runtime
and how many metric rules are built in. Include it when reporting bugs.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("scorecard CLI\n")
		cmd.Printf("  Version: %s\n", version)
		cmd.Printf("  Commit:  %s\n", commit)
		cmd.Printf("  Built:   %s\n", date)
		cmd.Printf("  Runtime: %s\n", runtime.Version())
		cmd.Printf("  Rules:   %d\n", len(algo.DefaultRules.Rules()))
	},
}
