// Package cmd defines the command-line interface for scorecard.
package cmd

import (
	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(flattenCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("endpoint", contract.DefaultEndpoint, "URL of the assist service")
	rootCmd.PersistentFlags().StringP("input", "i", "", "Read experiments from a JSON file instead of the service (- for stdin)")
	rootCmd.PersistentFlags().String("timeout", contract.DefaultTimeout.String(), "Timeout per request to the assist service")
	rootCmd.PersistentFlags().StringP("filter", "f", "", "Only show experiments whose row contains this text")
	rootCmd.PersistentFlags().String("columns", string(schema.FirstColumns), "Column strategy: first or union")
	rootCmd.PersistentFlags().IntP("limit", "l", 0, "Number of experiments to display (0 = all)")
	rootCmd.PersistentFlags().Bool("disambiguate", false, "Suffix colliding flattened paths with (2), (3) instead of overwriting")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for non-integral scores")
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TextOut), "Output format: text or csv or json or yaml or parquet or html")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored verdicts in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("log-level", string(schema.WarnLevel), "Diagnostic log level: debug or info or warn or error")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of deleteCmd to Viper
	deleteCmd.Flags().BoolP("yes", "y", false, "Trash without asking for confirmation")
	deleteCmd.Flags().Int("workers", contract.DefaultWorkers, "Number of concurrent delete requests")
	if err := viper.BindPFlags(deleteCmd.Flags()); err != nil {
		contract.LogFatal("Error binding delete flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("addr", contract.DefaultAddr, "Address to listen on")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}
}
