// main is the entry point for the scorecard CLI.
package main

import (
	"github.com/huangsam/scorecard/cmd"
	"github.com/huangsam/scorecard/internal/contract"
)

func main() {
	defer cmd.Flush()
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Cannot run scorecard", err)
	}
	if err := cmd.StopProfiling(); err != nil {
		contract.LogWarn("Cannot stop profiling", err)
	}
}
