package cmd

import (
	"github.com/huangsam/scorecard/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Scorecard MCP server",
	Long:  `Launch an MCP server that allows AI agents to compare, classify, flatten and trash experiments via standard tools.`,
	Args:  cobra.NoArgs,
	// Diagnostics stay on stderr since stdio carries the protocol.
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, source)
	},
}
