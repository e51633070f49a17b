package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/internal/web"
	"github.com/spf13/cobra"
)

// serveCmd serves the comparison page over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the comparison table as a web page.",
	Long: `Start an HTTP server with the comparison page at / and a JSON API:

  GET    /api/table              comparison table (?filter=, ?columns=, ?limit=)
  DELETE /api/experiments/{id}   trash an experiment
  GET    /health                 liveness check`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := web.ListenAndServe(ctx, cfg, source); err != nil {
			contract.LogFatal("Cannot serve", err)
		}
	},
}
