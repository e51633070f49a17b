package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/huangsam/scorecard/core"
	"github.com/huangsam/scorecard/internal/assist"
	"github.com/huangsam/scorecard/internal/contract"
	"github.com/spf13/cobra"
)

// deleteCmd moves experiments to the trash.
var deleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Move stored experiments to the trash.",
	Long: `Ask the assist service to trash one or more experiments by id.

Each experiment is confirmed interactively unless --yes is given.

Examples:
  # Trash one experiment after confirming
  scorecard delete 5f2b8c

  # Trash several without prompting
  scorecard delete 5f2b8c 6a01de --yes`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if cfg.UsesFile() {
			contract.LogFatal("Cannot delete experiments", fmt.Errorf("%s: %w", cfg.InputFile, assist.ErrReadOnlySource))
		}
		confirm := promptConfirmer(os.Stdin, os.Stderr)
		if err := core.ExecuteDelete(rootCtx, cfg, source, args, confirm, os.Stdout); err != nil {
			contract.LogFatal("Cannot delete experiments", err)
		}
	},
}

// promptConfirmer asks on out and reads a yes/no answer from in.
// Anything but y or yes declines; a closed input is an error.
func promptConfirmer(in io.Reader, out io.Writer) core.Confirmer {
	reader := bufio.NewReader(in)
	return func(prompt string) (bool, error) {
		if _, err := fmt.Fprintf(out, "%s [y/N]: ", prompt); err != nil {
			return false, err
		}
		line, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}
