package outwriter

import (
	"os"

	"github.com/huangsam/scorecard/internal/contract"
	"golang.org/x/term"
)

// Column budget used when sizing the name column.
const (
	idColumnWidth    = 16 // typical experiment id plus padding
	scoreColumnWidth = 9  // a formatted score plus padding
	minNameWidth     = 15
)

// GetTerminalWidth returns the configured width override, the detected
// terminal width, or 80 when neither is available.
func GetTerminalWidth(cfg *contract.Config) int {
	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		// Fallback to conservative default if terminal size can't be detected
		return 80
	}
	return detectedWidth
}

// GetMaxNameWidth calculates the maximum width for experiment names in table
// output based on terminal width and the number of score columns.
func GetMaxNameWidth(cfg *contract.Config, numColumns int) int {
	available := GetTerminalWidth(cfg) - idColumnWidth - numColumns*scoreColumnWidth
	if available < minNameWidth {
		return minNameWidth
	}
	if available > contract.MaxNameLength {
		return contract.MaxNameLength
	}
	return available
}
