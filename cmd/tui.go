package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hglund/punch/internal/service"
	"github.com/hglund/punch/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	Long: `Launch the interactive terminal dashboard.

The dashboard shows the running status, today's entries, and progress
toward the daily target, refreshing on the configured interval.

Keyboard shortcuts:
  - s: start a new entry
  - x: stop the running entry
  - r: refresh now
  - q: quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

// runTUI initializes and runs the dashboard
func runTUI() {
	svcs, err := service.NewServices()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error initializing services: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(svcs); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error running dashboard: %v\n", err)
		os.Exit(1)
	}
}
