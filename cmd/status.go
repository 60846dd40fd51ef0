package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hglund/punch/internal/summary"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running status and today's totals",
	Long: `Show whether an entry is running, how long it has been running,
and how today's total compares to the daily target.

Examples:
  punch status`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showStatus()
	},
}

// showStatus displays the running status and the day summary
func showStatus() {
	svcs, err := newServices()
	if err != nil {
		fatalServiceError(err)
		return
	}

	day, err := svcs.Tracker.Today(deps.Now())
	if err != nil {
		fatalTrackerError(err)
		return
	}
	printWarnings(day.Warnings)

	if day.Status.Running {
		_, _ = fmt.Fprintf(deps.Stdout, "Status: running '%s' (%s elapsed)\n",
			day.Status.Entry.Text, summary.FormatDuration(day.Status.Elapsed))
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: idle")
	}
	printDaySummary(day)
}
