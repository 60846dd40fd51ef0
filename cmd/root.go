package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hglund/punch/internal/service"
	"github.com/hglund/punch/internal/summary"
)

var rootCmd = &cobra.Command{
	Use:   "punch",
	Short: "A single-user time tracking CLI",
	Long: `punch records intervals of activity against a daily target.

Usage:
  punch start <description>        Start tracking an activity
  punch stop                       Stop the running activity
  punch status                     Show running status and today's totals
  punch add --from 09:00 --to 10:00 <description>
                                   Record a finished interval retroactively
  punch report                     Today's totals grouped by #tag
  punch config                     Show the effective configuration
  punch tui                        Launch the interactive dashboard
  punch                            List today's entries

Descriptions can include #tags for the report view.
Times accept HH:MM (today) or RFC 3339.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showToday()
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(tuiCmd)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"punch version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// showToday lists today's entries clipped to the local calendar day,
// followed by the day summary line.
func showToday() {
	svcs, err := newServices()
	if err != nil {
		fatalServiceError(err)
		return
	}

	now := deps.Now()
	day, err := svcs.Tracker.Today(now)
	if err != nil {
		fatalTrackerError(err)
		return
	}
	printWarnings(day.Warnings)

	loc, err := svcs.Tracker.Config().Location()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to resolve timezone\nDetails: %v\n", err)
		deps.Exit(1)
		return
	}

	if len(day.Entries) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No entries for today")
		printDaySummary(day)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Today's entries:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	for _, e := range day.Entries {
		endLabel := "…    "
		if e.End != nil {
			endLabel = e.End.In(loc).Format("15:04")
		}
		clipped := summary.Clip(e, day.WindowStart, day.WindowEnd, now.UTC())
		_, _ = fmt.Fprintf(deps.Stdout, "%s - %s  %6s  %s\n",
			e.Start.In(loc).Format("15:04"),
			endLabel,
			summary.FormatDuration(clipped),
			e.Text)
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	printDaySummary(day)
}

// printDaySummary prints the worked/remaining line shared by the root
// and status commands.
func printDaySummary(day service.DaySummary) {
	_, _ = fmt.Fprintf(deps.Stdout, "Today: %s worked, %s remaining to %s\n",
		summary.FormatClock(day.Total),
		summary.FormatClock(day.Remaining),
		summary.FormatClock(day.Target))
}

// printWarnings reports non-fatal data-integrity warnings on stderr.
func printWarnings(warnings []string) {
	for _, w := range warnings {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: %s\n", w)
	}
}

// fatalServiceError reports a failure to build the service layer.
func fatalServiceError(err error) {
	_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to initialize")
	_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
	deps.Exit(1)
}

// fatalTrackerError reports a storage-level failure from the tracker.
func fatalTrackerError(err error) {
	_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read the entry log")
	_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	_, _ = fmt.Fprintln(deps.Stderr, "Hint: Run 'punch status' after fixing the log file; corrupt lines are never dropped silently")
	deps.Exit(1)
}

// formatWhen renders an instant for confirmation messages in the given location.
func formatWhen(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02 15:04")
}
