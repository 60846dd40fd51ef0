package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hglund/punch/internal/service"
	"github.com/hglund/punch/internal/summary"
	"github.com/hglund/punch/internal/timeutil"
)

var stopAtFlag string

// stopCmd represents the stop command
var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running activity",
	Long: `Stop the currently running entry and record its end time.

A stop requested at or before the entry's start is moved forward to one
minute after the start, so an entry never ends up with a non-positive
duration even when the clock jumped backwards.

Examples:
  punch stop
  punch stop --at 17:30`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		stopEntry(stopAtFlag)
	},
}

func init() {
	stopCmd.Flags().StringVar(&stopAtFlag, "at", "", "stop time (HH:MM today, or RFC 3339); defaults to now")
}

// stopEntry closes the open entry
func stopEntry(at string) {
	svcs, err := newServices()
	if err != nil {
		fatalServiceError(err)
		return
	}

	when, err := timeutil.ParseWhen(at, deps.Now())
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid stop time '%s'\n", at)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use HH:MM for a time today, or an RFC 3339 timestamp")
		deps.Exit(1)
		return
	}

	stopped, err := svcs.Tracker.Stop(when)
	switch {
	case errors.Is(err, service.ErrNothingRunning):
		_, _ = fmt.Fprintln(deps.Stderr, "Error: No entry is running")
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Start one with 'punch start <description>'")
		deps.Exit(1)
		return
	case err != nil:
		fatalTrackerError(err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Stopped: %s (%s)\n",
		stopped.Text, summary.FormatDuration(stopped.Duration(when.UTC())))
}
