package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hglund/punch/internal/service"
	"github.com/hglund/punch/internal/summary"
	"github.com/hglund/punch/internal/timeutil"
)

var startAtFlag string

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start <description>",
	Short: "Start tracking an activity",
	Long: `Start tracking an activity with the given description.
Only one entry can be running at a time; stop it with 'punch stop'.

The description can include #tags for the report view.

Examples:
  punch start writing release notes
  punch start api work #backend
  punch start --at 08:45 standup #meeting`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		startEntry(args, startAtFlag)
	},
}

func init() {
	startCmd.Flags().StringVar(&startAtFlag, "at", "", "start time (HH:MM today, or RFC 3339); defaults to now")
}

// startEntry begins a new open entry
func startEntry(args []string, at string) {
	text := strings.TrimSpace(strings.Join(args, " "))

	svcs, err := newServices()
	if err != nil {
		fatalServiceError(err)
		return
	}

	when, err := timeutil.ParseWhen(at, deps.Now())
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid start time '%s'\n", at)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use HH:MM for a time today, or an RFC 3339 timestamp")
		deps.Exit(1)
		return
	}

	started, err := svcs.Tracker.Start(text, when)
	switch {
	case errors.Is(err, service.ErrEmptyText):
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Description cannot be empty")
		_, _ = fmt.Fprintln(deps.Stderr, "Usage: punch start <description>")
		deps.Exit(1)
		return
	case errors.Is(err, service.ErrAlreadyRunning):
		// Start returns the entry that is already running
		_, _ = fmt.Fprintln(deps.Stderr, "Error: An entry is already running")
		_, _ = fmt.Fprintf(deps.Stderr, "Current: %s (%s elapsed)\n",
			started.Text, summary.FormatDuration(started.Duration(when.UTC())))
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Stop it first with 'punch stop'")
		deps.Exit(1)
		return
	case err != nil:
		fatalTrackerError(err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Started: %s @ %s\n", started.Text, formatWhen(started.Start, when.Location()))
}
