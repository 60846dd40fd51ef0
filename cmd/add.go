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

var (
	addFromFlag string
	addToFlag   string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add --from <time> --to <time> <description>",
	Short: "Record a finished interval retroactively",
	Long: `Record an interval that was not tracked live, e.g. a meeting you
forgot to start. The interval must not overlap any existing entry.

Examples:
  punch add --from 09:00 --to 09:30 standup #meeting
  punch add --from 2026-03-02T14:00:00Z --to 2026-03-02T15:00:00Z incident review`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addEntry(args, addFromFlag, addToFlag)
	},
}

func init() {
	addCmd.Flags().StringVar(&addFromFlag, "from", "", "start time (HH:MM today, or RFC 3339)")
	addCmd.Flags().StringVar(&addToFlag, "to", "", "end time (HH:MM today, or RFC 3339)")
	_ = addCmd.MarkFlagRequired("from")
	_ = addCmd.MarkFlagRequired("to")
}

// addEntry records a retroactive closed entry
func addEntry(args []string, from, to string) {
	text := strings.TrimSpace(strings.Join(args, " "))

	svcs, err := newServices()
	if err != nil {
		fatalServiceError(err)
		return
	}

	now := deps.Now()
	start, err := timeutil.ParseWhen(from, now)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid --from time '%s'\n", from)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use HH:MM for a time today, or an RFC 3339 timestamp")
		deps.Exit(1)
		return
	}
	end, err := timeutil.ParseWhen(to, now)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid --to time '%s'\n", to)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use HH:MM for a time today, or an RFC 3339 timestamp")
		deps.Exit(1)
		return
	}

	added, err := svcs.Tracker.Add(start, end, text, now)
	switch {
	case errors.Is(err, service.ErrEmptyText):
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Description cannot be empty")
		deps.Exit(1)
		return
	case errors.Is(err, service.ErrEndNotAfter):
		_, _ = fmt.Fprintln(deps.Stderr, "Error: --to must be after --from")
		deps.Exit(1)
		return
	case errors.Is(err, service.ErrOverlap):
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Interval overlaps an existing entry")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	case err != nil:
		fatalTrackerError(err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Added: %s (%s)\n",
		added.Text, summary.FormatDuration(added.Duration(now.UTC())))
}
