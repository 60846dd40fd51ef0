package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hglund/punch/internal/summary"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show today's totals grouped by #tag",
	Long: `Show today's worked time grouped by the #tags in entry
descriptions. Entries without tags are listed as "(untagged)".
An entry with several tags counts fully toward each of them, so the
per-tag column can sum to more than the total.

Examples:
  punch report`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showReport()
	},
}

// showReport prints today's per-tag totals, longest first
func showReport() {
	svcs, err := newServices()
	if err != nil {
		fatalServiceError(err)
		return
	}

	report, err := svcs.Tracker.Report(deps.Now())
	if err != nil {
		fatalTrackerError(err)
		return
	}

	if len(report.Totals) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No entries for today")
		return
	}

	tags := make([]string, 0, len(report.Totals))
	for tag := range report.Totals {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if report.Totals[tags[i]] != report.Totals[tags[j]] {
			return report.Totals[tags[i]] > report.Totals[tags[j]]
		}
		return tags[i] < tags[j]
	})

	_, _ = fmt.Fprintln(deps.Stdout, "Today by tag:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 30))
	for _, tag := range tags {
		_, _ = fmt.Fprintf(deps.Stdout, "%6s  %s\n", summary.FormatDuration(report.Totals[tag]), tag)
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 30))
	_, _ = fmt.Fprintf(deps.Stdout, "Total: %s\n", summary.FormatDuration(report.Total))
}
