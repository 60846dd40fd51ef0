// Package entry defines the time log entry model.
package entry

import (
	"strings"
	"time"
)

// Entry represents one recorded interval of activity.
// Start is stored in UTC and is immutable once created. End is nil while
// the activity is still running; once set it is never cleared (entries
// are not reopened). Text is the non-empty description given at start.
type Entry struct {
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end,omitempty"`
	Text  string     `json:"text"`
}

// Open reports whether the entry has not been stopped yet.
func (e Entry) Open() bool {
	return e.End == nil
}

// Duration returns the length of the entry's interval. An open entry is
// measured against the provided reference instant.
func (e Entry) Duration(now time.Time) time.Duration {
	end := now
	if e.End != nil {
		end = *e.End
	}
	return end.Sub(e.Start)
}

// Tags extracts all #tag words from the entry text.
// Returns nil if the text contains no tags.
func (e Entry) Tags() []string {
	var tags []string
	for _, word := range strings.Fields(e.Text) {
		if strings.HasPrefix(word, "#") && len(word) > 1 {
			tags = append(tags, word[1:])
		}
	}
	return tags
}
