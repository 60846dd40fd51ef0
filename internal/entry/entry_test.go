package entry

import (
	"reflect"
	"testing"
	"time"
)

func TestEntry_Open(t *testing.T) {
	end := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

	open := Entry{Start: end.Add(-time.Hour), Text: "writing"}
	if !open.Open() {
		t.Error("Entry without End should be open")
	}

	closed := Entry{Start: end.Add(-time.Hour), End: &end, Text: "writing"}
	if closed.Open() {
		t.Error("Entry with End should not be open")
	}
}

func TestEntry_Duration(t *testing.T) {
	start := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)
	now := time.Date(2026, time.March, 2, 11, 15, 0, 0, time.UTC)

	tests := []struct {
		name     string
		entry    Entry
		now      time.Time
		expected time.Duration
	}{
		{
			name:     "closed entry uses its end",
			entry:    Entry{Start: start, End: &end, Text: "writing"},
			now:      now,
			expected: 30 * time.Minute,
		},
		{
			name:     "open entry measured against now",
			entry:    Entry{Start: start, Text: "writing"},
			now:      now,
			expected: 2*time.Hour + 15*time.Minute,
		},
		{
			name:     "open entry at its own start",
			entry:    Entry{Start: start, Text: "writing"},
			now:      start,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Duration(tt.now); got != tt.expected {
				t.Errorf("Duration() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestEntry_Tags(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{"no tags", "writing report", nil},
		{"single tag", "writing report #docs", []string{"docs"}},
		{"multiple tags", "standup #meeting #daily", []string{"meeting", "daily"}},
		{"tag in the middle", "fix #backend bug", []string{"backend"}},
		{"bare hash ignored", "review # notes", nil},
		{"empty text", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entry{Start: time.Now(), Text: tt.text}
			if got := e.Tags(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tags() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
