// Package summary computes status and daily totals over an entry log.
//
// All functions are pure: they take the entry slice and a reference
// instant, never touch storage, and treat their inputs as read-only.
// Callers poll them on whatever schedule they like.
package summary

import (
	"time"

	"github.com/hglund/punch/internal/entry"
	"github.com/hglund/punch/internal/storage"
)

// Status describes whether an entry is currently running.
type Status struct {
	Running bool
	Entry   entry.Entry
	Elapsed time.Duration
}

// Current returns the running status at the reference instant. When an
// open entry exists, Elapsed is the time since its start.
func Current(entries []entry.Entry, now time.Time) Status {
	idx := storage.FindOpen(entries)
	if idx == -1 {
		return Status{}
	}
	e := entries[idx]
	return Status{
		Running: true,
		Entry:   e,
		Elapsed: now.Sub(e.Start),
	}
}

// DayWindow returns the UTC boundaries of the local calendar day
// containing now in the given location: [local midnight, next local
// midnight). The end boundary is derived from the next midnight instant
// rather than now+24h, so days shortened or stretched by a DST change
// keep their true length.
func DayWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	year, month, day := local.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)
	return start.UTC(), end.UTC()
}

// Clip returns the portion of the entry's effective interval
// [Start, End-or-now] that falls inside [winStart, winEnd). An entry
// fully outside the window contributes zero.
func Clip(e entry.Entry, winStart, winEnd, now time.Time) time.Duration {
	end := now
	if e.End != nil {
		end = *e.End
	}

	start := e.Start
	if winStart.After(start) {
		start = winStart
	}
	if winEnd.Before(end) {
		end = winEnd
	}

	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	return d
}

// DailyTotal sums the clipped contribution of every entry to the window.
// Entries are processed independently, so the result does not depend on
// log order. Precondition: entries do not overlap each other; the
// single-open-entry invariant plus sequential start/stop usage guarantee
// this for tracked entries, and retroactive adds are checked with
// Overlaps before they are persisted.
func DailyTotal(entries []entry.Entry, winStart, winEnd, now time.Time) time.Duration {
	var total time.Duration
	for _, e := range entries {
		total += Clip(e, winStart, winEnd, now)
	}
	return total
}

// Remaining returns how much of the daily target is left. Never negative.
func Remaining(total, target time.Duration) time.Duration {
	if total >= target {
		return 0
	}
	return target - total
}

// ByTag returns the clipped per-tag totals for the window. Entries
// without tags are accounted under "(untagged)". An entry carrying
// several tags contributes its full clipped duration to each of them.
func ByTag(entries []entry.Entry, winStart, winEnd, now time.Time) map[string]time.Duration {
	totals := make(map[string]time.Duration)
	for _, e := range entries {
		chunk := Clip(e, winStart, winEnd, now)
		if chunk <= 0 {
			continue
		}

		tags := e.Tags()
		if len(tags) == 0 {
			tags = []string{"(untagged)"}
		}
		for _, tag := range tags {
			totals[tag] += chunk
		}
	}
	return totals
}

// Overlaps reports whether the candidate interval [start, end) intersects
// any existing entry, and returns the first entry it collides with.
// Open entries are measured against now.
func Overlaps(entries []entry.Entry, start, end, now time.Time) (entry.Entry, bool) {
	for _, existing := range entries {
		existingEnd := now
		if existing.End != nil {
			existingEnd = *existing.End
		}
		if start.Before(existingEnd) && end.After(existing.Start) {
			return existing, true
		}
	}
	return entry.Entry{}, false
}
