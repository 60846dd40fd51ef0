// Package timeutil provides the time helpers shared by the CLI and TUI.
//
// All persisted instants are UTC with second precision; local time only
// appears at the presentation boundary and when parsing user input.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// UTCNow returns the current UTC time truncated to the second.
func UTCNow() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// LocalNow returns the current local time truncated to the second.
func LocalNow() time.Time {
	return time.Now().Truncate(time.Second)
}

// ParseTimeOfDay parses a wall-clock time in HH:MM format.
func ParseTimeOfDay(value string) (hour, minute int, err error) {
	hh, mm, ok := strings.Cut(value, ":")
	if !ok || len(mm) != 2 {
		return 0, 0, fmt.Errorf("invalid time format: %s", value)
	}

	hour, err = strconv.Atoi(hh)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time format: %s", value)
	}
	minute, err = strconv.Atoi(mm)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time format: %s", value)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid time value: %s", value)
	}

	return hour, minute, nil
}

// ParseWhen parses a user-supplied instant. Accepted forms:
//   - RFC 3339 with offset (e.g. 2026-03-02T09:00:00Z)
//   - RFC 3339 without offset, interpreted in fallback's location
//   - HH:MM, meaning that wall-clock time on fallback's calendar day
//
// An empty value returns fallback unchanged.
func ParseWhen(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", value); err == nil {
		loc := fallback.Location()
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), nil
	}

	hour, minute, err := ParseTimeOfDay(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse time: %s", value)
	}

	return time.Date(fallback.Year(), fallback.Month(), fallback.Day(), hour, minute, 0, 0, fallback.Location()), nil
}
