package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hglund/punch/internal/config"
	"github.com/hglund/punch/internal/entry"
	"github.com/hglund/punch/internal/storage"
	"github.com/hglund/punch/internal/summary"
)

// Tracker-specific errors
var (
	ErrEmptyText      = errors.New("description cannot be empty")
	ErrAlreadyRunning = errors.New("an entry is already running")
	ErrNothingRunning = errors.New("no entry is running")
	ErrEndNotAfter    = errors.New("end must be after start")
	ErrOverlap        = errors.New("interval overlaps an existing entry")
)

// minClose is the minimum distance between an entry's start and its stop
// instant. A stop requested at or before the start is coerced forward to
// start+minClose instead of being rejected, so a closed entry always has
// a positive duration.
const minClose = time.Minute

// TrackerService owns the start/stop state machine over the entry log.
// Each command is one load-check-mutate-persist sequence; the log
// assumes a single writer process, and a multi-threaded caller must
// serialize access itself.
type TrackerService struct {
	storagePath string
	cfg         config.Config
}

// NewTrackerService creates a new TrackerService
func NewTrackerService(storagePath string, cfg config.Config) *TrackerService {
	return &TrackerService{
		storagePath: storagePath,
		cfg:         cfg,
	}
}

// Config returns the configuration the service was built with.
func (s *TrackerService) Config() config.Config {
	return s.cfg
}

// Start begins a new open entry at the given instant.
// Fails with ErrAlreadyRunning while another entry is open.
func (s *TrackerService) Start(text string, now time.Time) (entry.Entry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entry.Entry{}, ErrEmptyText
	}

	entries, err := storage.ReadEntries(s.storagePath)
	if err != nil {
		return entry.Entry{}, fmt.Errorf("failed to read entry log: %w", err)
	}

	if idx := storage.FindOpen(entries); idx != -1 {
		return entries[idx], ErrAlreadyRunning
	}

	e := entry.Entry{
		Start: now.UTC().Truncate(time.Second),
		Text:  text,
	}
	if err := storage.AppendEntry(s.storagePath, e); err != nil {
		return entry.Entry{}, fmt.Errorf("failed to append entry: %w", err)
	}

	return e, nil
}

// Stop closes the open entry at the given instant and atomically
// rewrites the log. The effective end is max(now, start+1m): a clock
// that jumped backwards between start and stop never produces a
// non-positive interval. Fails with ErrNothingRunning when the log has
// no open entry.
func (s *TrackerService) Stop(now time.Time) (entry.Entry, error) {
	entries, err := storage.ReadEntries(s.storagePath)
	if err != nil {
		return entry.Entry{}, fmt.Errorf("failed to read entry log: %w", err)
	}

	idx := storage.FindOpen(entries)
	if idx == -1 {
		return entry.Entry{}, ErrNothingRunning
	}

	open := entries[idx]
	end := now.UTC().Truncate(time.Second)
	if !end.After(open.Start) {
		end = open.Start.Add(minClose)
	}
	open.End = &end
	entries[idx] = open

	if err := storage.WriteEntries(s.storagePath, entries); err != nil {
		return entry.Entry{}, fmt.Errorf("failed to rewrite entry log: %w", err)
	}

	return open, nil
}

// Add records a retroactive closed entry. Unlike tracked entries, a
// hand-supplied interval can collide with existing ones, so overlaps are
// rejected with ErrOverlap rather than double-counted later.
func (s *TrackerService) Add(start, end time.Time, text string, now time.Time) (entry.Entry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entry.Entry{}, ErrEmptyText
	}

	startUTC := start.UTC().Truncate(time.Second)
	endUTC := end.UTC().Truncate(time.Second)
	if !endUTC.After(startUTC) {
		return entry.Entry{}, ErrEndNotAfter
	}

	entries, err := storage.ReadEntries(s.storagePath)
	if err != nil {
		return entry.Entry{}, fmt.Errorf("failed to read entry log: %w", err)
	}

	nowUTC := now.UTC()
	if existing, ok := summary.Overlaps(entries, startUTC, endUTC, nowUTC); ok {
		return entry.Entry{}, fmt.Errorf("%w: %q started %s", ErrOverlap,
			existing.Text, existing.Start.Format(time.RFC3339))
	}

	e := entry.Entry{
		Start: startUTC,
		End:   &endUTC,
		Text:  text,
	}
	if err := storage.AppendEntry(s.storagePath, e); err != nil {
		return entry.Entry{}, fmt.Errorf("failed to append entry: %w", err)
	}

	return e, nil
}

// DaySummary is everything the status line and dashboard need for the
// local calendar day containing the reference instant.
type DaySummary struct {
	Status      summary.Status
	Entries     []entry.Entry // entries intersecting the window, log order
	Total       time.Duration
	Target      time.Duration
	Remaining   time.Duration
	WindowStart time.Time
	WindowEnd   time.Time
	Warnings    []string
}

// Today computes the day summary for the reference instant, with entries
// clipped to the local calendar day of the configured timezone.
func (s *TrackerService) Today(now time.Time) (DaySummary, error) {
	entries, err := storage.ReadEntries(s.storagePath)
	if err != nil {
		return DaySummary{}, fmt.Errorf("failed to read entry log: %w", err)
	}

	loc, err := s.cfg.Location()
	if err != nil {
		return DaySummary{}, fmt.Errorf("failed to resolve timezone: %w", err)
	}

	nowUTC := now.UTC()
	winStart, winEnd := summary.DayWindow(nowUTC, loc)

	day := DaySummary{
		Status:      summary.Current(entries, nowUTC),
		Total:       summary.DailyTotal(entries, winStart, winEnd, nowUTC),
		Target:      s.cfg.Target(),
		WindowStart: winStart,
		WindowEnd:   winEnd,
	}
	day.Remaining = summary.Remaining(day.Total, day.Target)

	for _, e := range entries {
		if summary.Clip(e, winStart, winEnd, nowUTC) > 0 {
			day.Entries = append(day.Entries, e)
		}
	}

	if n := storage.CountOpen(entries); n > 1 {
		day.Warnings = append(day.Warnings, fmt.Sprintf(
			"entry log has %d open entries; using the first and ignoring the rest (was the file edited by hand?)", n))
	}

	return day, nil
}

// TagReport holds per-tag clipped totals for one day window.
type TagReport struct {
	Totals      map[string]time.Duration
	Total       time.Duration
	WindowStart time.Time
	WindowEnd   time.Time
}

// Report computes today's per-tag totals.
func (s *TrackerService) Report(now time.Time) (TagReport, error) {
	entries, err := storage.ReadEntries(s.storagePath)
	if err != nil {
		return TagReport{}, fmt.Errorf("failed to read entry log: %w", err)
	}

	loc, err := s.cfg.Location()
	if err != nil {
		return TagReport{}, fmt.Errorf("failed to resolve timezone: %w", err)
	}

	nowUTC := now.UTC()
	winStart, winEnd := summary.DayWindow(nowUTC, loc)

	return TagReport{
		Totals:      summary.ByTag(entries, winStart, winEnd, nowUTC),
		Total:       summary.DailyTotal(entries, winStart, winEnd, nowUTC),
		WindowStart: winStart,
		WindowEnd:   winEnd,
	}, nil
}
