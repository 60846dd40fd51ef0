// Package storage persists the entry log as a JSON Lines file.
//
// The log is the sole persisted state: an ordered sequence of entries,
// one JSON object per line, in insertion order. The file assumes a
// single writer process; callers serialize access themselves.
package storage

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hglund/punch/internal/entry"
	"github.com/hglund/punch/internal/osutil"
)

const (
	// AppName is the application name used for the config directory
	AppName = "punch"
	// LogFile is the name of the JSON Lines entry log
	LogFile = "entries.jsonl"
)

var (
	// ErrUnavailable marks a log file that exists but cannot be read or
	// written (permissions, disk error). A missing file is not an error.
	ErrUnavailable = errors.New("entry log unavailable")
	// ErrCorrupt marks a log file containing an unparseable entry. The
	// whole read fails rather than silently dropping the line.
	ErrCorrupt = errors.New("entry log corrupt")
)

// DefaultPath returns the path to the entry log file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func DefaultPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, LogFile), nil
}

// ReadEntries reads all entries from the log file in insertion order.
// A missing file yields an empty slice. Any malformed line fails the
// whole read with ErrCorrupt so that data loss is never silent.
func ReadEntries(path string) ([]entry.Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []entry.Entry{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = file.Close() }()

	entries := []entry.Entry{}
	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if line == "" {
			continue
		}

		e, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrCorrupt, lineNumber, err)
		}
		entries = append(entries, e)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return entries, nil
}

// parseLine decodes and validates a single log line.
func parseLine(line string) (entry.Entry, error) {
	var e entry.Entry
	if err := json.Unmarshal([]byte(line), &e); err != nil {
		return entry.Entry{}, err
	}
	if e.Start.IsZero() {
		return entry.Entry{}, errors.New("missing start time")
	}
	if e.Text == "" {
		return entry.Entry{}, errors.New("missing description")
	}
	if e.End != nil && !e.End.After(e.Start) {
		return entry.Entry{}, errors.New("end not after start")
	}

	// Instants are compared in UTC regardless of the offset they were
	// written with.
	e.Start = e.Start.UTC()
	if e.End != nil {
		end := e.End.UTC()
		e.End = &end
	}
	return e, nil
}

// AppendEntry appends a single entry to the end of the log without
// rewriting existing lines. Creates the file if it doesn't exist.
// The caller has already verified that no open entry exists.
func AppendEntry(path string, e entry.Entry) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = file.Close() }()

	line, err := json.Marshal(e)
	if err != nil {
		return err
	}

	if _, err := file.WriteString(string(line) + "\n"); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// WriteEntries atomically rewrites the whole log with the given entries.
// Uses the write-to-temp-then-rename pattern so a crash mid-write never
// leaves a truncated file behind: readers observe either the old or the
// new content.
func WriteEntries(path string, entries []entry.Entry) error {
	tmpFile := path + ".tmp"
	file, err := os.OpenFile(tmpFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	for _, e := range entries {
		line, err := json.Marshal(e)
		if err != nil {
			_ = file.Close()
			_ = os.Remove(tmpFile)
			return err
		}
		if _, err := file.WriteString(string(line) + "\n"); err != nil {
			_ = file.Close()
			_ = os.Remove(tmpFile)
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if err := os.Rename(tmpFile, path); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// FindOpen returns the index of the first entry with no end time,
// scanning in log order. Returns -1 if no entry is open.
// At most one open entry is expected; see CountOpen for detecting
// violations of that invariant.
func FindOpen(entries []entry.Entry) int {
	for i, e := range entries {
		if e.Open() {
			return i
		}
	}
	return -1
}

// CountOpen returns the number of open entries in the log. A count above
// one means the single-open-entry invariant was violated, e.g. by an
// external edit; callers proceed with the first open entry but should
// surface a warning.
func CountOpen(entries []entry.Entry) int {
	n := 0
	for _, e := range entries {
		if e.Open() {
			n++
		}
	}
	return n
}
