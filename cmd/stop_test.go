package cmd

import (
	"strings"
	"testing"
	"time"
)

func TestStopEntry_Success(t *testing.T) {
	env := setupCmdTest(t)

	startEntry([]string{"writing", "docs"}, "")
	env.advance(30 * time.Minute)
	stopEntry("")

	output := env.stdout.String()
	if !strings.Contains(output, "Stopped: writing docs (0h30m)") {
		t.Errorf("Expected stopped message with duration, got: %s", output)
	}
	if env.exitCode != 0 {
		t.Errorf("Expected exit code 0, got %d", env.exitCode)
	}
}

func TestStopEntry_NothingRunning(t *testing.T) {
	env := setupCmdTest(t)

	stopEntry("")

	if env.exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", env.exitCode)
	}
	if !strings.Contains(env.stderr.String(), "No entry is running") {
		t.Errorf("Expected 'No entry is running' in stderr, got: %s", env.stderr.String())
	}
}

func TestStopEntry_CoercedEnd(t *testing.T) {
	env := setupCmdTest(t)

	// Stop at the exact start instant: the end is moved forward one
	// minute so the entry keeps a positive duration.
	startEntry([]string{"blink"}, "")
	stopEntry("")

	output := env.stdout.String()
	if !strings.Contains(output, "Stopped: blink (0h01m)") {
		t.Errorf("Expected one minute coerced duration, got: %s", output)
	}
}

func TestStopEntry_InvalidAtFlag(t *testing.T) {
	env := setupCmdTest(t)

	startEntry([]string{"task"}, "")
	stopEntry("25:99")

	if env.exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", env.exitCode)
	}
	if !strings.Contains(env.stderr.String(), "Invalid stop time") {
		t.Errorf("Expected invalid time error, got: %s", env.stderr.String())
	}
}
