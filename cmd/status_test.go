package cmd

import (
	"strings"
	"testing"
	"time"
)

func TestShowStatus_Idle(t *testing.T) {
	env := setupCmdTest(t)

	showStatus()

	output := env.stdout.String()
	if !strings.Contains(output, "Status: idle") {
		t.Errorf("Expected idle status, got: %s", output)
	}
	if !strings.Contains(output, "Today: 00:00 worked, 08:00 remaining to 08:00") {
		t.Errorf("Expected day summary line, got: %s", output)
	}
}

func TestShowStatus_Running(t *testing.T) {
	env := setupCmdTest(t)

	startEntry([]string{"api", "work"}, "")
	env.advance(45 * time.Minute)
	showStatus()

	output := env.stdout.String()
	if !strings.Contains(output, "Status: running 'api work' (0h45m elapsed)") {
		t.Errorf("Expected running status with elapsed time, got: %s", output)
	}
	if !strings.Contains(output, "Today: 00:45 worked, 07:15 remaining to 08:00") {
		t.Errorf("Expected running time counted in day summary, got: %s", output)
	}
}

func TestShowStatus_IntegrityWarning(t *testing.T) {
	env := setupCmdTest(t)

	// Two open entries can only appear through outside edits to the log.
	writeRawLog(t, env,
		`{"start":"2026-03-02T08:00:00Z","text":"first"}`,
		`{"start":"2026-03-02T08:30:00Z","text":"second"}`,
	)

	showStatus()

	if !strings.Contains(env.stderr.String(), "Warning:") {
		t.Errorf("Expected integrity warning on stderr, got: %s", env.stderr.String())
	}
}
