package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// testEnv bundles the injected dependencies for a command test.
type testEnv struct {
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	exitCode int
	now      time.Time

	storagePath string
	configPath  string
}

// setupCmdTest injects deterministic dependencies: buffered output, a
// recorded exit code, a fixed clock, and temp storage/config paths. The
// config pins the timezone to UTC so day windows do not depend on the
// machine running the tests.
func setupCmdTest(t *testing.T) *testEnv {
	t.Helper()

	tmpDir := t.TempDir()
	env := &testEnv{
		stdout:      &bytes.Buffer{},
		stderr:      &bytes.Buffer{},
		now:         time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		storagePath: filepath.Join(tmpDir, "entries.jsonl"),
		configPath:  filepath.Join(tmpDir, "config.toml"),
	}

	cfg := "daily_target = \"8h\"\ntimezone = \"UTC\"\nrefresh_interval = \"15s\"\n"
	if err := os.WriteFile(env.configPath, []byte(cfg), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	SetDeps(&Deps{
		Stdout:      env.stdout,
		Stderr:      env.stderr,
		Exit:        func(code int) { env.exitCode = code },
		Now:         func() time.Time { return env.now },
		StoragePath: func() (string, error) { return env.storagePath, nil },
		ConfigPath:  func() (string, error) { return env.configPath, nil },
	})
	t.Cleanup(ResetDeps)

	return env
}

// advance moves the fake clock forward.
func (e *testEnv) advance(d time.Duration) {
	e.now = e.now.Add(d)
}

// writeRawLog writes raw JSONL lines directly to the storage path,
// bypassing the service layer.
func writeRawLog(t *testing.T, env *testEnv, lines ...string) {
	t.Helper()
	content := ""
	for _, line := range lines {
		content += line + "\n"
	}
	if err := os.WriteFile(env.storagePath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test log: %v", err)
	}
}
