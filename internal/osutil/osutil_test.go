package osutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// failingProvider returns an error from every operation.
type failingProvider struct {
	err error
}

func (p failingProvider) UserConfigDir() (string, error) {
	return "", p.err
}

func (p failingProvider) MkdirAll(path string, perm os.FileMode) error {
	return p.err
}

func TestDefaultPathProvider_MkdirAll(t *testing.T) {
	testDir := filepath.Join(t.TempDir(), "nested", "dir")

	if err := (DefaultPathProvider{}).MkdirAll(testDir, 0755); err != nil {
		t.Fatalf("MkdirAll returned error: %v", err)
	}

	info, err := os.Stat(testDir)
	if err != nil {
		t.Fatalf("Failed to stat created directory: %v", err)
	}
	if !info.IsDir() {
		t.Error("MkdirAll did not create a directory")
	}
}

func TestSetAndResetProvider(t *testing.T) {
	defer ResetProvider()

	wantErr := errors.New("no home")
	SetProvider(failingProvider{err: wantErr})

	if _, err := Provider.UserConfigDir(); !errors.Is(err, wantErr) {
		t.Errorf("Expected injected error, got %v", err)
	}

	ResetProvider()
	if _, ok := Provider.(DefaultPathProvider); !ok {
		t.Error("ResetProvider did not restore the default provider")
	}
}
