package cmd

import (
	"io"
	"os"
	"time"

	"github.com/hglund/punch/internal/config"
	"github.com/hglund/punch/internal/service"
	"github.com/hglund/punch/internal/storage"
	"github.com/hglund/punch/internal/timeutil"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout      io.Writer
	Stderr      io.Writer
	Exit        func(code int)
	Now         func() time.Time
	StoragePath func() (string, error)
	ConfigPath  func() (string, error)
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Exit:        os.Exit,
		Now:         timeutil.LocalNow,
		StoragePath: storage.DefaultPath,
		ConfigPath:  config.GetConfigPath,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}

// newServices builds the service layer from the injected paths.
func newServices() (*service.Services, error) {
	storagePath, err := deps.StoragePath()
	if err != nil {
		return nil, err
	}

	configPath, err := deps.ConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	return service.NewServicesWithPaths(storagePath, cfg), nil
}
