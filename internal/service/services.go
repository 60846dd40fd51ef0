// Package service provides the business logic layer for punch.
// It wraps the storage, summary, and config packages behind a narrow
// API shared by the CLI and TUI frontends.
package service

import (
	"github.com/hglund/punch/internal/config"
	"github.com/hglund/punch/internal/storage"
)

// Services holds the service instances used by the application
type Services struct {
	Tracker *TrackerService
}

// NewServices creates a Services instance with the default storage and
// config paths.
func NewServices() (*Services, error) {
	storagePath, err := storage.DefaultPath()
	if err != nil {
		return nil, err
	}

	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	return NewServicesWithPaths(storagePath, cfg), nil
}

// NewServicesWithPaths creates a Services instance with a custom storage
// path and config (useful for testing).
func NewServicesWithPaths(storagePath string, cfg config.Config) *Services {
	return &Services{
		Tracker: NewTrackerService(storagePath, cfg),
	}
}
