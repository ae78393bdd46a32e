package ports

import "go.trai.ch/pkgplan/internal/core/domain"

// ConfigLoader defines the interface for loading settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the settings file from cwd upwards, or reads path when it is not empty.
	// Defaults are returned when no settings file exists.
	Load(cwd, path string) (*domain.Settings, error)
}
