package ports

import "go.trai.ch/tally/internal/core/domain"

// ConfigLoader defines the interface for loading the tally configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the configuration. An explicit path must exist; with an empty
	// path the loader walks up from cwd and falls back to defaults when nothing is found.
	Load(cwd, path string) (*domain.Config, error)
}
