package ports

import "go.trai.ch/repoutil/internal/core/domain"

// ConfigLoader defines the interface for loading the repository configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and returns the policy and
	// scan options it declares.
	Load(path string) (*domain.Config, error)

	// DiscoverConfig walks up from dir to find the configuration file.
	// Returns domain.ErrConfigNotFound when no file exists.
	DiscoverConfig(dir string) (string, error)
}
