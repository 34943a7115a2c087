package ports

import "go.trai.ch/stitch/internal/core/domain"

// ConfigLoader loads and validates the stitch manifest.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the manifest, starting the search at cwd when path is
	// empty, and returns the fully resolved configuration.
	Load(cwd, path string) (*domain.Manifest, error)
}
