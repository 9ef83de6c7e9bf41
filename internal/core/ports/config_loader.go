package ports

import "go.trai.ch/predex/internal/core/domain"

// ConfigLoader defines the interface for loading the workspace configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds predex.yaml starting at cwd and returns the workspace.
	Load(cwd string) (*domain.Workspace, error)
}
