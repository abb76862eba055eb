package ports

import "github.com/pubaudit/pubaudit/internal/core/domain"

// ConfigLoader defines the interface for loading the audit configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the config file from the workspace root and resolves it into
	// a Workspace. A missing config file is not an error: defaults apply.
	Load(root string) (*domain.Workspace, error)
}
