package ports

import "github.com/pubaudit/pubaudit/internal/core/domain"

// WorkspaceScanner defines the interface for discovering packages.
//
//go:generate mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type WorkspaceScanner interface {
	// Scan lists the workspace's packages directory and classifies each
	// immediate subdirectory. Directories without a manifest and excluded
	// directories are skipped. Packages are returned in lexicographic order
	// of their directory names.
	Scan(ws domain.Workspace) ([]domain.Package, error)
}
