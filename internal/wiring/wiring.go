// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/pubaudit/pubaudit/internal/adapters/config"
	_ "github.com/pubaudit/pubaudit/internal/adapters/fs"
	_ "github.com/pubaudit/pubaudit/internal/adapters/logger"
	_ "github.com/pubaudit/pubaudit/internal/adapters/shell"
	_ "github.com/pubaudit/pubaudit/internal/adapters/workspace"
	// Register app nodes.
	_ "github.com/pubaudit/pubaudit/internal/app"
)
