package workspace

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pubaudit/pubaudit/internal/adapters/fs"
	"github.com/pubaudit/pubaudit/internal/adapters/logger"
	"github.com/pubaudit/pubaudit/internal/core/ports"
)

// NodeID is the unique identifier for the workspace scanner Graft node.
const NodeID graft.ID = "adapter.workspace_scanner"

func init() {
	graft.Register(graft.Node[ports.WorkspaceScanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, fs.NodeID},
		Run: func(ctx context.Context) (ports.WorkspaceScanner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			filesystem, err := graft.Dep[fs.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(log, filesystem), nil
		},
	})
}
