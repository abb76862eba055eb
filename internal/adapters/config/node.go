package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pubaudit/pubaudit/internal/adapters/fs"
	"github.com/pubaudit/pubaudit/internal/adapters/logger"
	"github.com/pubaudit/pubaudit/internal/core/ports"
)

// NodeID is the unique identifier for the config loader Graft node.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, fs.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			filesystem, err := graft.Dep[fs.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log, filesystem), nil
		},
	})
}
