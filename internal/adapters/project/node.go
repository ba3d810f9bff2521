package project

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scan/internal/adapters/logger"
	"go.trai.ch/scan/internal/core/ports"
)

// NodeID is the unique identifier for the project resolver Graft node.
const NodeID graft.ID = "adapter.project_resolver"

func init() {
	graft.Register(graft.Node[ports.ProjectResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ProjectResolver, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(log), nil
		},
	})
}
