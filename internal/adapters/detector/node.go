package detector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scan/internal/core/ports"
)

// NodeID is the unique identifier for the environment detector Graft node.
const NodeID graft.ID = "adapter.detector"

func init() {
	graft.Register(graft.Node[ports.Environment]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Environment, error) {
			return New(), nil
		},
	})
}
