package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgplan/internal/core/ports"
)

// NodeID is the unique identifier for the solution store Graft node.
const NodeID graft.ID = "adapter.solution_store"

func init() {
	graft.Register(graft.Node[ports.SolutionStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SolutionStore, error) {
			return NewStore(), nil
		},
	})
}
