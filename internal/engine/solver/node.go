package solver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgplan/internal/core/ports"
)

// NodeID is the unique identifier for the solver factory Graft node.
const NodeID graft.ID = "engine.solver"

func init() {
	graft.Register(graft.Node[ports.SolverFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SolverFactory, error) {
			return NewFactory(), nil
		},
	})
}
