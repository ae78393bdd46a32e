package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgplan/internal/adapters/cas"
	"go.trai.ch/pkgplan/internal/adapters/logger"
	"go.trai.ch/pkgplan/internal/core/ports"
)

// NodeID is the unique identifier for the solution cache Graft node.
const NodeID graft.ID = "adapter.solution_cache"

func init() {
	graft.Register(graft.Node[ports.SolutionCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cas.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.SolutionCache, error) {
			store, err := graft.Dep[ports.SolutionStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(store, log), nil
		},
	})
}
