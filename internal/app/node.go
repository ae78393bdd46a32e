package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgplan/internal/adapters/cache"     //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgplan/internal/adapters/catalog"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgplan/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgplan/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgplan/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgplan/internal/core/ports"
	"go.trai.ch/pkgplan/internal/engine/solver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			catalog.NodeID,
			solver.NodeID,
			cache.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	catalogLoader, err := graft.Dep[ports.CatalogLoader](ctx)
	if err != nil {
		return nil, err
	}

	solvers, err := graft.Dep[ports.SolverFactory](ctx)
	if err != nil {
		return nil, err
	}

	solutionCache, err := graft.Dep[ports.SolutionCache](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(configLoader, catalogLoader, solvers, solutionCache, log, tracer), nil
}
