// Package domain contains the core domain models of the package resolver.
package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// Graph is a dependency graph over packages, used to order install and removal actions.
// Edges pointing at packages outside the graph are ignored.
type Graph struct {
	deps  map[PackageID][]PackageID
	order []PackageID
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		deps: make(map[PackageID][]PackageID),
	}
}

// AddPackage adds a package and the packages it depends on.
// Adding the same package twice merges its dependencies.
func (g *Graph) AddPackage(id PackageID, deps ...PackageID) {
	g.deps[id] = append(g.deps[id], deps...)
}

// Len returns the number of packages in the graph.
func (g *Graph) Len() int {
	return len(g.deps)
}

// Validate checks for cycles using a topological sort and records dependencies-first order.
// Packages are visited by name so the order is deterministic.
func (g *Graph) Validate() error {
	g.order = make([]PackageID, 0, len(g.deps))
	visited := make(map[PackageID]int) // 0: unvisited, 1: visiting, 2: visited
	var path []PackageID

	var visit func(u PackageID) error
	visit = func(u PackageID) error {
		visited[u] = 1
		path = append(path, u)

		deps := slices.Clone(g.deps[u])
		slices.SortFunc(deps, ComparePackageIDs)
		for _, dep := range deps {
			if _, inGraph := g.deps[dep]; !inGraph || dep == u {
				continue
			}
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.order = append(g.order, u)
		return nil
	}

	for _, id := range SortedIDs(g.deps) {
		if visited[id] == 0 {
			if err := visit(id); err != nil {
				g.order = nil
				return err
			}
		}
	}
	return nil
}

func (g *Graph) buildCycleError(path []PackageID, dep PackageID) error {
	cyclePath := ""
	startIdx := slices.Index(path, dep)
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i].String() + " -> "
	}
	cyclePath += dep.String()
	return zerr.With(zerr.Wrap(ErrCycleDetected, "dependency cycle between packages"), "cycle", cyclePath)
}

// Walk yields packages with dependencies before dependents.
// It assumes Validate() has been called and returned nil.
func (g *Graph) Walk() iter.Seq[PackageID] {
	return func(yield func(PackageID) bool) {
		for _, id := range g.order {
			if !yield(id) {
				return
			}
		}
	}
}

// WalkReverse yields packages with dependents before dependencies.
// It assumes Validate() has been called and returned nil.
func (g *Graph) WalkReverse() iter.Seq[PackageID] {
	return func(yield func(PackageID) bool) {
		for i := len(g.order) - 1; i >= 0; i-- {
			if !yield(g.order[i]) {
				return
			}
		}
	}
}
