// Package builder classifies a solver selection into an actionable resolution.
package builder

import (
	"context"
	"errors"

	"go.trai.ch/pkgplan/internal/core/domain"
	"go.trai.ch/pkgplan/internal/core/ports"
)

// Builder turns solutions into resolutions.
type Builder struct{}

// New creates a new Builder.
func New() *Builder {
	return &Builder{}
}

// Build classifies every package that is selected or currently installed.
func (b *Builder) Build(
	ctx context.Context,
	catalog ports.Catalog,
	problem *domain.Problem,
	solution *domain.Solution,
) (*domain.Resolution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := domain.NewResolution(solution.Optimal)
	for id, d := range solution.Selected {
		installed, ok := problem.Installed[id]
		switch {
		case ok && installed.Equal(d.Version):
			r.Unchanged[id] = d.Version
		case ok:
			r.Upgrades[id] = d.Version
			r.PreviousVersions[id] = installed
		case catalog.IsLocallyCached(id, d.Version):
			r.LocalInstalls[id] = d.Version
		default:
			r.NewDownloads[id] = d.Version
		}
	}
	for id, v := range problem.Installed {
		if _, ok := solution.Selected[id]; !ok {
			r.Removals[id] = v
		}
	}

	r.InstallOrder = installOrder(r, solution)
	r.RemoveOrder = removeOrder(r, catalog)
	return r, nil
}

// BuildFailure reports an unsatisfiable problem as a non validated resolution.
// Any other error is returned as is.
func (b *Builder) BuildFailure(err error) (*domain.Resolution, error) {
	var unsat *domain.UnsatisfiableError
	if !errors.As(err, &unsat) {
		return nil, err
	}
	return domain.NewFailedResolution(unsat), nil
}

// installOrder lists the packages to download, install or upgrade, dependencies first.
func installOrder(r *domain.Resolution, solution *domain.Solution) []domain.PackageID {
	changed := make(map[domain.PackageID]bool)
	for _, part := range []map[domain.PackageID]domain.Version{r.NewDownloads, r.LocalInstalls, r.Upgrades} {
		for id := range part {
			changed[id] = true
		}
	}

	g := domain.NewGraph()
	for id := range changed {
		var deps []domain.PackageID
		for _, c := range solution.Selected[id].Dependencies {
			if changed[c.Package] {
				deps = append(deps, c.Package)
			}
		}
		g.AddPackage(id, deps...)
	}
	return ordered(g, changed, false)
}

// removeOrder lists removals with dependents before their dependencies.
func removeOrder(r *domain.Resolution, catalog ports.Catalog) []domain.PackageID {
	removed := make(map[domain.PackageID]bool, len(r.Removals))
	for id := range r.Removals {
		removed[id] = true
	}

	g := domain.NewGraph()
	for id, v := range r.Removals {
		var deps []domain.PackageID
		for _, d := range catalog.ListKnownVersions(id) {
			if !d.Version.Equal(v) {
				continue
			}
			for _, c := range d.Dependencies {
				if removed[c.Package] {
					deps = append(deps, c.Package)
				}
			}
		}
		g.AddPackage(id, deps...)
	}
	return ordered(g, removed, true)
}

// ordered walks g topologically. A dependency cycle falls back to name order.
func ordered(g *domain.Graph, members map[domain.PackageID]bool, reverse bool) []domain.PackageID {
	if err := g.Validate(); err != nil {
		return domain.SortedIDs(members)
	}
	walk := g.Walk()
	if reverse {
		walk = g.WalkReverse()
	}
	order := make([]domain.PackageID, 0, g.Len())
	for id := range walk {
		order = append(order, id)
	}
	return order
}
