// Package translator turns a request and a catalog into a constraint problem.
package translator

import (
	"context"
	"slices"

	"go.trai.ch/pkgplan/internal/core/domain"
	"go.trai.ch/pkgplan/internal/core/ports"
	"go.trai.ch/zerr"
)

// Translator builds constraint problems. It holds no state between calls.
type Translator struct{}

// New creates a new Translator.
func New() *Translator {
	return &Translator{}
}

// Translate resolves the request tokens against catalog and returns the filtered
// universe together with the hard goals and soft preferences.
func (t *Translator) Translate(ctx context.Context, catalog ports.Catalog, req domain.Request) (*domain.Problem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b := &problemBuilder{
		catalog:   catalog,
		req:       req,
		installed: catalog.ListInstalled(),
		pinned:    make(map[domain.PackageID][]domain.Version),
		mentioned: make(map[domain.PackageID]bool),
		versions:  make(map[domain.PackageID][]*domain.Descriptor),
	}

	install, err := b.parseTokens(slices.Concat(req.Install, req.Upgrade))
	if err != nil {
		return nil, err
	}
	remove, err := b.parseTokens(req.Remove)
	if err != nil {
		return nil, err
	}

	if err := b.checkPlatform(install); err != nil {
		return nil, err
	}

	universe := b.reachableUniverse(install, remove)

	problem := &domain.Problem{
		Universe:  universe,
		Installed: b.installed,
	}
	for _, tok := range install {
		problem.Hard = append(problem.Hard, b.installGoal(tok, universe))
	}
	for _, tok := range remove {
		g := domain.ExcludeGoal(tok.ID(), domain.Any())
		if tok.IsPinned() {
			g.Range = domain.Exact(tok.Version)
		}
		g.Token = tok.Raw
		problem.Hard = append(problem.Hard, g)
	}
	if req.Keep {
		for _, id := range domain.SortedIDs(b.installed) {
			if !b.mentioned[id] {
				problem.Soft = append(problem.Soft, domain.KeepGoal(id, b.installed[id]))
			}
		}
	}
	return problem, nil
}

type problemBuilder struct {
	catalog   ports.Catalog
	req       domain.Request
	installed map[domain.PackageID]domain.Version
	pinned    map[domain.PackageID][]domain.Version
	mentioned map[domain.PackageID]bool
	versions  map[domain.PackageID][]*domain.Descriptor
}

func (b *problemBuilder) known(name string) bool {
	return len(b.knownVersions(domain.NewPackageID(name))) > 0
}

func (b *problemBuilder) knownVersions(id domain.PackageID) []*domain.Descriptor {
	versions, ok := b.versions[id]
	if !ok {
		versions = b.catalog.ListKnownVersions(id)
		b.versions[id] = versions
	}
	return versions
}

func (b *problemBuilder) parseTokens(raw []string) ([]domain.Token, error) {
	tokens := make([]domain.Token, 0, len(raw))
	for _, r := range raw {
		tok, err := domain.ParseToken(r, b.known)
		if err != nil {
			return nil, zerr.With(err, "token", r)
		}
		id := tok.ID()
		b.mentioned[id] = true
		if tok.IsPinned() {
			b.pinned[id] = append(b.pinned[id], tok.Version)
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// checkPlatform fails when a package to install is known but has no descriptor for the
// target platform. Removals need no compatible descriptor.
func (b *problemBuilder) checkPlatform(install []domain.Token) error {
	for _, tok := range install {
		id := tok.ID()
		versions := b.knownVersions(id)
		if len(versions) == 0 {
			continue
		}
		if !slices.ContainsFunc(versions, func(d *domain.Descriptor) bool {
			return d.SupportsPlatform(b.req.TargetPlatform)
		}) {
			return zerr.With(zerr.With(zerr.Wrap(domain.ErrUnknownTargetPlatform, "package not available for platform"),
				"package", id.String()), "platform", b.req.TargetPlatform)
		}
	}
	return nil
}

// accept reports whether d survives platform and snapshot filtering.
// Installed and explicitly pinned versions are exempt from the snapshot filter.
func (b *problemBuilder) accept(d *domain.Descriptor) bool {
	if !d.SupportsPlatform(b.req.TargetPlatform) {
		return false
	}
	if b.req.AllowSnapshot || !d.IsSnapshot() {
		return true
	}
	if v, ok := b.installed[d.ID]; ok && v.Equal(d.Version) {
		return true
	}
	return slices.ContainsFunc(b.pinned[d.ID], d.Version.Equal)
}

// reachableUniverse collects the filtered descriptors of every package reachable through
// dependency edges from the requested and installed packages. Packages outside this set
// can never be required, so they are left out of the search.
func (b *problemBuilder) reachableUniverse(install, remove []domain.Token) *domain.Universe {
	universe := domain.NewUniverse()
	seen := make(map[domain.PackageID]bool)
	var queue []domain.PackageID

	enqueue := func(id domain.PackageID) {
		if !seen[id] {
			seen[id] = true
			queue = append(queue, id)
		}
	}
	for _, tok := range slices.Concat(install, remove) {
		enqueue(tok.ID())
	}
	for _, id := range domain.SortedIDs(b.installed) {
		enqueue(id)
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, d := range b.knownVersions(id) {
			if !b.accept(d) {
				continue
			}
			// Catalogs reject duplicates, so Add cannot fail here.
			_ = universe.Add(d)
			for _, dep := range d.Dependencies {
				enqueue(dep.Package)
			}
		}
	}
	return universe
}

// installGoal builds the MustInstall goal of an install or upgrade token.
// A bare token for an installed package asks for a newer version, or keeps the
// installed one when nothing newer is available.
func (b *problemBuilder) installGoal(tok domain.Token, universe *domain.Universe) domain.Goal {
	id := tok.ID()
	g := domain.InstallGoal(id, domain.Any())
	g.Token = tok.Raw

	switch {
	case tok.IsPinned():
		g.Range = domain.Exact(tok.Version)
	default:
		current, installed := b.installed[id]
		if !installed {
			break
		}
		newer := slices.ContainsFunc(universe.Versions(id), func(d *domain.Descriptor) bool {
			return current.Less(d.Version)
		})
		if newer {
			g.Range = domain.Above(current)
		} else {
			g.Range = domain.AtLeast(current)
		}
	}
	return g
}
