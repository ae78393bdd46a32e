// Package catalog provides the package catalog read from YAML manifests.
package catalog

import (
	"maps"
	"slices"

	"go.trai.ch/pkgplan/internal/core/domain"
	"go.trai.ch/pkgplan/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Catalog = (*Catalog)(nil)

// Catalog is an immutable in-memory catalog. It is safe for concurrent readers.
type Catalog struct {
	packages  *domain.Universe
	installed map[domain.PackageID]domain.Version
	cached    map[domain.PackageID][]domain.Version
}

// New builds a catalog from descriptors, the installed snapshot and the locally cached versions.
// Installed and cached entries must reference known descriptors.
func New(
	descriptors []*domain.Descriptor,
	installed map[domain.PackageID]domain.Version,
	cached map[domain.PackageID][]domain.Version,
) (*Catalog, error) {
	c := &Catalog{
		packages:  domain.NewUniverse(),
		installed: make(map[domain.PackageID]domain.Version, len(installed)),
		cached:    make(map[domain.PackageID][]domain.Version, len(cached)),
	}
	for _, d := range descriptors {
		if err := c.packages.Add(d); err != nil {
			return nil, err
		}
	}

	for id, v := range installed {
		if c.packages.Lookup(id, v) == nil {
			return nil, unknownPackage("installed package not found in catalog", id, v)
		}
		c.installed[id] = v
	}
	for id, versions := range cached {
		for _, v := range versions {
			if c.packages.Lookup(id, v) == nil {
				return nil, unknownPackage("cached package not found in catalog", id, v)
			}
		}
		sorted := slices.SortedFunc(slices.Values(versions), func(a, b domain.Version) int {
			return b.Compare(a)
		})
		c.cached[id] = slices.CompactFunc(sorted, domain.Version.Equal)
	}
	return c, nil
}

func unknownPackage(msg string, id domain.PackageID, v domain.Version) error {
	return zerr.With(zerr.With(zerr.Wrap(domain.ErrUnknownInstalledPackage, msg),
		"package", id.String()), "version", v.String())
}

// ListKnownVersions returns every known descriptor of id, newest first.
// The returned slice must not be modified.
func (c *Catalog) ListKnownVersions(id domain.PackageID) []*domain.Descriptor {
	return c.packages.Versions(id)
}

// ListPackageIDs returns every known package id ordered by name.
func (c *Catalog) ListPackageIDs() []domain.PackageID {
	return c.packages.IDs()
}

// ListInstalled returns a copy of the installed snapshot.
func (c *Catalog) ListInstalled() map[domain.PackageID]domain.Version {
	return maps.Clone(c.installed)
}

// IsInstalled reports whether any version of id is installed.
func (c *Catalog) IsInstalled(id domain.PackageID) bool {
	_, ok := c.installed[id]
	return ok
}

// FindLocalVersions returns the installed and cached versions of id, newest first.
func (c *Catalog) FindLocalVersions(id domain.PackageID) []domain.Version {
	versions := slices.Clone(c.cached[id])
	if v, ok := c.installed[id]; ok && !slices.ContainsFunc(versions, v.Equal) {
		versions = append(versions, v)
		slices.SortFunc(versions, func(a, b domain.Version) int { return b.Compare(a) })
	}
	return versions
}

// IsLocallyCached reports whether version v of id is available without a download.
func (c *Catalog) IsLocallyCached(id domain.PackageID, v domain.Version) bool {
	if installed, ok := c.installed[id]; ok && installed.Equal(v) {
		return true
	}
	return slices.ContainsFunc(c.cached[id], v.Equal)
}

// Len returns the number of known packages.
func (c *Catalog) Len() int {
	return c.packages.Len()
}

// Size returns the number of known descriptors.
func (c *Catalog) Size() int {
	return c.packages.Size()
}
