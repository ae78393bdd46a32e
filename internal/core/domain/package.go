package domain

import (
	"slices"
	"strings"
)

// PackageID is the unique name of a package.
type PackageID = InternedString

// NewPackageID interns a package name.
func NewPackageID(name string) PackageID {
	return NewInternedString(name)
}

// ComparePackageIDs orders package ids by name.
func ComparePackageIDs(a, b PackageID) int {
	return strings.Compare(a.String(), b.String())
}

// SortedIDs returns the keys of m ordered by name.
func SortedIDs[V any](m map[PackageID]V) []PackageID {
	ids := make([]PackageID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, ComparePackageIDs)
	return ids
}

// Descriptor describes one version of a package.
type Descriptor struct {
	ID           PackageID
	Version      Version
	Dependencies []Constraint
	Conflicts    []Constraint
	// Platforms lists the compatible target platforms. Empty means every platform.
	Platforms []string
	Snapshot  bool
}

// Key renders the descriptor as "id-version".
func (d *Descriptor) Key() string {
	return FormatToken(d.ID, d.Version)
}

// IsSnapshot reports whether the descriptor is an unstable pre-release.
func (d *Descriptor) IsSnapshot() bool {
	return d.Snapshot || d.Version.IsSnapshot()
}

// SupportsPlatform reports whether the descriptor can be installed on platform.
// An empty platform matches every descriptor.
func (d *Descriptor) SupportsPlatform(platform string) bool {
	if platform == "" || len(d.Platforms) == 0 {
		return true
	}
	return slices.Contains(d.Platforms, platform)
}

// DependsOn reports whether d declares a dependency on id.
func (d *Descriptor) DependsOn(id PackageID) bool {
	return slices.ContainsFunc(d.Dependencies, func(c Constraint) bool { return c.Package == id })
}

// Excludes reports whether d declares a conflict matching o.
func (d *Descriptor) Excludes(o *Descriptor) bool {
	for _, c := range d.Conflicts {
		if c.Package == o.ID && c.Range.Contains(o.Version) {
			return true
		}
	}
	return false
}

// ConflictsWith reports whether d and o cannot be selected together.
// A conflict declared on either side is enough.
func (d *Descriptor) ConflictsWith(o *Descriptor) bool {
	return d.Excludes(o) || o.Excludes(d)
}
