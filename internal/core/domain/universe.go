package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// Universe maps each package to its known descriptors, newest version first.
type Universe struct {
	packages map[PackageID][]*Descriptor
}

// NewUniverse creates an empty Universe.
func NewUniverse() *Universe {
	return &Universe{packages: make(map[PackageID][]*Descriptor)}
}

// Add inserts a descriptor. It fails if the same id and version is already present.
func (u *Universe) Add(d *Descriptor) error {
	versions := u.packages[d.ID]
	idx, found := slices.BinarySearchFunc(versions, d.Version, func(e *Descriptor, v Version) int {
		return v.Compare(e.Version)
	})
	if found {
		return zerr.With(zerr.With(zerr.Wrap(ErrDuplicateDescriptor, "descriptor already registered"),
			"package", d.ID.String()), "version", d.Version.String())
	}
	u.packages[d.ID] = slices.Insert(versions, idx, d)
	return nil
}

// Has reports whether the universe knows any version of id.
func (u *Universe) Has(id PackageID) bool {
	return len(u.packages[id]) > 0
}

// Versions returns the descriptors of id, newest first.
func (u *Universe) Versions(id PackageID) []*Descriptor {
	return u.packages[id]
}

// Lookup returns the descriptor of id at version v, or nil.
func (u *Universe) Lookup(id PackageID, v Version) *Descriptor {
	for _, d := range u.packages[id] {
		if d.Version.Equal(v) {
			return d
		}
	}
	return nil
}

// IDs returns every package id ordered by name.
func (u *Universe) IDs() []PackageID {
	return SortedIDs(u.packages)
}

// Len returns the number of packages.
func (u *Universe) Len() int {
	return len(u.packages)
}

// Size returns the number of descriptors.
func (u *Universe) Size() int {
	n := 0
	for _, versions := range u.packages {
		n += len(versions)
	}
	return n
}

// Filter returns a new universe holding the descriptors for which keep returns true.
// Packages left without descriptors are dropped.
func (u *Universe) Filter(keep func(*Descriptor) bool) *Universe {
	out := NewUniverse()
	for id, versions := range u.packages {
		var kept []*Descriptor
		for _, d := range versions {
			if keep(d) {
				kept = append(kept, d)
			}
		}
		if len(kept) > 0 {
			out.packages[id] = kept
		}
	}
	return out
}
