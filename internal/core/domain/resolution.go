package domain

import (
	"fmt"
	"strings"
)

// Resolution is the actionable outcome of a resolve call.
// Every affected package appears in exactly one of the five partitions.
type Resolution struct {
	// NewDownloads are selected packages that are neither installed nor cached locally.
	NewDownloads map[PackageID]Version
	// LocalInstalls are selected packages that are cached locally but not installed.
	LocalInstalls map[PackageID]Version
	// Upgrades are installed packages selected at another version.
	Upgrades map[PackageID]Version
	// Removals are installed packages that are no longer selected. Values are the installed versions.
	Removals map[PackageID]Version
	// Unchanged are installed packages selected at the installed version.
	Unchanged map[PackageID]Version

	// PreviousVersions holds the installed version of every upgraded package.
	PreviousVersions map[PackageID]Version
	// InstallOrder lists downloads, local installs and upgrades with dependencies first.
	InstallOrder []PackageID
	// RemoveOrder lists removals with dependents first.
	RemoveOrder []PackageID

	Validated        bool
	Optimal          bool
	Explanation      string
	ConflictingGoals []Goal
	proven           bool
}

// NewResolution creates a validated resolution with empty partitions.
func NewResolution(optimal bool) *Resolution {
	return &Resolution{
		NewDownloads:     make(map[PackageID]Version),
		LocalInstalls:    make(map[PackageID]Version),
		Upgrades:         make(map[PackageID]Version),
		Removals:         make(map[PackageID]Version),
		Unchanged:        make(map[PackageID]Version),
		PreviousVersions: make(map[PackageID]Version),
		Validated:        true,
		Optimal:          optimal,
	}
}

// NewFailedResolution creates the resolution reported for an unsatisfiable request.
func NewFailedResolution(cause *UnsatisfiableError) *Resolution {
	r := NewResolution(false)
	r.Validated = false
	r.ConflictingGoals = cause.Goals
	r.proven = cause.Proven

	var b strings.Builder
	if cause.Proven {
		b.WriteString("The request cannot be satisfied. Conflicting goals:")
	} else {
		b.WriteString("No solution was found within the search budget. Unresolved goals:")
	}
	for _, g := range cause.Goals {
		b.WriteString("\n  - ")
		b.WriteString(g.String())
	}
	r.Explanation = b.String()
	return r
}

// IsValidated reports whether a feasible assignment was found.
func (r *Resolution) IsValidated() bool {
	return r.Validated
}

// IsOptimal reports whether the assignment was proven optimal.
func (r *Resolution) IsOptimal() bool {
	return r.Optimal
}

// Err returns the unsatisfiable cause of a non validated resolution, or nil.
func (r *Resolution) Err() error {
	if r.Validated {
		return nil
	}
	return &UnsatisfiableError{Goals: r.ConflictingGoals, Proven: r.proven}
}

// IsEmpty reports whether the resolution requires no action.
func (r *Resolution) IsEmpty() bool {
	return len(r.NewDownloads) == 0 && len(r.LocalInstalls) == 0 &&
		len(r.Upgrades) == 0 && len(r.Removals) == 0
}

// Selected returns every package that ends up installed together with its version.
func (r *Resolution) Selected() map[PackageID]Version {
	out := make(map[PackageID]Version,
		len(r.NewDownloads)+len(r.LocalInstalls)+len(r.Upgrades)+len(r.Unchanged))
	for _, part := range []map[PackageID]Version{r.NewDownloads, r.LocalInstalls, r.Upgrades, r.Unchanged} {
		for id, v := range part {
			out[id] = v
		}
	}
	return out
}

// String renders a human readable summary.
func (r *Resolution) String() string {
	if !r.Validated {
		return r.Explanation
	}

	var b strings.Builder
	if r.Optimal {
		b.WriteString("Dependency resolution:\n")
	} else {
		b.WriteString("Dependency resolution (solution might not be optimal):\n")
	}
	writePartition(&b, "Packages to download", r.NewDownloads, nil)
	writePartition(&b, "Local packages to install", r.LocalInstalls, nil)
	writePartition(&b, "Local packages to upgrade", r.Upgrades, r.PreviousVersions)
	writePartition(&b, "Local packages to remove", r.Removals, nil)
	writePartition(&b, "Unchanged packages", r.Unchanged, nil)
	if r.IsEmpty() {
		b.WriteString("  Nothing to do.\n")
	}
	return b.String()
}

func writePartition(b *strings.Builder, title string, part, previous map[PackageID]Version) {
	if len(part) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s:\n", title)
	for _, id := range SortedIDs(part) {
		if prev, ok := previous[id]; ok {
			fmt.Fprintf(b, "    %s %s -> %s\n", id, prev, part[id])
			continue
		}
		fmt.Fprintf(b, "    %s %s\n", id, part[id])
	}
}
