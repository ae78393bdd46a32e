package domain

import (
	"strings"
)

// Cost criteria, most significant first.
const (
	// CostChurn counts kept packages that become unselected.
	CostChurn = iota
	// CostNew counts selected packages that are not installed.
	CostNew
	// CostGoalRecency sums the version rank of packages named by install goals.
	CostGoalRecency
	// CostDrift counts installed packages selected at another version.
	CostDrift
	// CostExtra counts selected packages no goal or preference asked for.
	CostExtra
	// CostRecency sums the version rank of every other selected package.
	CostRecency

	// CostCriteria is the number of criteria.
	CostCriteria
)

// Cost is a lexicographic objective vector. Smaller is better.
type Cost [CostCriteria]int

// Less reports whether c is strictly better than o.
func (c Cost) Less(o Cost) bool {
	for i := range c {
		if c[i] != o[i] {
			return c[i] < o[i]
		}
	}
	return false
}

// Add returns the component-wise sum.
func (c Cost) Add(o Cost) Cost {
	for i := range c {
		c[i] += o[i]
	}
	return c
}

// Solution is the selection produced by the solver.
type Solution struct {
	Selected map[PackageID]*Descriptor
	Optimal  bool
	Cost     Cost
	Nodes    int
}

// Version returns the selected version of id and whether it is selected.
func (s *Solution) Version(id PackageID) (Version, bool) {
	d, ok := s.Selected[id]
	if !ok {
		return Version{}, false
	}
	return d.Version, true
}

// UnsatisfiableError reports the hard goals that cannot hold together.
type UnsatisfiableError struct {
	Goals []Goal
	// Proven is false when the search ran out of budget before finding any assignment.
	Proven bool
}

// Error implements error.
func (e *UnsatisfiableError) Error() string {
	var b strings.Builder
	b.WriteString(ErrUnsatisfiable.Error())
	if !e.Proven {
		b.WriteString(" (no assignment found within the search budget)")
	}
	if len(e.Goals) > 0 {
		b.WriteString(": ")
		for i, g := range e.Goals {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(g.String())
		}
	}
	return b.String()
}

// Unwrap returns ErrUnsatisfiable.
func (e *UnsatisfiableError) Unwrap() error {
	return ErrUnsatisfiable
}

// SolutionRecord is the persisted form of a Solution.
type SolutionRecord struct {
	Selected map[string]string `json:"selected"`
	Optimal  bool              `json:"optimal"`
	Cost     Cost              `json:"cost"`
	Nodes    int               `json:"nodes"`
}

// NewSolutionRecord converts a solution into its persisted form.
func NewSolutionRecord(s *Solution) SolutionRecord {
	rec := SolutionRecord{
		Selected: make(map[string]string, len(s.Selected)),
		Optimal:  s.Optimal,
		Cost:     s.Cost,
		Nodes:    s.Nodes,
	}
	for id, d := range s.Selected {
		rec.Selected[id.String()] = d.Version.String()
	}
	return rec
}

// Restore rebuilds a solution against u. It returns false if a recorded
// descriptor is no longer part of the universe.
func (r SolutionRecord) Restore(u *Universe) (*Solution, bool) {
	sol := &Solution{
		Selected: make(map[PackageID]*Descriptor, len(r.Selected)),
		Optimal:  r.Optimal,
		Cost:     r.Cost,
		Nodes:    r.Nodes,
	}
	for name, raw := range r.Selected {
		v, err := ParseVersion(raw)
		if err != nil {
			return nil, false
		}
		d := u.Lookup(NewPackageID(name), v)
		if d == nil {
			return nil, false
		}
		sol.Selected[d.ID] = d
	}
	return sol, true
}
