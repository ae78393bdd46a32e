package solver

import (
	"cmp"
	"slices"

	"go.trai.ch/pkgplan/internal/core/domain"
)

// valueRef addresses value a of variable v.
type valueRef struct {
	v, a int
}

// requirement is one dependency of a candidate: the target variable and the
// target values that satisfy it. The "unselected" value never satisfies it.
type requirement struct {
	target  int
	allowed []bool
}

// dependent points back from a target variable to the requirement that uses it.
type dependent struct {
	ref valueRef
	req int
}

// variable is the decision for one package: which candidate is selected, or none.
// Values 0..len(cands)-1 are candidates (newest first), value len(cands) is "unselected".
type variable struct {
	id    domain.PackageID
	cands []*domain.Descriptor
	rank  int // position in the static variable order

	cost      []domain.Cost
	byCost    []int // values ordered cheapest first
	requires  [][]requirement
	conflicts [][]valueRef
	// dependents are the candidate values of other variables that require this one.
	dependents []dependent
	// initial marks values that survive the goals and static checks.
	initial []bool
}

func (x *variable) none() int {
	return len(x.cands)
}

func (x *variable) values() int {
	return len(x.cands) + 1
}

type model struct {
	vars  []*variable
	index map[domain.PackageID]int
}

// newModel encodes problem with the given hard goals. Soft goals shape the cost only
// when withSoft is set. It returns the goals that cannot hold on their own; those make
// any search pointless.
func newModel(problem *domain.Problem, hard []domain.Goal, withSoft bool) (*model, []domain.Goal) {
	ids := problem.Universe.IDs()
	m := &model{
		vars:  make([]*variable, len(ids)),
		index: make(map[domain.PackageID]int, len(ids)),
	}
	for i, id := range ids {
		cands := problem.Universe.Versions(id)
		x := &variable{
			id:        id,
			cands:     cands,
			requires:  make([][]requirement, len(cands)),
			conflicts: make([][]valueRef, len(cands)+1),
			initial:   make([]bool, len(cands)+1),
			cost:      make([]domain.Cost, len(cands)+1),
		}
		for a := range x.initial {
			x.initial[a] = true
		}
		m.vars[i] = x
		m.index[id] = i
	}

	m.rankVariables()
	m.linkDependencies()
	m.linkConflicts()

	trivial := m.applyGoals(hard)
	m.computeCosts(problem, hard, withSoft)
	return m, trivial
}

// rankVariables orders variables by descending number of known versions, then by name.
func (m *model) rankVariables() {
	order := make([]int, len(m.vars))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		if c := cmp.Compare(len(m.vars[b].cands), len(m.vars[a].cands)); c != 0 {
			return c
		}
		return domain.ComparePackageIDs(m.vars[a].id, m.vars[b].id)
	})
	for rank, v := range order {
		m.vars[v].rank = rank
	}
}

func (m *model) linkDependencies() {
	for v, x := range m.vars {
		for a, d := range x.cands {
			for _, dep := range d.Dependencies {
				t, ok := m.index[dep.Package]
				if !ok {
					x.initial[a] = false
					continue
				}
				target := m.vars[t]
				allowed := make([]bool, target.values())
				satisfiable := false
				for b, cand := range target.cands {
					if dep.Range.Contains(cand.Version) {
						allowed[b] = true
						satisfiable = true
					}
				}
				if !satisfiable {
					x.initial[a] = false
					continue
				}
				x.requires[a] = append(x.requires[a], requirement{target: t, allowed: allowed})
				target.dependents = append(target.dependents, dependent{
					ref: valueRef{v: v, a: a},
					req: len(x.requires[a]) - 1,
				})
			}
		}
	}
}

func (m *model) linkConflicts() {
	for v, x := range m.vars {
		for a, d := range x.cands {
			for _, c := range d.Conflicts {
				t, ok := m.index[c.Package]
				if !ok || t == v {
					continue
				}
				for b, other := range m.vars[t].cands {
					if c.Range.Contains(other.Version) {
						x.conflicts[a] = append(x.conflicts[a], valueRef{v: t, a: b})
						m.vars[t].conflicts[b] = append(m.vars[t].conflicts[b], valueRef{v: v, a: a})
					}
				}
			}
		}
	}
}

// applyGoals restricts the initial domains. A goal that empties a domain on its own is returned.
func (m *model) applyGoals(hard []domain.Goal) []domain.Goal {
	for _, g := range hard {
		v, ok := m.index[g.Package]
		if !ok {
			if g.Kind == domain.MustInstall {
				return []domain.Goal{g}
			}
			continue
		}
		x := m.vars[v]
		switch g.Kind {
		case domain.MustInstall:
			x.initial[x.none()] = false
			inRange := false
			for b, cand := range x.cands {
				if g.Range.Contains(cand.Version) {
					inRange = true
				} else {
					x.initial[b] = false
				}
			}
			if !inRange {
				return []domain.Goal{g}
			}
		case domain.MustExclude:
			for b, cand := range x.cands {
				if g.Range.Contains(cand.Version) {
					x.initial[b] = false
				}
			}
		}
	}
	return nil
}

func (m *model) computeCosts(problem *domain.Problem, hard []domain.Goal, withSoft bool) {
	goal := make(map[domain.PackageID]bool)
	for _, g := range hard {
		if g.Kind == domain.MustInstall {
			goal[g.Package] = true
		}
	}
	soft := make(map[domain.PackageID]bool)
	if withSoft {
		for _, g := range problem.Soft {
			soft[g.Package] = true
		}
	}

	for _, x := range m.vars {
		installed, isInstalled := problem.Installed[x.id]
		if soft[x.id] {
			x.cost[x.none()][domain.CostChurn] = 1
		}
		for a, cand := range x.cands {
			c := &x.cost[a]
			if !isInstalled {
				c[domain.CostNew] = 1
			} else if !cand.Version.Equal(installed) {
				c[domain.CostDrift] = 1
			}
			if goal[x.id] {
				c[domain.CostGoalRecency] = a
			} else {
				c[domain.CostRecency] = a
				if !soft[x.id] {
					c[domain.CostExtra] = 1
				}
			}
		}

		x.byCost = make([]int, x.values())
		for a := range x.byCost {
			x.byCost[a] = a
		}
		slices.SortStableFunc(x.byCost, func(a, b int) int {
			switch {
			case x.cost[a].Less(x.cost[b]):
				return -1
			case x.cost[b].Less(x.cost[a]):
				return 1
			default:
				return 0
			}
		})
	}
}

// solution converts an assignment into a domain solution.
func (m *model) solution(assignment []int) map[domain.PackageID]*domain.Descriptor {
	selected := make(map[domain.PackageID]*domain.Descriptor)
	for v, a := range assignment {
		x := m.vars[v]
		if a != x.none() {
			selected[x.id] = x.cands[a]
		}
	}
	return selected
}
