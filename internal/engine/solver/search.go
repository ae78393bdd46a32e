package solver

import (
	"context"
	"sync/atomic"

	"go.trai.ch/pkgplan/internal/core/domain"
)

const ctxCheckInterval = 128

type trailEntry struct {
	v, a   int
	assign bool
}

// outcome is what a search hands back when it returns or is stopped.
type outcome struct {
	// assignment is the best complete assignment found, valid when found is set.
	assignment []int
	found      bool
	cost       domain.Cost
	nodes      int
	// exhausted is set when the whole search tree was explored.
	exhausted bool
}

// search is a depth-first branch-and-bound over the model with forward checking.
// It is used by a single goroutine.
type search struct {
	ctx       context.Context
	m         *model
	maxNodes  int
	firstOnly bool
	stop      *atomic.Bool

	alive    [][]bool
	size     []int
	assigned []int
	trail    []trailEntry
	queue    []int
	queued   []bool

	best     []int
	bestCost domain.Cost
	found    bool
	nodes    int
	halted   bool
}

func newSearch(ctx context.Context, m *model, maxNodes int, firstOnly bool) *search {
	s := &search{
		ctx:       ctx,
		m:         m,
		maxNodes:  maxNodes,
		firstOnly: firstOnly,
		stop:      new(atomic.Bool),
		alive:     make([][]bool, len(m.vars)),
		size:      make([]int, len(m.vars)),
		assigned:  make([]int, len(m.vars)),
		queued:    make([]bool, len(m.vars)),
	}
	for v, x := range m.vars {
		s.alive[v] = make([]bool, x.values())
		for a, ok := range x.initial {
			if ok {
				s.alive[v][a] = true
				s.size[v]++
			}
		}
		s.assigned[v] = -1
	}
	return s
}

// run explores the search tree until it is exhausted, the first solution is found
// in firstOnly mode, or the search is halted by the budget, the stop flag, or the context.
func (s *search) run() outcome {
	for v := range s.m.vars {
		s.enqueue(v)
	}
	if s.propagate() {
		s.dfs()
	}
	return outcome{
		assignment: s.best,
		found:      s.found,
		cost:       s.bestCost,
		nodes:      s.nodes,
		exhausted:  !s.halted,
	}
}

func (s *search) dfs() {
	if s.shouldHalt() {
		return
	}
	s.nodes++

	v := s.pickVariable()
	if v < 0 {
		s.record()
		return
	}
	if s.pruned() {
		return
	}

	for _, a := range s.m.vars[v].byCost {
		if !s.alive[v][a] {
			continue
		}
		mark := len(s.trail)
		if s.assign(v, a) && s.propagate() && !s.pruned() {
			s.dfs()
		}
		s.undo(mark)
		if s.halted {
			return
		}
	}
}

func (s *search) shouldHalt() bool {
	if s.halted {
		return true
	}
	switch {
	case s.stop.Load():
		s.halted = true
	case s.maxNodes > 0 && s.nodes >= s.maxNodes:
		s.halted = true
	case s.nodes%ctxCheckInterval == 0 && s.ctx.Err() != nil:
		s.halted = true
	}
	return s.halted
}

// pickVariable returns the unassigned variable with the smallest domain, ties broken
// by the static order. It returns -1 when every variable is assigned.
func (s *search) pickVariable() int {
	pick := -1
	for v, x := range s.m.vars {
		if s.assigned[v] >= 0 {
			continue
		}
		if pick < 0 || s.size[v] < s.size[pick] ||
			(s.size[v] == s.size[pick] && x.rank < s.m.vars[pick].rank) {
			pick = v
		}
	}
	return pick
}

// bound is an admissible lower bound on the cost of any completion of the current node.
// Lexicographic order is compatible with addition, so per-variable minima add up to a bound.
func (s *search) bound() domain.Cost {
	var total domain.Cost
	for v, x := range s.m.vars {
		if a := s.assigned[v]; a >= 0 {
			total = total.Add(x.cost[a])
			continue
		}
		for _, a := range x.byCost {
			if s.alive[v][a] {
				total = total.Add(x.cost[a])
				break
			}
		}
	}
	return total
}

// pruned reports whether the current node cannot improve on the incumbent.
func (s *search) pruned() bool {
	return s.found && !s.bound().Less(s.bestCost)
}

func (s *search) record() {
	var cost domain.Cost
	for v, a := range s.assigned {
		cost = cost.Add(s.m.vars[v].cost[a])
	}
	if !s.found || cost.Less(s.bestCost) {
		s.best = append(s.best[:0], s.assigned...)
		s.bestCost = cost
		s.found = true
	}
	if s.firstOnly {
		s.halted = true
	}
}

func (s *search) enqueue(v int) {
	if !s.queued[v] {
		s.queued[v] = true
		s.queue = append(s.queue, v)
	}
}

func (s *search) clearQueue() {
	for _, v := range s.queue {
		s.queued[v] = false
	}
	s.queue = s.queue[:0]
}

// remove deletes value a from the domain of v. It returns false on a domain wipeout.
func (s *search) remove(v, a int) bool {
	if !s.alive[v][a] {
		return true
	}
	s.alive[v][a] = false
	s.size[v]--
	s.trail = append(s.trail, trailEntry{v: v, a: a})
	s.enqueue(v)
	return s.size[v] > 0
}

// assign fixes v to a and applies the direct consequences of selecting a.
func (s *search) assign(v, a int) bool {
	if !s.alive[v][a] {
		return false
	}
	s.assigned[v] = a
	s.trail = append(s.trail, trailEntry{v: v, assign: true})

	x := s.m.vars[v]
	for b := range s.alive[v] {
		if b != a {
			s.remove(v, b)
		}
	}
	if a == x.none() {
		return true
	}
	for _, req := range x.requires[a] {
		for b, ok := range req.allowed {
			if !ok && !s.remove(req.target, b) {
				return false
			}
		}
	}
	for _, ref := range x.conflicts[a] {
		if !s.remove(ref.v, ref.a) {
			return false
		}
	}
	return true
}

// propagate runs unit propagation and dependency support checks until fixpoint.
func (s *search) propagate() bool {
	for len(s.queue) > 0 {
		w := s.queue[0]
		s.queue = s.queue[1:]
		s.queued[w] = false

		if s.size[w] == 0 {
			s.clearQueue()
			return false
		}
		if s.assigned[w] < 0 && s.size[w] == 1 {
			if !s.assign(w, s.only(w)) {
				s.clearQueue()
				return false
			}
		}
		for _, dep := range s.m.vars[w].dependents {
			u, c := dep.ref.v, dep.ref.a
			if !s.alive[u][c] || s.supported(w, s.m.vars[u].requires[c][dep.req]) {
				continue
			}
			if !s.remove(u, c) {
				s.clearQueue()
				return false
			}
		}
	}
	return true
}

func (s *search) only(v int) int {
	for a, ok := range s.alive[v] {
		if ok {
			return a
		}
	}
	return -1
}

func (s *search) supported(target int, req requirement) bool {
	for b, ok := range req.allowed {
		if ok && s.alive[target][b] {
			return true
		}
	}
	return false
}

func (s *search) undo(mark int) {
	for len(s.trail) > mark {
		e := s.trail[len(s.trail)-1]
		s.trail = s.trail[:len(s.trail)-1]
		if e.assign {
			s.assigned[e.v] = -1
			continue
		}
		s.alive[e.v][e.a] = true
		s.size[e.v]++
	}
	s.clearQueue()
}
