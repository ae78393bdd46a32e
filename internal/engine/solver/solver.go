// Package solver searches constraint problems for the best consistent selection of package versions.
package solver

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/pkgplan/internal/core/domain"
	"go.trai.ch/pkgplan/internal/core/ports"
)

var (
	_ ports.Solver        = (*Exact)(nil)
	_ ports.Solver        = (*Greedy)(nil)
	_ ports.SolverFactory = (*Factory)(nil)
)

// Options bounds a search.
type Options struct {
	// Timeout preempts the search. Zero disables the timer.
	Timeout time.Duration
	// MaxNodes caps the number of explored search nodes. Zero means unbounded.
	MaxNodes int
}

// Exact runs branch-and-bound until optimality is proven or the budget runs out.
type Exact struct {
	opts Options
}

// NewExact creates an exact solver.
func NewExact(opts Options) *Exact {
	return &Exact{opts: opts}
}

// Solve implements ports.Solver.
func (s *Exact) Solve(ctx context.Context, problem *domain.Problem) (*domain.Solution, error) {
	return solve(ctx, problem, s.opts, false)
}

// Strategy implements ports.Solver.
func (s *Exact) Strategy() domain.Strategy {
	return domain.StrategyExact
}

// Greedy returns the first feasible assignment reached by the cheapest-first descent.
type Greedy struct {
	opts Options
}

// NewGreedy creates a greedy solver.
func NewGreedy(opts Options) *Greedy {
	return &Greedy{opts: opts}
}

// Solve implements ports.Solver.
func (s *Greedy) Solve(ctx context.Context, problem *domain.Problem) (*domain.Solution, error) {
	return solve(ctx, problem, s.opts, true)
}

// Strategy implements ports.Solver.
func (s *Greedy) Strategy() domain.Strategy {
	return domain.StrategyGreedy
}

// Factory builds solvers from settings.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// New implements ports.SolverFactory.
func (f *Factory) New(settings domain.SolverSettings) (ports.Solver, error) {
	strategy, err := domain.ParseStrategy(string(settings.Strategy))
	if err != nil {
		return nil, err
	}
	opts := Options{Timeout: settings.Timeout, MaxNodes: settings.MaxNodes}
	if strategy == domain.StrategyGreedy {
		return NewGreedy(opts), nil
	}
	return NewExact(opts), nil
}

func solve(ctx context.Context, problem *domain.Problem, opts Options, firstOnly bool) (*domain.Solution, error) {
	m, trivial := newModel(problem, problem.Hard, true)
	if trivial != nil {
		return nil, &domain.UnsatisfiableError{Goals: trivial, Proven: true}
	}

	w := startWorker(newSearch(ctx, m, opts.MaxNodes, firstOnly))

	var timeout <-chan time.Time
	if opts.Timeout > 0 {
		timer := time.NewTimer(opts.Timeout)
		defer timer.Stop()
		timeout = timer.C
	}
	select {
	case <-w.Done():
	case <-timeout:
	case <-ctx.Done():
	}
	out := w.Stop()

	if errors.Is(ctx.Err(), context.Canceled) {
		return nil, ctx.Err()
	}

	if !out.found {
		if out.exhausted {
			return nil, &domain.UnsatisfiableError{Goals: minimalConflict(ctx, problem), Proven: true}
		}
		return nil, &domain.UnsatisfiableError{Goals: problem.Hard, Proven: false}
	}

	sol := &domain.Solution{
		Selected: m.solution(out.assignment),
		Optimal:  out.exhausted,
		Cost:     out.cost,
		Nodes:    out.nodes,
	}
	if err := verify(problem, sol.Selected); err != nil {
		return nil, err
	}
	return sol, nil
}
