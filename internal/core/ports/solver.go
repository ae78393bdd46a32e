package ports

import (
	"context"

	"go.trai.ch/pkgplan/internal/core/domain"
)

// Solver searches a problem for the best consistent selection of package versions.
//
//go:generate go run go.uber.org/mock/mockgen -source=solver.go -destination=mocks/mock_solver.go -package=mocks
type Solver interface {
	// Solve returns the best selection found. It returns a *domain.UnsatisfiableError
	// when no selection satisfies the hard goals.
	Solve(ctx context.Context, problem *domain.Problem) (*domain.Solution, error)
	// Strategy names the search strategy.
	Strategy() domain.Strategy
}

// SolverFactory builds solvers from settings.
type SolverFactory interface {
	// New returns a solver configured by settings.
	New(settings domain.SolverSettings) (Solver, error)
}

// SolutionCache memoizes solutions of identical problems.
type SolutionCache interface {
	// Wrap returns a solver that consults the cache before delegating to inner.
	// A non-empty dir enables the on-disk tier rooted at dir.
	Wrap(inner Solver, dir string) Solver
}
