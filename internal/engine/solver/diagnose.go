package solver

import (
	"context"
	"slices"

	"go.trai.ch/pkgplan/internal/core/domain"
)

// diagnoseNodes bounds each feasibility check run while shrinking a conflict.
const diagnoseNodes = 20_000

// minimalConflict shrinks the hard goals of an infeasible problem to a subset that is
// still infeasible but becomes feasible when any single goal is dropped. A goal whose
// removal cannot be decided within the node budget is kept.
func minimalConflict(ctx context.Context, problem *domain.Problem) []domain.Goal {
	core := slices.Clone(problem.Hard)
	for i := 0; i < len(core); {
		trial := slices.Delete(slices.Clone(core), i, i+1)
		if ctx.Err() == nil && provenInfeasible(ctx, problem, trial) {
			core = trial
			continue
		}
		i++
	}
	return core
}

func provenInfeasible(ctx context.Context, problem *domain.Problem, hard []domain.Goal) bool {
	m, trivial := newModel(problem, hard, false)
	if trivial != nil {
		return true
	}
	out := newSearch(ctx, m, diagnoseNodes, true).run()
	return !out.found && out.exhausted
}
