package cache_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgplan/internal/adapters/cache"
	"go.trai.ch/pkgplan/internal/adapters/cas"
	"go.trai.ch/pkgplan/internal/core/domain"
	"go.trai.ch/pkgplan/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// newProblem builds a fresh problem with identical content on every call.
func newProblem(t *testing.T) *domain.Problem {
	t.Helper()
	u := domain.NewUniverse()
	for _, raw := range []string{"1.0", "2.0"} {
		require.NoError(t, u.Add(&domain.Descriptor{
			ID:      domain.NewPackageID("pkg-a"),
			Version: domain.MustParseVersion(raw),
		}))
	}
	return &domain.Problem{
		Universe:  u,
		Hard:      []domain.Goal{domain.InstallGoal(domain.NewPackageID("pkg-a"), domain.Any())},
		Installed: map[domain.PackageID]domain.Version{},
	}
}

func solutionFor(problem *domain.Problem, optimal bool) *domain.Solution {
	d := problem.Universe.Lookup(domain.NewPackageID("pkg-a"), domain.MustParseVersion("2.0"))
	return &domain.Solution{
		Selected: map[domain.PackageID]*domain.Descriptor{d.ID: d},
		Optimal:  optimal,
		Nodes:    3,
	}
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

func TestCache_MemoryHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockSolver(ctrl)
	inner.EXPECT().Strategy().Return(domain.StrategyExact).AnyTimes()
	inner.EXPECT().Solve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Problem) (*domain.Solution, error) {
			return solutionFor(p, true), nil
		}).Times(1)

	c := cache.New(cas.NewStore(), quietLogger(ctrl))
	solver := c.Wrap(inner, "")
	assert.Equal(t, domain.StrategyExact, solver.Strategy())

	first, err := solver.Solve(context.Background(), newProblem(t))
	require.NoError(t, err)

	second := newProblem(t)
	got, err := solver.Solve(context.Background(), second)
	require.NoError(t, err)

	assert.Equal(t, 1, c.Len())
	assert.True(t, got.Optimal)
	assert.Equal(t, first.Cost, got.Cost)
	v, ok := got.Version(domain.NewPackageID("pkg-a"))
	require.True(t, ok)
	assert.Equal(t, "2.0", v.String())
	// Restored descriptors belong to the caller's universe.
	assert.Same(t, second.Universe.Lookup(domain.NewPackageID("pkg-a"), v), got.Selected[domain.NewPackageID("pkg-a")])
}

func TestCache_InterruptedSolutionsAreNotKept(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockSolver(ctrl)
	inner.EXPECT().Strategy().Return(domain.StrategyExact).AnyTimes()
	inner.EXPECT().Solve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Problem) (*domain.Solution, error) {
			return solutionFor(p, false), nil
		}).Times(2)

	c := cache.New(cas.NewStore(), quietLogger(ctrl))
	solver := c.Wrap(inner, "")
	for range 2 {
		sol, err := solver.Solve(context.Background(), newProblem(t))
		require.NoError(t, err)
		assert.False(t, sol.Optimal)
	}
	assert.Equal(t, 0, c.Len())
}

func TestCache_ErrorsAreNotKept(t *testing.T) {
	ctrl := gomock.NewController(t)
	unsat := &domain.UnsatisfiableError{Proven: true}
	inner := mocks.NewMockSolver(ctrl)
	inner.EXPECT().Strategy().Return(domain.StrategyExact).AnyTimes()
	inner.EXPECT().Solve(gomock.Any(), gomock.Any()).Return(nil, unsat).Times(2)

	solver := cache.New(cas.NewStore(), quietLogger(ctrl)).Wrap(inner, "")
	for range 2 {
		_, err := solver.Solve(context.Background(), newProblem(t))
		require.ErrorIs(t, err, domain.ErrUnsatisfiable)
	}
}

func TestCache_DiskTierSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockSolver(ctrl)
	inner.EXPECT().Strategy().Return(domain.StrategyExact).AnyTimes()
	inner.EXPECT().Solve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Problem) (*domain.Solution, error) {
			return solutionFor(p, true), nil
		}).Times(1)

	_, err := cache.New(cas.NewStore(), quietLogger(ctrl)).Wrap(inner, dir).Solve(context.Background(), newProblem(t))
	require.NoError(t, err)

	restarted := cache.New(cas.NewStore(), quietLogger(ctrl))
	sol, err := restarted.Wrap(inner, dir).Solve(context.Background(), newProblem(t))
	require.NoError(t, err)
	assert.True(t, sol.Optimal)
	assert.Equal(t, 1, restarted.Len())
}

func TestCache_StrategyIsPartOfTheKey(t *testing.T) {
	problem := newProblem(t)
	assert.NotEqual(t, cache.Key(problem, domain.StrategyExact), cache.Key(problem, domain.StrategyGreedy))
	assert.Equal(t, cache.Key(problem, domain.StrategyExact), cache.Key(newProblem(t), domain.StrategyExact))
}

func TestCache_StoreFailuresFallBackToSolving(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSolutionStore(ctrl)
	store.EXPECT().Get("dir", gomock.Any()).Return(nil, domain.ErrStoreReadFailed)
	store.EXPECT().Put("dir", gomock.Any(), gomock.Any()).Return(domain.ErrStoreWriteFailed)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(2)

	inner := mocks.NewMockSolver(ctrl)
	inner.EXPECT().Strategy().Return(domain.StrategyExact).AnyTimes()
	inner.EXPECT().Solve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Problem) (*domain.Solution, error) {
			return solutionFor(p, true), nil
		})

	sol, err := cache.New(store, log).Wrap(inner, "dir").Solve(context.Background(), newProblem(t))
	require.NoError(t, err)
	assert.True(t, sol.Optimal)
}

func TestCache_ConcurrentSolvesShareOneSearch(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gate := make(chan struct{})
		inner := mocks.NewMockSolver(ctrl)
		inner.EXPECT().Strategy().Return(domain.StrategyExact).AnyTimes()
		inner.EXPECT().Solve(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *domain.Problem) (*domain.Solution, error) {
				<-gate
				return solutionFor(p, true), nil
			}).Times(1)

		solver := cache.New(cas.NewStore(), quietLogger(ctrl)).Wrap(inner, "")

		const callers = 4
		var wg sync.WaitGroup
		errs := make([]error, callers)
		for i := range callers {
			problem := newProblem(t)
			wg.Go(func() {
				_, errs[i] = solver.Solve(context.Background(), problem)
			})
		}

		synctest.Wait()
		close(gate)
		wg.Wait()

		assert.NoError(t, errors.Join(errs...))
	})
}

func TestCache_CanceledCallerDoesNotFailOthers(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gate := make(chan struct{})
		inner := mocks.NewMockSolver(ctrl)
		inner.EXPECT().Strategy().Return(domain.StrategyExact).AnyTimes()
		inner.EXPECT().Solve(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, p *domain.Problem) (*domain.Solution, error) {
				<-gate
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				return solutionFor(p, true), nil
			}).Times(1)

		solver := cache.New(cas.NewStore(), quietLogger(ctrl)).Wrap(inner, "")

		firstProblem, secondProblem := newProblem(t), newProblem(t)
		firstCtx, cancel := context.WithCancel(context.Background())
		firstDone := make(chan error, 1)
		go func() {
			_, err := solver.Solve(firstCtx, firstProblem)
			firstDone <- err
		}()
		synctest.Wait()

		type result struct {
			sol *domain.Solution
			err error
		}
		secondDone := make(chan result, 1)
		go func() {
			sol, err := solver.Solve(context.Background(), secondProblem)
			secondDone <- result{sol: sol, err: err}
		}()
		synctest.Wait()

		cancel()
		require.ErrorIs(t, <-firstDone, context.Canceled)

		close(gate)
		second := <-secondDone
		require.NoError(t, second.err)
		assert.True(t, second.sol.Optimal)
	})
}
