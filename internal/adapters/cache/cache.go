// Package cache memoizes solver results keyed by problem fingerprint.
package cache

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/pkgplan/internal/core/domain"
	"go.trai.ch/pkgplan/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

var (
	_ ports.SolutionCache = (*Cache)(nil)
	_ ports.Solver        = (*cachedSolver)(nil)
)

// Cache holds proven-optimal solutions in memory and, when a directory is given,
// in a SolutionStore. Concurrent solves of the same problem share one search.
type Cache struct {
	store  ports.SolutionStore
	logger ports.Logger

	mu      sync.RWMutex
	entries map[string]domain.SolutionRecord

	requestGroup singleflight.Group
}

// New creates a new Cache.
func New(store ports.SolutionStore, logger ports.Logger) *Cache {
	return &Cache{
		store:   store,
		logger:  logger,
		entries: make(map[string]domain.SolutionRecord),
	}
}

// Wrap implements ports.SolutionCache.
func (c *Cache) Wrap(inner ports.Solver, dir string) ports.Solver {
	return &cachedSolver{cache: c, inner: inner, dir: dir}
}

// Len returns the number of solutions held in memory.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) lookup(key, dir string) (domain.SolutionRecord, bool) {
	c.mu.RLock()
	rec, ok := c.entries[key]
	c.mu.RUnlock()
	if ok || dir == "" {
		return rec, ok
	}

	stored, err := c.store.Get(dir, key)
	if err != nil {
		c.logger.Warn(fmt.Sprintf("ignoring cached solution: %v", err))
		return domain.SolutionRecord{}, false
	}
	if stored == nil || !stored.Optimal {
		return domain.SolutionRecord{}, false
	}

	c.mu.Lock()
	c.entries[key] = *stored
	c.mu.Unlock()
	return *stored, true
}

func (c *Cache) remember(key, dir string, rec domain.SolutionRecord) {
	c.mu.Lock()
	c.entries[key] = rec
	c.mu.Unlock()

	if dir == "" {
		return
	}
	if err := c.store.Put(dir, key, rec); err != nil {
		c.logger.Warn(fmt.Sprintf("failed to persist solution: %v", err))
	}
}

type cachedSolver struct {
	cache *Cache
	inner ports.Solver
	dir   string
}

func (s *cachedSolver) Strategy() domain.Strategy {
	return s.inner.Strategy()
}

// Solve returns the remembered solution of an identical problem, or runs the
// inner solver and remembers its result when it is proven optimal.
// A shared search is detached from the caller that started it: each caller
// stops waiting when its own context ends, and the search itself is bounded by
// the solver budget.
func (s *cachedSolver) Solve(ctx context.Context, problem *domain.Problem) (*domain.Solution, error) {
	key := Key(problem, s.inner.Strategy())

	if rec, ok := s.cache.lookup(key, s.dir); ok {
		if sol, ok := rec.Restore(problem.Universe); ok {
			s.cache.logger.Debug("solution cache hit " + key)
			return sol, nil
		}
	}

	shared := context.WithoutCancel(ctx)
	ch := s.cache.requestGroup.DoChan(key, func() (any, error) {
		sol, err := s.inner.Solve(shared, problem)
		if err != nil {
			return nil, err
		}
		rec := domain.NewSolutionRecord(sol)
		if sol.Optimal {
			s.cache.remember(key, s.dir, rec)
		}
		return rec, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}

	sol, ok := res.Val.(domain.SolutionRecord).Restore(problem.Universe)
	if !ok {
		return s.inner.Solve(ctx, problem)
	}
	return sol, nil
}

// Key identifies problem solved with strategy.
func Key(problem *domain.Problem, strategy domain.Strategy) string {
	return problem.Fingerprint() + "-" + string(strategy)
}
