// Package resolver orchestrates translation, search and classification into installation plans.
package resolver

import (
	"context"
	"fmt"
	"slices"

	"go.trai.ch/pkgplan/internal/core/domain"
	"go.trai.ch/pkgplan/internal/core/ports"
	"go.trai.ch/pkgplan/internal/engine/builder"
	"go.trai.ch/pkgplan/internal/engine/translator"
)

var _ ports.Resolver = (*Resolver)(nil)

// Resolver computes installation plans against a single catalog.
// It holds no per-call state and can be shared by concurrent callers.
type Resolver struct {
	catalog    ports.Catalog
	solver     ports.Solver
	logger     ports.Logger
	tracer     ports.Tracer
	translator *translator.Translator
	builder    *builder.Builder
}

// New creates a new Resolver.
func New(catalog ports.Catalog, solver ports.Solver, logger ports.Logger, tracer ports.Tracer) *Resolver {
	return &Resolver{
		catalog:    catalog,
		solver:     solver,
		logger:     logger,
		tracer:     tracer,
		translator: translator.New(),
		builder:    builder.New(),
	}
}

// Resolve computes the plan for req. When req.Keep is false, installed packages that
// the requested selection does not need are pruned by a second resolution pass.
func (r *Resolver) Resolve(ctx context.Context, req domain.Request) (*domain.Resolution, error) {
	ctx, span := r.tracer.Start(ctx, "resolve",
		ports.WithAttribute("platform", req.TargetPlatform),
		ports.WithAttribute("keep", req.Keep),
		ports.WithAttribute("strategy", string(r.solver.Strategy())),
	)
	defer span.End()

	res, err := r.resolve(ctx, req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if req.Keep || !res.IsValidated() {
		return res, nil
	}

	res, err = r.closure(ctx, req, res)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return res, nil
}

// ResolveOne installs token, or upgrades it when the package is installed or available locally.
func (r *Resolver) ResolveOne(ctx context.Context, token, platform string) (*domain.Resolution, error) {
	req := domain.Request{TargetPlatform: platform, Keep: true}

	tok, err := domain.ParseToken(token, func(name string) bool {
		return len(r.catalog.ListKnownVersions(domain.NewPackageID(name))) > 0
	})
	if err != nil {
		return nil, err
	}
	id := tok.ID()
	if r.catalog.IsInstalled(id) || len(r.catalog.FindLocalVersions(id)) > 0 {
		req.Upgrade = []string{token}
	} else {
		req.Install = []string{token}
	}
	return r.Resolve(ctx, req)
}

func (r *Resolver) resolve(ctx context.Context, req domain.Request) (*domain.Resolution, error) {
	problem, err := r.translate(ctx, req)
	if err != nil {
		return nil, err
	}

	solution, err := r.solve(ctx, problem)
	if err != nil {
		return r.builder.BuildFailure(err)
	}

	ctx, span := r.tracer.Start(ctx, "build")
	defer span.End()
	res, err := r.builder.Build(ctx, r.catalog, problem, solution)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	r.logger.Debug(fmt.Sprintf("resolution: %d to download, %d to install, %d to upgrade, %d to remove",
		len(res.NewDownloads), len(res.LocalInstalls), len(res.Upgrades), len(res.Removals)))
	return res, nil
}

func (r *Resolver) translate(ctx context.Context, req domain.Request) (*domain.Problem, error) {
	ctx, span := r.tracer.Start(ctx, "translate")
	defer span.End()

	problem, err := r.translator.Translate(ctx, r.catalog, req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("packages", problem.Universe.Len())
	span.SetAttribute("descriptors", problem.Universe.Size())
	span.SetAttribute("hard_goals", len(problem.Hard))
	span.SetAttribute("soft_goals", len(problem.Soft))
	r.logger.Debug(fmt.Sprintf("translated request: %d packages, %d descriptors, %d hard goals, %d soft goals",
		problem.Universe.Len(), problem.Universe.Size(), len(problem.Hard), len(problem.Soft)))
	return problem, nil
}

func (r *Resolver) solve(ctx context.Context, problem *domain.Problem) (*domain.Solution, error) {
	ctx, span := r.tracer.Start(ctx, "solve")
	defer span.End()

	solution, err := r.solver.Solve(ctx, problem)
	if err != nil {
		span.RecordError(err)
		r.logger.Debug(fmt.Sprintf("search failed: %v", err))
		return nil, err
	}
	span.SetAttribute("optimal", solution.Optimal)
	span.SetAttribute("nodes", solution.Nodes)
	if !solution.Optimal {
		r.logger.Warn(fmt.Sprintf("%v after %d nodes, using the best selection found",
			domain.ErrSearchInterrupted, solution.Nodes))
	}
	r.logger.Debug(fmt.Sprintf("search selected %d packages in %d nodes", len(solution.Selected), solution.Nodes))
	return solution, nil
}

// closure re-resolves with the first selection pinned and every other installed package
// removed, so the result only keeps what the request actually needs.
func (r *Resolver) closure(ctx context.Context, req domain.Request, first *domain.Resolution) (*domain.Resolution, error) {
	ctx, span := r.tracer.Start(ctx, "closure")
	defer span.End()

	selected := first.Selected()
	next := domain.Request{
		TargetPlatform: req.TargetPlatform,
		AllowSnapshot:  req.AllowSnapshot,
		Keep:           true,
	}
	for _, id := range domain.SortedIDs(selected) {
		next.Install = append(next.Install, domain.FormatToken(id, selected[id]))
	}
	for _, id := range domain.SortedIDs(r.catalog.ListInstalled()) {
		if _, ok := selected[id]; !ok {
			next.Remove = append(next.Remove, id.String())
		}
	}
	span.SetAttribute("install", slices.Clone(next.Install))
	span.SetAttribute("remove", slices.Clone(next.Remove))
	r.logger.Debug(fmt.Sprintf("closure pass: keeping %d packages, removing %d", len(next.Install), len(next.Remove)))

	res, err := r.resolve(ctx, next)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return res, nil
}
