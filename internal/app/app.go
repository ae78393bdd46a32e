// Package app implements the application layer for pkgplan.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.trai.ch/pkgplan/internal/core/domain"
	"go.trai.ch/pkgplan/internal/core/ports"
	"go.trai.ch/pkgplan/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader  ports.ConfigLoader
	catalogLoader ports.CatalogLoader
	solvers       ports.SolverFactory
	cache         ports.SolutionCache
	logger        ports.Logger
	tracer        ports.Tracer
	workingDir    string
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	catalogLoader ports.CatalogLoader,
	solvers ports.SolverFactory,
	cache ports.SolutionCache,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader:  configLoader,
		catalogLoader: catalogLoader,
		solvers:       solvers,
		cache:         cache,
		logger:        log,
		tracer:        tracer,
		workingDir:    ".",
	}
}

// WithWorkingDir sets the directory settings are discovered from.
func (a *App) WithWorkingDir(dir string) *App {
	a.workingDir = dir
	return a
}

// Options are the settings overrides shared by every command.
type Options struct {
	ConfigPath  string
	CatalogPath string
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	Options

	Install []string
	Remove  []string
	Upgrade []string

	Platform string
	Snapshot bool
	NoKeep   bool
	Strategy string
	Timeout  time.Duration
	NoCache  bool
}

// PlanOptions configuration for the Plan method.
type PlanOptions struct {
	Options

	Platform string
}

// CatalogOptions configuration for the ListCatalog method.
type CatalogOptions struct {
	Options

	InstalledOnly bool
}

// CatalogEntry describes one package of the catalog.
type CatalogEntry struct {
	ID        string   `json:"id"`
	Versions  []string `json:"versions"`
	Installed string   `json:"installed,omitempty"`
	Local     []string `json:"local,omitempty"`
}

// SetVerbose toggles debug logging when the logger supports it.
func (a *App) SetVerbose(verbose bool) {
	if l, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		l.SetVerbose(verbose)
	}
}

// Resolve computes the installation plan for the requested changes.
// An unsatisfiable request is reported through the returned resolution, not the error.
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) (*domain.Resolution, error) {
	settings, err := a.loadSettings(opts.Options)
	if err != nil {
		return nil, err
	}
	if opts.Strategy != "" {
		settings.Solver.Strategy = domain.Strategy(opts.Strategy)
	}
	if opts.Timeout > 0 {
		settings.Solver.Timeout = opts.Timeout
	}
	if opts.NoCache {
		settings.Cache.Enabled = false
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	r, err := a.newResolver(ctx, settings)
	if err != nil {
		return nil, err
	}

	platform := settings.Platform
	if opts.Platform != "" {
		platform = opts.Platform
	}
	res, err := r.Resolve(ctx, domain.Request{
		Install:        opts.Install,
		Remove:         opts.Remove,
		Upgrade:        opts.Upgrade,
		TargetPlatform: platform,
		AllowSnapshot:  settings.AllowSnapshot || opts.Snapshot,
		Keep:           settings.Keep && !opts.NoKeep,
	})
	if err != nil {
		return nil, zerr.Wrap(err, "resolution failed")
	}
	return res, nil
}

// Plan installs or upgrades a single package.
func (a *App) Plan(ctx context.Context, token string, opts PlanOptions) (*domain.Resolution, error) {
	settings, err := a.loadSettings(opts.Options)
	if err != nil {
		return nil, err
	}

	r, err := a.newResolver(ctx, settings)
	if err != nil {
		return nil, err
	}

	platform := settings.Platform
	if opts.Platform != "" {
		platform = opts.Platform
	}
	res, err := r.ResolveOne(ctx, token, platform)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "resolution failed"), "token", token)
	}
	return res, nil
}

// ListCatalog returns the packages of the configured catalog ordered by name.
func (a *App) ListCatalog(ctx context.Context, opts CatalogOptions) ([]CatalogEntry, error) {
	settings, err := a.loadSettings(opts.Options)
	if err != nil {
		return nil, err
	}
	catalog, err := a.catalogLoader.Load(ctx, settings.Catalog)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load catalog")
	}

	installed := catalog.ListInstalled()
	var entries []CatalogEntry
	for _, id := range catalog.ListPackageIDs() {
		current, isInstalled := installed[id]
		if opts.InstalledOnly && !isInstalled {
			continue
		}
		entry := CatalogEntry{ID: id.String()}
		for _, d := range catalog.ListKnownVersions(id) {
			entry.Versions = append(entry.Versions, d.Version.String())
		}
		if isInstalled {
			entry.Installed = current.String()
		}
		for _, v := range catalog.FindLocalVersions(id) {
			entry.Local = append(entry.Local, v.String())
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (a *App) loadSettings(opts Options) (*domain.Settings, error) {
	settings, err := a.configLoader.Load(a.workingDir, opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load settings")
	}
	if opts.CatalogPath != "" {
		settings.Catalog = opts.CatalogPath
		if !filepath.IsAbs(settings.Catalog) {
			settings.Catalog = filepath.Join(a.workingDir, settings.Catalog)
		}
	}
	return settings, nil
}

func (a *App) newResolver(ctx context.Context, settings *domain.Settings) (*resolver.Resolver, error) {
	catalog, err := a.catalogLoader.Load(ctx, settings.Catalog)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load catalog")
	}

	solver, err := a.solvers.New(settings.Solver)
	if err != nil {
		return nil, err
	}
	if settings.Cache.Enabled {
		solver = a.cache.Wrap(solver, settings.Cache.Dir)
	}
	a.logger.Debug(fmt.Sprintf("using %s solver (timeout %s, node budget %d, cache %t)",
		solver.Strategy(), settings.Solver.Timeout, settings.Solver.MaxNodes, settings.Cache.Enabled))

	return resolver.New(catalog, solver, a.logger, a.tracer), nil
}
