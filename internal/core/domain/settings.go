package domain

import (
	"os"
	"time"

	"go.trai.ch/zerr"
)

const (
	// SettingsFileName is the settings file looked up from the working directory upwards.
	SettingsFileName = "pkgplan.yaml"
	// DefaultCacheDir is the solution store location, relative to the settings file.
	DefaultCacheDir = ".pkgplan/cache"
	// DefaultSolverTimeout bounds a single search.
	DefaultSolverTimeout = 5 * time.Second
	// DefaultMaxNodes bounds the number of search nodes explored by a single search.
	DefaultMaxNodes = 200_000

	// DirPerm is the permission used for directories created by pkgplan.
	DirPerm os.FileMode = 0o750
	// FilePerm is the permission used for files written by pkgplan.
	FilePerm os.FileMode = 0o600
)

// Strategy selects the solver implementation.
type Strategy string

const (
	// StrategyExact runs branch-and-bound until optimality is proven or the budget runs out.
	StrategyExact Strategy = "exact"
	// StrategyGreedy stops at the first feasible assignment.
	StrategyGreedy Strategy = "greedy"
)

// ParseStrategy validates a strategy name. An empty name selects StrategyExact.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyExact:
		return StrategyExact, nil
	case StrategyGreedy:
		return StrategyGreedy, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidStrategy, "strategy must be exact or greedy"), "strategy", s)
	}
}

// SolverSettings configures the search.
type SolverSettings struct {
	Strategy Strategy
	Timeout  time.Duration
	MaxNodes int
}

// CacheSettings configures the solution cache.
type CacheSettings struct {
	Enabled bool
	Dir     string
}

// Settings is the resolved configuration of a pkgplan run.
type Settings struct {
	// Root is the directory relative paths are resolved against.
	Root          string
	Catalog       string
	Platform      string
	AllowSnapshot bool
	Keep          bool
	Solver        SolverSettings
	Cache         CacheSettings
}

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() Settings {
	return Settings{
		Keep: true,
		Solver: SolverSettings{
			Strategy: StrategyExact,
			Timeout:  DefaultSolverTimeout,
			MaxNodes: DefaultMaxNodes,
		},
		Cache: CacheSettings{
			Enabled: true,
			Dir:     DefaultCacheDir,
		},
	}
}

// Validate checks the settings for values the resolver cannot work with.
func (s Settings) Validate() error {
	if _, err := ParseStrategy(string(s.Solver.Strategy)); err != nil {
		return err
	}
	if s.Solver.Timeout < 0 {
		return zerr.With(zerr.Wrap(ErrInvalidSettings, "solver timeout must not be negative"),
			"timeout", s.Solver.Timeout.String())
	}
	if s.Solver.MaxNodes < 0 {
		return zerr.With(zerr.Wrap(ErrInvalidSettings, "solver node budget must not be negative"),
			"max_nodes", s.Solver.MaxNodes)
	}
	return nil
}
