package solver

import (
	"go.trai.ch/pkgplan/internal/core/domain"
	"go.trai.ch/zerr"
)

// verify re-checks a selection against every hard constraint of problem.
func verify(problem *domain.Problem, selected map[domain.PackageID]*domain.Descriptor) error {
	for id, d := range selected {
		if problem.Universe.Lookup(id, d.Version) != d {
			return violation("selected descriptor is not part of the universe", d)
		}
	}

	for _, g := range problem.Hard {
		d, ok := selected[g.Package]
		switch g.Kind {
		case domain.MustInstall:
			if !ok || !g.Range.Contains(d.Version) {
				return zerr.With(zerr.Wrap(domain.ErrInternalSearch, "install goal not satisfied"), "goal", g.String())
			}
		case domain.MustExclude:
			if ok && g.Range.Contains(d.Version) {
				return zerr.With(zerr.Wrap(domain.ErrInternalSearch, "remove goal not satisfied"), "goal", g.String())
			}
		}
	}

	for _, d := range selected {
		for _, dep := range d.Dependencies {
			target, ok := selected[dep.Package]
			if !ok || !dep.Range.Contains(target.Version) {
				return zerr.With(violation("dependency not satisfied", d), "dependency", dep.String())
			}
		}
		for _, c := range d.Conflicts {
			if other, ok := selected[c.Package]; ok && other != d && c.Range.Contains(other.Version) {
				return zerr.With(violation("conflicting packages selected together", d), "conflict", other.Key())
			}
		}
	}
	return nil
}

func violation(msg string, d *domain.Descriptor) error {
	return zerr.With(zerr.Wrap(domain.ErrInternalSearch, msg), "package", d.Key())
}
