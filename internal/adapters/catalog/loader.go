package catalog

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"slices"

	"go.trai.ch/pkgplan/internal/adapters/fs"
	"go.trai.ch/pkgplan/internal/core/domain"
	"go.trai.ch/pkgplan/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var _ ports.CatalogLoader = (*Loader)(nil)

// Loader reads catalogs from a manifest file or a directory of manifests.
type Loader struct {
	Walker *fs.Walker
	Logger ports.Logger
}

// NewLoader creates a new catalog loader.
func NewLoader(walker *fs.Walker, logger ports.Logger) *Loader {
	return &Loader{Walker: walker, Logger: logger}
}

// Load reads the catalog at path. A directory catalog merges every manifest below it.
func (l *Loader) Load(ctx context.Context, path string) (ports.Catalog, error) {
	if path == "" {
		return nil, domain.ErrCatalogNotConfigured
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrCatalogReadFailed, err.Error()), "path", path)
	}

	files := []string{path}
	if info.IsDir() {
		files = slices.Collect(l.Walker.WalkManifests(path, nil))
		if len(files) == 0 {
			l.Logger.Warn(fmt.Sprintf("no manifests found in %s", path))
		}
	}

	manifests, err := l.readAll(ctx, files)
	if err != nil {
		return nil, err
	}

	c, err := merge(files, manifests)
	if err != nil {
		return nil, err
	}
	l.Logger.Debug(fmt.Sprintf("loaded catalog from %s: %d packages, %d descriptors, %d manifests",
		path, c.Len(), c.Size(), len(files)))
	return c, nil
}

// readAll parses the manifest files concurrently. Results keep the order of files.
func (l *Loader) readAll(ctx context.Context, files []string) ([]*Manifest, error) {
	manifests := make([]*Manifest, len(files))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, file := range files {
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			m, err := readManifest(file)
			if err != nil {
				return err
			}
			manifests[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return manifests, nil
}

func readManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrCatalogReadFailed, err.Error()), "path", path)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrCatalogParseFailed, err.Error()), "path", path)
	}
	return &m, nil
}

// merge converts the manifests into one catalog. Entries from all files share a single
// namespace, so a package version defined twice is rejected.
func merge(files []string, manifests []*Manifest) (*Catalog, error) {
	var descriptors []*domain.Descriptor
	installed := make(map[domain.PackageID]domain.Version)
	cached := make(map[domain.PackageID][]domain.Version)

	for i, m := range manifests {
		for _, dto := range m.Packages {
			d, err := toDescriptor(dto)
			if err != nil {
				return nil, zerr.With(err, "path", files[i])
			}
			descriptors = append(descriptors, d)
		}
	}

	// Local tokens are resolved against the merged package names.
	known := make(map[string]bool, len(descriptors))
	for _, d := range descriptors {
		known[d.ID.String()] = true
	}

	for i, m := range manifests {
		for name, raw := range m.Installed {
			v, err := domain.ParseVersion(raw)
			if err != nil {
				return nil, zerr.With(zerr.With(err, "package", name), "path", files[i])
			}
			id := domain.NewPackageID(name)
			if prev, ok := installed[id]; ok && !prev.Equal(v) {
				return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrCatalogParseFailed,
					"package installed at two versions"), "package", name), "path", files[i])
			}
			installed[id] = v
		}
		for _, raw := range m.Local {
			tok, err := domain.ParseToken(raw, func(name string) bool { return known[name] })
			if err != nil {
				return nil, zerr.With(err, "path", files[i])
			}
			if !tok.IsPinned() {
				return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidToken,
					"local entries must name a version"), "token", raw), "path", files[i])
			}
			cached[tok.ID()] = append(cached[tok.ID()], tok.Version)
		}
	}

	return New(descriptors, installed, cached)
}

func toDescriptor(dto PackageDTO) (*domain.Descriptor, error) {
	if dto.ID == "" {
		return nil, zerr.Wrap(domain.ErrCatalogParseFailed, "package id is required")
	}
	v, err := domain.ParseVersion(dto.Version)
	if err != nil {
		return nil, zerr.With(err, "package", dto.ID)
	}

	d := &domain.Descriptor{
		ID:        domain.NewPackageID(dto.ID),
		Version:   v,
		Platforms: dto.Platforms,
		Snapshot:  dto.Snapshot,
	}
	if d.Dependencies, err = parseConstraints(dto.Dependencies); err != nil {
		return nil, zerr.With(err, "package", d.Key())
	}
	if d.Conflicts, err = parseConstraints(dto.Conflicts); err != nil {
		return nil, zerr.With(err, "package", d.Key())
	}
	return d, nil
}

func parseConstraints(raw []string) ([]domain.Constraint, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]domain.Constraint, 0, len(raw))
	for _, r := range raw {
		c, err := domain.ParseConstraint(r)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
