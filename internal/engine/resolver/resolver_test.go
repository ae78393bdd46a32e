package resolver_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/pkgplan/internal/adapters/catalog"
	"go.trai.ch/pkgplan/internal/adapters/telemetry"
	"go.trai.ch/pkgplan/internal/core/domain"
	"go.trai.ch/pkgplan/internal/core/ports"
	"go.trai.ch/pkgplan/internal/core/ports/mocks"
	"go.trai.ch/pkgplan/internal/engine/resolver"
	"go.trai.ch/pkgplan/internal/engine/solver"
	"go.uber.org/mock/gomock"
)

func id(name string) domain.PackageID {
	return domain.NewPackageID(name)
}

func v(s string) domain.Version {
	return domain.MustParseVersion(s)
}

func dep(name, min string) domain.Constraint {
	return domain.Constraint{Package: id(name), Range: domain.AtLeast(v(min))}
}

func conflict(name string) domain.Constraint {
	return domain.Constraint{Package: id(name), Range: domain.Any()}
}

// desktopCatalog is a catalog where pkg-cmf and pkg-dm exclude each other and
// both need a recent pkg-browser.
func desktopCatalog(t *testing.T, installed map[string]string, cached map[string][]string) *catalog.Catalog {
	t.Helper()
	descriptors := []*domain.Descriptor{
		{ID: id("pkg-browser"), Version: v("1.5")},
		{ID: id("pkg-browser"), Version: v("2.0")},
		{
			ID: id("pkg-dm"), Version: v("1.0"),
			Dependencies: []domain.Constraint{dep("pkg-browser", "1.0")},
			Conflicts:    []domain.Constraint{conflict("pkg-cmf")},
		},
		{
			ID: id("pkg-dm"), Version: v("5.5.0"),
			Dependencies: []domain.Constraint{dep("pkg-browser", "2.0")},
			Conflicts:    []domain.Constraint{conflict("pkg-cmf")},
		},
		{
			ID: id("pkg-cmf"), Version: v("5.5.0"), Platforms: []string{"cap-5.5"},
			Dependencies: []domain.Constraint{dep("pkg-browser", "2.0")},
			Conflicts:    []domain.Constraint{conflict("pkg-dm")},
		},
		{ID: id("pkg-lib"), Version: v("1.0")},
		{ID: id("pkg-tool"), Version: v("0.9")},
		{ID: id("pkg-tool"), Version: v("1.0")},
		{ID: id("pkg-orphan"), Version: v("1.0")},
	}

	inst := make(map[domain.PackageID]domain.Version, len(installed))
	for name, raw := range installed {
		inst[id(name)] = v(raw)
	}
	local := make(map[domain.PackageID][]domain.Version, len(cached))
	for name, raws := range cached {
		for _, raw := range raws {
			local[id(name)] = append(local[id(name)], v(raw))
		}
	}

	c, err := catalog.New(descriptors, inst, local)
	require.NoError(t, err)
	return c
}

func newResolver(t *testing.T, c ports.Catalog, tracer ports.Tracer) *resolver.Resolver {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	if tracer == nil {
		tracer = telemetry.NewNoOpTracer()
	}
	return resolver.New(c, solver.NewExact(solver.Options{}), mockLogger, tracer)
}

func versions(pairs ...string) map[domain.PackageID]domain.Version {
	out := make(map[domain.PackageID]domain.Version, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out[id(pairs[i])] = v(pairs[i+1])
	}
	return out
}

func TestResolve_InstallingCmfRemovesDmAndUpgradesBrowser(t *testing.T) {
	c := desktopCatalog(t, map[string]string{"pkg-dm": "1.0", "pkg-browser": "1.5"}, nil)

	res, err := newResolver(t, c, nil).Resolve(context.Background(), domain.Request{
		Install:        []string{"pkg-cmf-5.5.0"},
		TargetPlatform: "cap-5.5",
		Keep:           true,
	})
	require.NoError(t, err)
	require.True(t, res.IsValidated())
	assert.True(t, res.IsOptimal())

	assert.Equal(t, versions("pkg-dm", "1.0"), res.Removals)
	assert.Equal(t, versions("pkg-browser", "2.0"), res.Upgrades)
	assert.Equal(t, versions("pkg-browser", "1.5"), res.PreviousVersions)
	assert.Equal(t, versions("pkg-cmf", "5.5.0"), res.NewDownloads)
	assert.Empty(t, res.LocalInstalls)
	assert.Equal(t, []domain.PackageID{id("pkg-browser"), id("pkg-cmf")}, res.InstallOrder)
	assert.Equal(t, []domain.PackageID{id("pkg-dm")}, res.RemoveOrder)
}

func TestResolve_InstallingDmRemovesCmf(t *testing.T) {
	c := desktopCatalog(t, map[string]string{"pkg-cmf": "5.5.0", "pkg-browser": "1.5"}, nil)

	res, err := newResolver(t, c, nil).Resolve(context.Background(), domain.Request{
		Install:        []string{"pkg-dm-5.5.0"},
		TargetPlatform: "cap-5.5",
		Keep:           true,
	})
	require.NoError(t, err)
	require.True(t, res.IsValidated())

	assert.Equal(t, versions("pkg-cmf", "5.5.0"), res.Removals)
	assert.Equal(t, versions("pkg-browser", "2.0"), res.Upgrades)
	assert.Equal(t, versions("pkg-dm", "5.5.0"), res.NewDownloads)
}

func TestResolve_ApplyingAPlanIsIdempotent(t *testing.T) {
	req := domain.Request{Install: []string{"pkg-cmf-5.5.0"}, TargetPlatform: "cap-5.5", Keep: true}
	before := desktopCatalog(t, map[string]string{"pkg-dm": "1.0", "pkg-browser": "1.5"}, nil)

	first, err := newResolver(t, before, nil).Resolve(context.Background(), req)
	require.NoError(t, err)
	again, err := newResolver(t, before, nil).Resolve(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	applied := make(map[string]string)
	for pkg, ver := range first.Selected() {
		applied[pkg.String()] = ver.String()
	}
	after := desktopCatalog(t, applied, nil)

	res, err := newResolver(t, after, nil).Resolve(context.Background(), req)
	require.NoError(t, err)
	require.True(t, res.IsValidated())
	assert.True(t, res.IsEmpty())
	assert.Equal(t, first.Selected(), res.Unchanged)
}

func TestResolve_RemovingADependencyRemovesItsDependents(t *testing.T) {
	c := desktopCatalog(t, map[string]string{"pkg-dm": "1.0", "pkg-browser": "1.5", "pkg-lib": "1.0"}, nil)

	res, err := newResolver(t, c, nil).Resolve(context.Background(), domain.Request{
		Remove: []string{"pkg-browser"},
		Keep:   true,
	})
	require.NoError(t, err)
	require.True(t, res.IsValidated())

	assert.Equal(t, versions("pkg-dm", "1.0", "pkg-browser", "1.5"), res.Removals)
	assert.Equal(t, []domain.PackageID{id("pkg-dm"), id("pkg-browser")}, res.RemoveOrder)
	assert.Equal(t, versions("pkg-lib", "1.0"), res.Unchanged)
}

func TestResolve_WithoutKeepPrunesUnneededPackages(t *testing.T) {
	c := desktopCatalog(t, map[string]string{"pkg-dm": "1.0", "pkg-browser": "1.5", "pkg-orphan": "1.0"}, nil)

	res, err := newResolver(t, c, nil).Resolve(context.Background(), domain.Request{
		Install:        []string{"pkg-cmf"},
		TargetPlatform: "cap-5.5",
	})
	require.NoError(t, err)
	require.True(t, res.IsValidated())

	assert.Equal(t, versions("pkg-dm", "1.0", "pkg-orphan", "1.0"), res.Removals)
	assert.Equal(t, versions("pkg-cmf", "5.5.0", "pkg-browser", "2.0"), res.Selected())
}

func TestResolve_RemovesInstalledPackagesFromOtherPlatforms(t *testing.T) {
	c, err := catalog.New([]*domain.Descriptor{
		{ID: id("pkg-a"), Version: v("1.0"), Platforms: []string{"cap-5.5"}},
		{ID: id("pkg-old"), Version: v("1.0"), Platforms: []string{"cap-5.4"}},
	}, versions("pkg-old", "1.0"), nil)
	require.NoError(t, err)

	for _, keep := range []bool{true, false} {
		t.Run(fmt.Sprintf("keep=%t", keep), func(t *testing.T) {
			res, err := newResolver(t, c, nil).Resolve(context.Background(), domain.Request{
				Install:        []string{"pkg-a"},
				TargetPlatform: "cap-5.5",
				Keep:           keep,
			})
			require.NoError(t, err)
			require.True(t, res.IsValidated())
			assert.Equal(t, versions("pkg-a", "1.0"), res.NewDownloads)
			assert.Equal(t, versions("pkg-old", "1.0"), res.Removals)
			assert.Equal(t, []domain.PackageID{id("pkg-old")}, res.RemoveOrder)
		})
	}
}

func TestResolve_RemovingAPackageWithoutPlatformDescriptor(t *testing.T) {
	c := desktopCatalog(t, map[string]string{"pkg-cmf": "5.5.0", "pkg-browser": "2.0"}, nil)

	res, err := newResolver(t, c, nil).Resolve(context.Background(), domain.Request{
		Remove:         []string{"pkg-cmf"},
		TargetPlatform: "cap-5.4",
		Keep:           true,
	})
	require.NoError(t, err)
	require.True(t, res.IsValidated())
	assert.Equal(t, versions("pkg-cmf", "5.5.0"), res.Removals)
	assert.Equal(t, versions("pkg-browser", "2.0"), res.Unchanged)
}

func TestResolve_Unsatisfiable(t *testing.T) {
	c := desktopCatalog(t, nil, nil)

	res, err := newResolver(t, c, nil).Resolve(context.Background(), domain.Request{
		Install:        []string{"pkg-cmf", "pkg-dm"},
		TargetPlatform: "cap-5.5",
		Keep:           true,
	})
	require.NoError(t, err)
	require.False(t, res.IsValidated())
	require.ErrorIs(t, res.Err(), domain.ErrUnsatisfiable)
	assert.Len(t, res.ConflictingGoals, 2)
	assert.Contains(t, res.String(), "install pkg-cmf")
	assert.Contains(t, res.String(), "install pkg-dm")
}

func TestResolve_UnknownPackageIsUnsatisfiable(t *testing.T) {
	c := desktopCatalog(t, nil, nil)

	res, err := newResolver(t, c, nil).Resolve(context.Background(), domain.Request{
		Install: []string{"pkg-missing"},
		Keep:    true,
	})
	require.NoError(t, err)
	require.False(t, res.IsValidated())
	require.Len(t, res.ConflictingGoals, 1)
	assert.Equal(t, id("pkg-missing"), res.ConflictingGoals[0].Package)
}

func TestResolve_UnknownTargetPlatform(t *testing.T) {
	c := desktopCatalog(t, nil, nil)

	_, err := newResolver(t, c, nil).Resolve(context.Background(), domain.Request{
		Install:        []string{"pkg-cmf"},
		TargetPlatform: "cap-9.0",
		Keep:           true,
	})
	require.ErrorIs(t, err, domain.ErrUnknownTargetPlatform)
}

func TestResolve_EmptyRequestKeepsEverything(t *testing.T) {
	c := desktopCatalog(t, map[string]string{"pkg-dm": "1.0", "pkg-browser": "1.5"}, nil)

	res, err := newResolver(t, c, nil).Resolve(context.Background(), domain.Request{Keep: true})
	require.NoError(t, err)
	require.True(t, res.IsValidated())
	assert.True(t, res.IsEmpty())
	assert.Equal(t, versions("pkg-dm", "1.0", "pkg-browser", "1.5"), res.Unchanged)
}

func TestResolve_CanceledContext(t *testing.T) {
	c := desktopCatalog(t, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newResolver(t, c, nil).Resolve(ctx, domain.Request{Install: []string{"pkg-lib"}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestResolve_RecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	tracer := telemetry.NewOTelTracerFromProvider(provider, telemetry.InstrumentationName)

	c := desktopCatalog(t, nil, nil)
	_, err := newResolver(t, c, tracer).Resolve(context.Background(), domain.Request{
		Install: []string{"pkg-lib"},
		Keep:    true,
	})
	require.NoError(t, err)

	var names []string
	for _, s := range recorder.Ended() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"translate", "solve", "build", "resolve"}, names)
}

func TestResolveOne(t *testing.T) {
	c := desktopCatalog(t,
		map[string]string{"pkg-browser": "1.5"},
		map[string][]string{"pkg-tool": {"1.0"}},
	)
	r := newResolver(t, c, nil)

	t.Run("install", func(t *testing.T) {
		res, err := r.ResolveOne(context.Background(), "pkg-lib", "")
		require.NoError(t, err)
		assert.Equal(t, versions("pkg-lib", "1.0"), res.NewDownloads)
		assert.Equal(t, versions("pkg-browser", "1.5"), res.Unchanged)
	})

	t.Run("upgrade installed", func(t *testing.T) {
		res, err := r.ResolveOne(context.Background(), "pkg-browser", "")
		require.NoError(t, err)
		assert.Equal(t, versions("pkg-browser", "2.0"), res.Upgrades)
	})

	t.Run("install cached", func(t *testing.T) {
		res, err := r.ResolveOne(context.Background(), "pkg-tool", "")
		require.NoError(t, err)
		assert.Equal(t, versions("pkg-tool", "1.0"), res.LocalInstalls)
		assert.Empty(t, res.NewDownloads)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := r.ResolveOne(context.Background(), " ", "")
		require.ErrorIs(t, err, domain.ErrInvalidToken)
	})
}
