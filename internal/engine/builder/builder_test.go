package builder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgplan/internal/core/domain"
	"go.trai.ch/pkgplan/internal/core/ports/mocks"
	"go.trai.ch/pkgplan/internal/engine/builder"
	"go.uber.org/mock/gomock"
)

func pkg(name, version string, deps ...string) *domain.Descriptor {
	d := &domain.Descriptor{ID: domain.NewPackageID(name), Version: domain.MustParseVersion(version)}
	for _, dep := range deps {
		d.Dependencies = append(d.Dependencies, domain.Constraint{Package: domain.NewPackageID(dep), Range: domain.Any()})
	}
	return d
}

func names(ids []domain.PackageID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func TestBuilder_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cmf := pkg("pkg-cmf", "5.5.0", "pkg-browser", "pkg-lib")
	browser := pkg("pkg-browser", "2.0")
	lib := pkg("pkg-lib", "1.0")
	tool := pkg("pkg-tool", "1.0")
	dm := pkg("pkg-dm", "1.0")
	plugin := pkg("pkg-dm-plugin", "1.0", "pkg-dm")

	catalog := mocks.NewMockCatalog(ctrl)
	catalog.EXPECT().IsLocallyCached(cmf.ID, cmf.Version).Return(false)
	catalog.EXPECT().IsLocallyCached(lib.ID, lib.Version).Return(true)
	catalog.EXPECT().ListKnownVersions(dm.ID).Return([]*domain.Descriptor{dm}).AnyTimes()
	catalog.EXPECT().ListKnownVersions(plugin.ID).Return([]*domain.Descriptor{plugin}).AnyTimes()

	problem := &domain.Problem{
		Installed: map[domain.PackageID]domain.Version{
			browser.ID: domain.MustParseVersion("1.5"),
			tool.ID:    tool.Version,
			dm.ID:      dm.Version,
			plugin.ID:  plugin.Version,
		},
	}
	solution := &domain.Solution{
		Selected: map[domain.PackageID]*domain.Descriptor{
			cmf.ID: cmf, browser.ID: browser, lib.ID: lib, tool.ID: tool,
		},
		Optimal: true,
	}

	r, err := builder.New().Build(context.Background(), catalog, problem, solution)
	require.NoError(t, err)

	assert.True(t, r.IsValidated())
	assert.True(t, r.IsOptimal())
	assert.Equal(t, map[domain.PackageID]domain.Version{cmf.ID: cmf.Version}, r.NewDownloads)
	assert.Equal(t, map[domain.PackageID]domain.Version{lib.ID: lib.Version}, r.LocalInstalls)
	assert.Equal(t, map[domain.PackageID]domain.Version{browser.ID: browser.Version}, r.Upgrades)
	assert.Equal(t, "1.5", r.PreviousVersions[browser.ID].String())
	assert.Equal(t, map[domain.PackageID]domain.Version{tool.ID: tool.Version}, r.Unchanged)
	assert.Len(t, r.Removals, 2)

	assert.Equal(t, []string{"pkg-browser", "pkg-lib", "pkg-cmf"}, names(r.InstallOrder))
	assert.Equal(t, []string{"pkg-dm-plugin", "pkg-dm"}, names(r.RemoveOrder))
}

func TestBuilder_Build_Downgrade(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	old := pkg("pkg-a", "1.0")
	problem := &domain.Problem{
		Installed: map[domain.PackageID]domain.Version{old.ID: domain.MustParseVersion("2.0")},
	}
	solution := &domain.Solution{Selected: map[domain.PackageID]*domain.Descriptor{old.ID: old}}

	r, err := builder.New().Build(context.Background(), mocks.NewMockCatalog(ctrl), problem, solution)
	require.NoError(t, err)

	assert.False(t, r.IsOptimal())
	assert.Equal(t, "1.0", r.Upgrades[old.ID].String())
	assert.Equal(t, "2.0", r.PreviousVersions[old.ID].String())
	assert.Empty(t, r.Removals)
}

func TestBuilder_BuildFailure(t *testing.T) {
	b := builder.New()
	goal := domain.InstallGoal(domain.NewPackageID("pkg-x"), domain.Any())

	r, err := b.BuildFailure(&domain.UnsatisfiableError{Goals: []domain.Goal{goal}, Proven: true})
	require.NoError(t, err)
	assert.False(t, r.IsValidated())
	assert.Contains(t, r.Explanation, "install pkg-x")
	require.ErrorIs(t, r.Err(), domain.ErrUnsatisfiable)

	other := errors.New("boom")
	r, err = b.BuildFailure(other)
	require.ErrorIs(t, err, other)
	assert.Nil(t, r)
}
