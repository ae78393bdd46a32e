package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgplan/internal/adapters/catalog"
	"go.trai.ch/pkgplan/internal/core/domain"
)

func descriptor(name, version string) *domain.Descriptor {
	return &domain.Descriptor{ID: domain.NewPackageID(name), Version: domain.MustParseVersion(version)}
}

func TestCatalog_Queries(t *testing.T) {
	a1, a2, a3 := descriptor("pkg-a", "1.0"), descriptor("pkg-a", "2.0"), descriptor("pkg-a", "3.0")
	b := descriptor("pkg-b", "1.0")

	c, err := catalog.New(
		[]*domain.Descriptor{a1, b, a3, a2},
		map[domain.PackageID]domain.Version{a1.ID: a1.Version},
		map[domain.PackageID][]domain.Version{a1.ID: {a2.Version, a3.Version, a2.Version}},
	)
	require.NoError(t, err)

	assert.Equal(t, []*domain.Descriptor{a3, a2, a1}, c.ListKnownVersions(a1.ID))
	assert.Empty(t, c.ListKnownVersions(domain.NewPackageID("pkg-missing")))
	assert.Equal(t, []domain.PackageID{a1.ID, b.ID}, c.ListPackageIDs())

	assert.True(t, c.IsInstalled(a1.ID))
	assert.False(t, c.IsInstalled(b.ID))

	local := c.FindLocalVersions(a1.ID)
	require.Len(t, local, 3)
	assert.Equal(t, "3.0", local[0].String())
	assert.Equal(t, "1.0", local[2].String())
	assert.Empty(t, c.FindLocalVersions(b.ID))

	assert.True(t, c.IsLocallyCached(a1.ID, a1.Version))
	assert.True(t, c.IsLocallyCached(a1.ID, a2.Version))
	assert.False(t, c.IsLocallyCached(b.ID, b.Version))

	installed := c.ListInstalled()
	delete(installed, a1.ID)
	assert.True(t, c.IsInstalled(a1.ID), "ListInstalled must return a copy")

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 4, c.Size())
}

func TestNew_Errors(t *testing.T) {
	a := descriptor("pkg-a", "1.0")

	_, err := catalog.New([]*domain.Descriptor{a, descriptor("pkg-a", "1.0.0")}, nil, nil)
	require.ErrorIs(t, err, domain.ErrDuplicateDescriptor)

	_, err = catalog.New([]*domain.Descriptor{a},
		map[domain.PackageID]domain.Version{a.ID: domain.MustParseVersion("2.0")}, nil)
	require.ErrorIs(t, err, domain.ErrUnknownInstalledPackage)

	_, err = catalog.New([]*domain.Descriptor{a}, nil,
		map[domain.PackageID][]domain.Version{domain.NewPackageID("pkg-b"): {a.Version}})
	require.ErrorIs(t, err, domain.ErrUnknownInstalledPackage)
}
