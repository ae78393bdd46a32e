package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgplan/internal/core/domain"
)

func descriptor(name, version string) *domain.Descriptor {
	return &domain.Descriptor{ID: domain.NewPackageID(name), Version: domain.MustParseVersion(version)}
}

func TestUniverse_AddKeepsNewestFirst(t *testing.T) {
	u := domain.NewUniverse()
	for _, v := range []string{"1.0", "3.0", "2.0"} {
		require.NoError(t, u.Add(descriptor("pkg-a", v)))
	}

	versions := u.Versions(domain.NewPackageID("pkg-a"))
	require.Len(t, versions, 3)
	assert.Equal(t, "3.0", versions[0].Version.String())
	assert.Equal(t, "2.0", versions[1].Version.String())
	assert.Equal(t, "1.0", versions[2].Version.String())
	assert.Equal(t, 1, u.Len())
	assert.Equal(t, 3, u.Size())
}

func TestUniverse_AddRejectsDuplicates(t *testing.T) {
	u := domain.NewUniverse()
	require.NoError(t, u.Add(descriptor("pkg-a", "1.0")))

	err := u.Add(descriptor("pkg-a", "1.0.0"))
	require.ErrorIs(t, err, domain.ErrDuplicateDescriptor)
}

func TestUniverse_LookupAndFilter(t *testing.T) {
	u := domain.NewUniverse()
	require.NoError(t, u.Add(descriptor("pkg-a", "1.0")))
	require.NoError(t, u.Add(descriptor("pkg-a", "2.0-SNAPSHOT")))
	require.NoError(t, u.Add(descriptor("pkg-b", "1.0-SNAPSHOT")))

	a := domain.NewPackageID("pkg-a")
	assert.NotNil(t, u.Lookup(a, domain.MustParseVersion("1.0.0")))
	assert.Nil(t, u.Lookup(a, domain.MustParseVersion("3.0")))

	stable := u.Filter(func(d *domain.Descriptor) bool { return !d.IsSnapshot() })
	assert.True(t, stable.Has(a))
	assert.False(t, stable.Has(domain.NewPackageID("pkg-b")))
	assert.Len(t, stable.Versions(a), 1)
	assert.Equal(t, []domain.PackageID{a}, stable.IDs())

	// the source universe is untouched
	assert.Len(t, u.Versions(a), 2)
}

func TestDescriptor_Conflicts(t *testing.T) {
	cmf := descriptor("pkg-cmf", "5.5.0")
	dm := descriptor("pkg-dm", "5.5.0")
	cmf.Conflicts = []domain.Constraint{{Package: dm.ID, Range: domain.Any()}}

	assert.True(t, cmf.Excludes(dm))
	assert.False(t, dm.Excludes(cmf))
	assert.True(t, dm.ConflictsWith(cmf))
	assert.True(t, cmf.ConflictsWith(dm))

	other := descriptor("pkg-other", "1.0")
	assert.False(t, other.ConflictsWith(cmf))
}

func TestDescriptor_SupportsPlatform(t *testing.T) {
	d := descriptor("pkg-a", "1.0")
	assert.True(t, d.SupportsPlatform("cap-5.5"))

	d.Platforms = []string{"cap-5.5"}
	assert.True(t, d.SupportsPlatform("cap-5.5"))
	assert.True(t, d.SupportsPlatform(""))
	assert.False(t, d.SupportsPlatform("cap-5.4"))
}

func TestParseToken(t *testing.T) {
	known := map[string]bool{"pkg-dm": true, "pkg-7zip": true, "pkg-a-1.0": true}
	isKnown := func(name string) bool { return known[name] }

	tests := []struct {
		raw      string
		name     string
		version  string
		wantErr  bool
		isPinned bool
	}{
		{raw: "pkg-dm", name: "pkg-dm"},
		{raw: "pkg-dm-5.5.0", name: "pkg-dm", version: "5.5.0", isPinned: true},
		{raw: "pkg-dm-5.5.0-SNAPSHOT", name: "pkg-dm", version: "5.5.0-SNAPSHOT", isPinned: true},
		{raw: "pkg-7zip-1.0", name: "pkg-7zip", version: "1.0", isPinned: true},
		{raw: "pkg-a-1.0", name: "pkg-a-1.0"},
		{raw: "unknown-2.0", name: "unknown", version: "2.0", isPinned: true},
		{raw: "unknown", name: "unknown"},
		{raw: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			tok, err := domain.ParseToken(tt.raw, isKnown)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name, tok.Name)
			assert.Equal(t, tt.version, tok.Version.String())
			assert.Equal(t, tt.isPinned, tok.IsPinned())
		})
	}
}
