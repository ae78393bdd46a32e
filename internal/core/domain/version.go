package domain

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

const snapshotSuffix = "SNAPSHOT"

// Version is a totally ordered package version.
// The zero Version is unset and sorts before every parsed version.
type Version struct {
	v *semver.Version
}

// ParseVersion parses a version string such as "1.0", "5.5.0" or "5.5.0-SNAPSHOT".
func ParseVersion(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, zerr.With(zerr.Wrap(ErrInvalidVersion, "empty version"), "version", s)
	}
	v, err := semver.NewVersion(s)
	if err != nil {
		return Version{}, zerr.With(zerr.Wrap(ErrInvalidVersion, err.Error()), "version", s)
	}
	return Version{v: v}, nil
}

// MustParseVersion is like ParseVersion but panics on error.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// IsZero reports whether the version is unset.
func (v Version) IsZero() bool {
	return v.v == nil
}

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal to, or after o.
func (v Version) Compare(o Version) int {
	switch {
	case v.v == nil && o.v == nil:
		return 0
	case v.v == nil:
		return -1
	case o.v == nil:
		return 1
	}
	return v.v.Compare(o.v)
}

// Equal reports whether both versions have the same precedence.
// "1.0" and "1.0.0" are equal.
func (v Version) Equal(o Version) bool {
	return v.Compare(o) == 0
}

// Less reports whether v sorts before o.
func (v Version) Less(o Version) bool {
	return v.Compare(o) < 0
}

// IsSnapshot reports whether the version carries a SNAPSHOT pre-release tag.
func (v Version) IsSnapshot() bool {
	if v.v == nil {
		return false
	}
	return strings.HasSuffix(strings.ToUpper(v.v.Prerelease()), snapshotSuffix)
}

// String returns the version as it was written.
func (v Version) String() string {
	if v.v == nil {
		return ""
	}
	return v.v.Original()
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*v = Version{}
		return nil
	}
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
