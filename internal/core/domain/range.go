package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Range is a version interval. An unset bound is unbounded.
type Range struct {
	Min          Version
	Max          Version
	MinExclusive bool
	MaxExclusive bool
}

// Any returns the range that contains every version.
func Any() Range {
	return Range{}
}

// Exact returns the range containing only v.
func Exact(v Version) Range {
	return Range{Min: v, Max: v}
}

// Above returns the range of versions strictly greater than v.
func Above(v Version) Range {
	return Range{Min: v, MinExclusive: true}
}

// AtLeast returns the range of versions greater than or equal to v.
func AtLeast(v Version) Range {
	return Range{Min: v}
}

// IsAny reports whether the range is unbounded on both sides.
func (r Range) IsAny() bool {
	return r.Min.IsZero() && r.Max.IsZero()
}

// IsExact reports whether the range pins a single version.
func (r Range) IsExact() bool {
	return !r.Min.IsZero() && !r.MinExclusive && !r.MaxExclusive && r.Min.Equal(r.Max)
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v Version) bool {
	if !r.Min.IsZero() {
		c := v.Compare(r.Min)
		if c < 0 || (c == 0 && r.MinExclusive) {
			return false
		}
	}
	if !r.Max.IsZero() {
		c := v.Compare(r.Max)
		if c > 0 || (c == 0 && r.MaxExclusive) {
			return false
		}
	}
	return true
}

// String renders the range in interval notation, e.g. "[2.0,)" or "(1.5,3.0]".
func (r Range) String() string {
	if r.IsAny() {
		return "*"
	}
	var b strings.Builder
	if r.MinExclusive || r.Min.IsZero() {
		b.WriteByte('(')
	} else {
		b.WriteByte('[')
	}
	b.WriteString(r.Min.String())
	b.WriteByte(',')
	b.WriteString(r.Max.String())
	if r.MaxExclusive || r.Max.IsZero() {
		b.WriteByte(')')
	} else {
		b.WriteByte(']')
	}
	return b.String()
}

// ParseRange parses interval notation ("[1.0,2.0)", "(1.5,)", "[1.0]") or "*".
// A bare version is read as an inclusive lower bound.
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" {
		return Any(), nil
	}

	open, closing := s[0], s[len(s)-1]
	if open != '[' && open != '(' {
		v, err := ParseVersion(s)
		if err != nil {
			return Range{}, zerr.With(zerr.Wrap(ErrInvalidRange, "bad lower bound"), "range", s)
		}
		return AtLeast(v), nil
	}
	if len(s) < 2 || (closing != ']' && closing != ')') {
		return Range{}, zerr.With(zerr.Wrap(ErrInvalidRange, "unterminated interval"), "range", s)
	}

	body := s[1 : len(s)-1]
	lo, hi, hasComma := strings.Cut(body, ",")
	if !hasComma {
		if open != '[' || closing != ']' {
			return Range{}, zerr.With(zerr.Wrap(ErrInvalidRange, "single version must be inclusive"), "range", s)
		}
		v, err := ParseVersion(body)
		if err != nil {
			return Range{}, zerr.With(zerr.Wrap(ErrInvalidRange, "bad version"), "range", s)
		}
		return Exact(v), nil
	}

	var r Range
	var err error
	if lo = strings.TrimSpace(lo); lo != "" {
		if r.Min, err = ParseVersion(lo); err != nil {
			return Range{}, zerr.With(zerr.Wrap(ErrInvalidRange, "bad lower bound"), "range", s)
		}
		r.MinExclusive = open == '('
	}
	if hi = strings.TrimSpace(hi); hi != "" {
		if r.Max, err = ParseVersion(hi); err != nil {
			return Range{}, zerr.With(zerr.Wrap(ErrInvalidRange, "bad upper bound"), "range", s)
		}
		r.MaxExclusive = closing == ')'
	}
	if !r.Min.IsZero() && !r.Max.IsZero() && r.Max.Less(r.Min) {
		return Range{}, zerr.With(zerr.Wrap(ErrInvalidRange, "upper bound below lower bound"), "range", s)
	}
	return r, nil
}

// Constraint names a package and the range of its versions the constraint applies to.
type Constraint struct {
	Package PackageID
	Range   Range
}

// String renders the constraint as "name range".
func (c Constraint) String() string {
	return c.Package.String() + " " + c.Range.String()
}

// ParseConstraint parses the manifest notation "name[:min[:max]]" where both bounds are inclusive.
// An empty min leaves the range open below.
func ParseConstraint(s string) (Constraint, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if parts[0] == "" || len(parts) > 3 {
		return Constraint{}, zerr.With(zerr.Wrap(ErrInvalidRange, "malformed constraint"), "constraint", s)
	}

	c := Constraint{Package: NewPackageID(parts[0])}
	if len(parts) > 1 && parts[1] != "" {
		v, err := ParseVersion(parts[1])
		if err != nil {
			return Constraint{}, zerr.With(zerr.Wrap(ErrInvalidRange, "bad minimum version"), "constraint", s)
		}
		c.Range.Min = v
	}
	if len(parts) > 2 && parts[2] != "" {
		v, err := ParseVersion(parts[2])
		if err != nil {
			return Constraint{}, zerr.With(zerr.Wrap(ErrInvalidRange, "bad maximum version"), "constraint", s)
		}
		c.Range.Max = v
	}
	if !c.Range.Min.IsZero() && !c.Range.Max.IsZero() && c.Range.Max.Less(c.Range.Min) {
		return Constraint{}, zerr.With(zerr.Wrap(ErrInvalidRange, "maximum below minimum"), "constraint", s)
	}
	return c, nil
}
