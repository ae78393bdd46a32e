package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Token is a package reference from a request: a bare name or a "name-version" pair.
type Token struct {
	Raw     string
	Name    string
	Version Version
}

// IsPinned reports whether the token names an exact version.
func (t Token) IsPinned() bool {
	return !t.Version.IsZero()
}

// ID returns the package id the token refers to.
func (t Token) ID() PackageID {
	return NewPackageID(t.Name)
}

// FormatToken renders an id and version as "id-version".
func FormatToken(id PackageID, v Version) string {
	return id.String() + "-" + v.String()
}

// ParseToken splits a raw token into a name and an optional version.
//
// Package names may contain dashes, so a token equal to a known name is always bare.
// Otherwise every dash is tried from left to right: the first split whose suffix starts
// with a digit, parses as a version, and whose prefix is a known name wins. When no
// prefix is known, the first split with a valid version is used.
func ParseToken(raw string, known func(name string) bool) (Token, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Token{}, zerr.Wrap(ErrInvalidToken, "empty package token")
	}
	if known(raw) {
		return Token{Raw: raw, Name: raw}, nil
	}

	var fallback *Token
	for i := 0; i < len(raw); i++ {
		if raw[i] != '-' || i == 0 || i+1 >= len(raw) {
			continue
		}
		name, suffix := raw[:i], raw[i+1:]
		if suffix[0] < '0' || suffix[0] > '9' {
			continue
		}
		v, err := ParseVersion(suffix)
		if err != nil {
			continue
		}
		tok := Token{Raw: raw, Name: name, Version: v}
		if known(name) {
			return tok, nil
		}
		if fallback == nil {
			fallback = &tok
		}
	}
	if fallback != nil {
		return *fallback, nil
	}
	return Token{Raw: raw, Name: raw}, nil
}
