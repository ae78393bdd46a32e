// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/pkgplan/internal/core/domain"
)

// Catalog is the read-only package source consulted by the resolver.
// Implementations must be safe for concurrent readers.
//
//go:generate go run go.uber.org/mock/mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type Catalog interface {
	// ListKnownVersions returns every known descriptor of id, newest first.
	ListKnownVersions(id domain.PackageID) []*domain.Descriptor
	// ListPackageIDs returns every known package id ordered by name.
	ListPackageIDs() []domain.PackageID
	// ListInstalled returns the installed version of every installed package.
	ListInstalled() map[domain.PackageID]domain.Version
	// IsInstalled reports whether any version of id is installed.
	IsInstalled(id domain.PackageID) bool
	// FindLocalVersions returns the versions of id available locally, installed or cached.
	FindLocalVersions(id domain.PackageID) []domain.Version
	// IsLocallyCached reports whether version v of id is available locally without a download.
	IsLocallyCached(id domain.PackageID, v domain.Version) bool
}

// CatalogLoader opens a catalog from a manifest file or directory.
type CatalogLoader interface {
	// Load reads the catalog at path.
	Load(ctx context.Context, path string) (Catalog, error)
}
