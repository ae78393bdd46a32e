package ports

import (
	"context"

	"go.trai.ch/pkgplan/internal/core/domain"
)

// Resolver turns requests into installation plans.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type Resolver interface {
	// Resolve computes the plan for req. An unsatisfiable request yields a
	// resolution that is not validated and a nil error.
	Resolve(ctx context.Context, req domain.Request) (*domain.Resolution, error)
	// ResolveOne installs token, or upgrades it if a version of the package is already local.
	ResolveOne(ctx context.Context, token, platform string) (*domain.Resolution, error)
}
