package ports

import "go.trai.ch/pkgplan/internal/core/domain"

// SolutionStore persists solutions across runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SolutionStore interface {
	// Get retrieves the solution stored under key in dir.
	// Returns nil, nil if not found.
	Get(dir, key string) (*domain.SolutionRecord, error)

	// Put stores the solution under key in dir.
	Put(dir, key string, record domain.SolutionRecord) error
}
