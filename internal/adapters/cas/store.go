// Package cas implements the on-disk solution store.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/pkgplan/internal/core/domain"
	"go.trai.ch/pkgplan/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SolutionStore = (*Store)(nil)

// Store implements ports.SolutionStore using a file-per-key strategy.
type Store struct{}

// NewStore creates a new solution store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the solution stored under key in dir. It returns nil, nil if not found.
func (s *Store) Get(dir, key string) (*domain.SolutionRecord, error) {
	filename := s.filename(dir, key)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", filename)
	}

	var rec domain.SolutionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreUnmarshalFailed, err.Error()), "path", filename)
	}

	return &rec, nil
}

// Put stores the solution under key in dir, creating dir if needed.
func (s *Store) Put(dir, key string, record domain.SolutionRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrStoreMarshalFailed, err.Error())
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", dir)
	}

	filename := s.filename(dir, key)
	tmp := filename + ".tmp"
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", tmp)
	}
	if err := os.Rename(tmp, filename); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", filename)
	}

	return nil
}

func (s *Store) filename(dir, key string) string {
	hash := sha256.Sum256([]byte(key))
	return filepath.Join(dir, hex.EncodeToString(hash[:])+".json")
}
