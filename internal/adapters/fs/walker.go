// Package fs provides file system adapters for locating catalog manifests.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"slices"
	"strings"
)

// ManifestExtensions are the file extensions recognized as catalog manifests.
var ManifestExtensions = []string{".yaml", ".yml"}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files under root in lexical order, skipping hidden and ignored directories.
// Yielded paths include root.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if skip, action := w.shouldSkip(path != root, d, ignores); skip {
				return action
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

// WalkManifests yields the catalog manifest files under root.
func (w *Walker) WalkManifests(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for path := range w.WalkFiles(root, ignores) {
			if !IsManifest(path) {
				continue
			}
			if !yield(path) {
				return
			}
		}
	}
}

// IsManifest reports whether path has a manifest extension.
func IsManifest(path string) bool {
	return slices.Contains(ManifestExtensions, strings.ToLower(filepath.Ext(path)))
}

// shouldSkip reports whether the entry is skipped and the value WalkDir should return for it.
// Hidden directories such as .git, .jj and the solution cache are always skipped.
func (w *Walker) shouldSkip(nested bool, d fs.DirEntry, ignores []string) (bool, error) {
	name := d.Name()

	if nested && d.IsDir() && strings.HasPrefix(name, ".") {
		return true, filepath.SkipDir
	}

	for _, ignore := range ignores {
		matched, _ := filepath.Match(ignore, name)
		if matched {
			if d.IsDir() {
				return true, filepath.SkipDir
			}
			return true, nil
		}
	}

	return false, nil
}
