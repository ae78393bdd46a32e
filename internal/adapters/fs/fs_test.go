package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgplan/internal/adapters/fs"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func relPaths(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestWalker_WalkFiles(t *testing.T) {
	// tmp/
	//   .git/config
	//   .pkgplan/cache/x.json
	//   ignored/file
	//   src/main.yaml
	//   README.md
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".git", "config"), "git config")
	writeFile(t, filepath.Join(tmpDir, ".pkgplan", "cache", "x.json"), "{}")
	writeFile(t, filepath.Join(tmpDir, "ignored", "file"), "ignored content")
	writeFile(t, filepath.Join(tmpDir, "src", "main.yaml"), "packages: []")
	writeFile(t, filepath.Join(tmpDir, "README.md"), "# Readme")

	walker := fs.NewWalker()
	files := relPaths(t, tmpDir, slices.Collect(walker.WalkFiles(tmpDir, []string{"ignored"})))

	assert.Equal(t, []string{"README.md", "src/main.yaml"}, files)
}

func TestWalker_WalkManifests(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "base.yaml"), "packages: []")
	writeFile(t, filepath.Join(tmpDir, "extra", "tools.YML"), "packages: []")
	writeFile(t, filepath.Join(tmpDir, "notes.txt"), "not a manifest")

	walker := fs.NewWalker()
	files := relPaths(t, tmpDir, slices.Collect(walker.WalkManifests(tmpDir, nil)))

	assert.Equal(t, []string{"base.yaml", "extra/tools.YML"}, files)
}

func TestWalker_StopsEarly(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a.yaml"), "")
	writeFile(t, filepath.Join(tmpDir, "b.yaml"), "")

	count := 0
	for range fs.NewWalker().WalkManifests(tmpDir, nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestIsManifest(t *testing.T) {
	assert.True(t, fs.IsManifest("catalog.yaml"))
	assert.True(t, fs.IsManifest("dir/catalog.yml"))
	assert.False(t, fs.IsManifest("catalog.json"))
}
