package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgplan/internal/adapters/config"
	"go.trai.ch/pkgplan/internal/core/domain"
	"go.trai.ch/pkgplan/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestLoader_Load_FullFile(t *testing.T) {
	rootDir := t.TempDir()
	createFile(t, rootDir, domain.SettingsFileName, `
version: "1"
catalog: catalog/
platform: cap-5.5
allowSnapshot: true
keep: false
solver:
  strategy: greedy
  timeout: 250ms
  maxNodes: 1000
cache:
  enabled: false
  dir: /var/cache/pkgplan
`)

	settings, err := newLoader(t).Load(rootDir, "")
	require.NoError(t, err)

	assert.Equal(t, rootDir, settings.Root)
	assert.Equal(t, filepath.Join(rootDir, "catalog"), settings.Catalog)
	assert.Equal(t, "cap-5.5", settings.Platform)
	assert.True(t, settings.AllowSnapshot)
	assert.False(t, settings.Keep)
	assert.Equal(t, domain.StrategyGreedy, settings.Solver.Strategy)
	assert.Equal(t, 250*time.Millisecond, settings.Solver.Timeout)
	assert.Equal(t, 1000, settings.Solver.MaxNodes)
	assert.False(t, settings.Cache.Enabled)
	assert.Equal(t, "/var/cache/pkgplan", settings.Cache.Dir)
}

func TestLoader_Load_PartialFileKeepsDefaults(t *testing.T) {
	rootDir := t.TempDir()
	createFile(t, rootDir, domain.SettingsFileName, "catalog: desktop.yaml\n")

	settings, err := newLoader(t).Load(rootDir, "")
	require.NoError(t, err)

	defaults := domain.DefaultSettings()
	assert.True(t, settings.Keep)
	assert.Equal(t, defaults.Solver, settings.Solver)
	assert.True(t, settings.Cache.Enabled)
	assert.Equal(t, filepath.Join(rootDir, domain.DefaultCacheDir), settings.Cache.Dir)
	assert.Equal(t, filepath.Join(rootDir, "desktop.yaml"), settings.Catalog)
}

func TestLoader_Load_DiscoversParentFile(t *testing.T) {
	rootDir := t.TempDir()
	createFile(t, rootDir, domain.SettingsFileName, "platform: cap-5.5\n")
	nested := filepath.Join(rootDir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	settings, err := newLoader(t).Load(nested, "")
	require.NoError(t, err)
	assert.Equal(t, rootDir, settings.Root)
	assert.Equal(t, "cap-5.5", settings.Platform)
}

func TestLoader_Load_ExplicitPath(t *testing.T) {
	rootDir := t.TempDir()
	confDir := filepath.Join(rootDir, "conf")
	require.NoError(t, os.MkdirAll(confDir, domain.DirPerm))
	createFile(t, confDir, "custom.yaml", "root: ..\ncatalog: catalog\n")

	settings, err := newLoader(t).Load(rootDir, filepath.Join("conf", "custom.yaml"))
	require.NoError(t, err)
	assert.Equal(t, rootDir, settings.Root)
	assert.Equal(t, filepath.Join(rootDir, "catalog"), settings.Catalog)
}

func TestLoader_Load_Defaults(t *testing.T) {
	rootDir := t.TempDir()

	settings, err := newLoader(t).Load(rootDir, "")
	require.NoError(t, err)

	want := domain.DefaultSettings()
	want.Root = rootDir
	want.Cache.Dir = filepath.Join(rootDir, domain.DefaultCacheDir)
	assert.Equal(t, &want, settings)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "malformed yaml", content: "solver: [", wantErr: domain.ErrConfigParseFailed},
		{name: "unsupported version", content: "version: \"2\"\n", wantErr: domain.ErrConfigParseFailed},
		{name: "bad timeout", content: "solver:\n  timeout: soon\n", wantErr: domain.ErrConfigParseFailed},
		{name: "unknown strategy", content: "solver:\n  strategy: random\n", wantErr: domain.ErrInvalidStrategy},
		{name: "negative budget", content: "solver:\n  maxNodes: -1\n", wantErr: domain.ErrInvalidSettings},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootDir := t.TempDir()
			createFile(t, rootDir, domain.SettingsFileName, tt.content)

			_, err := newLoader(t).Load(rootDir, "")
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoader_Load_MissingExplicitPath(t *testing.T) {
	_, err := newLoader(t).Load(t.TempDir(), "missing.yaml")
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
}
