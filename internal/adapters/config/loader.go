// Package config provides the settings loader for pkgplan.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/pkgplan/internal/core/domain"
	"go.trai.ch/pkgplan/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only settings file version understood by the loader.
const SupportedVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the settings file at path, or the nearest pkgplan.yaml found from cwd
// upwards when path is empty. Without a settings file the defaults rooted at cwd are returned.
func (l *Loader) Load(cwd, path string) (*domain.Settings, error) {
	if path != "" && !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}
	if path == "" {
		path = findSettingsFile(cwd)
	}
	if path == "" {
		l.Logger.Debug("no " + domain.SettingsFileName + " found, using defaults")
		settings := domain.DefaultSettings()
		settings.Root = filepath.Clean(cwd)
		settings.Cache.Dir = resolvePath(settings.Root, settings.Cache.Dir)
		return &settings, nil
	}

	var file SettingsFile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	settings, err := file.toSettings(resolveRoot(path, file.Root))
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	if err := settings.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.Logger.Debug("loaded settings from " + path)
	return settings, nil
}

func (f *SettingsFile) toSettings(root string) (*domain.Settings, error) {
	if f.Version != "" && f.Version != SupportedVersion {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "unsupported settings version"), "version", f.Version)
	}

	s := domain.DefaultSettings()
	s.Root = root
	s.Platform = f.Platform
	if f.Catalog != "" {
		s.Catalog = resolvePath(root, f.Catalog)
	}
	if f.AllowSnapshot != nil {
		s.AllowSnapshot = *f.AllowSnapshot
	}
	if f.Keep != nil {
		s.Keep = *f.Keep
	}

	if f.Solver.Strategy != "" {
		s.Solver.Strategy = domain.Strategy(f.Solver.Strategy)
	}
	if f.Solver.Timeout != "" {
		d, err := time.ParseDuration(f.Solver.Timeout)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "timeout", f.Solver.Timeout)
		}
		s.Solver.Timeout = d
	}
	if f.Solver.MaxNodes != nil {
		s.Solver.MaxNodes = *f.Solver.MaxNodes
	}

	if f.Cache.Enabled != nil {
		s.Cache.Enabled = *f.Cache.Enabled
	}
	if f.Cache.Dir != "" {
		s.Cache.Dir = f.Cache.Dir
	}
	s.Cache.Dir = resolvePath(root, s.Cache.Dir)

	return &s, nil
}

// findSettingsFile walks up from cwd and returns the first settings file found, or "".
func findSettingsFile(cwd string) string {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.SettingsFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	return resolvePath(configDir, configuredRoot)
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(root, path))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is chosen by the user
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.Wrap(domain.ErrConfigReadFailed, "settings file does not exist")
		}
		return zerr.Wrap(domain.ErrConfigReadFailed, err.Error())
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.Wrap(domain.ErrConfigParseFailed, err.Error())
	}

	return nil
}
