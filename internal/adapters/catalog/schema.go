package catalog

// Manifest is the structure of a catalog manifest file.
type Manifest struct {
	Packages  []PackageDTO      `yaml:"packages"`
	Installed map[string]string `yaml:"installed"`
	// Local lists "id-version" tokens that are downloaded but not installed.
	Local []string `yaml:"local"`
}

// PackageDTO represents one package version in a manifest.
type PackageDTO struct {
	ID           string   `yaml:"id"`
	Version      string   `yaml:"version"`
	Platforms    []string `yaml:"platforms"`
	Snapshot     bool     `yaml:"snapshot"`
	Dependencies []string `yaml:"dependencies"`
	Conflicts    []string `yaml:"conflicts"`
}
