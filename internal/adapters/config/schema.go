package config

// SettingsFile represents the structure of the pkgplan.yaml settings file.
// Pointer fields distinguish an omitted key from a zero value.
type SettingsFile struct {
	Version       string    `yaml:"version"`
	Root          string    `yaml:"root"`
	Catalog       string    `yaml:"catalog"`
	Platform      string    `yaml:"platform"`
	AllowSnapshot *bool     `yaml:"allowSnapshot"`
	Keep          *bool     `yaml:"keep"`
	Solver        SolverDTO `yaml:"solver"`
	Cache         CacheDTO  `yaml:"cache"`
}

// SolverDTO represents the solver section of the settings file.
type SolverDTO struct {
	Strategy string `yaml:"strategy"`
	Timeout  string `yaml:"timeout"`
	MaxNodes *int   `yaml:"maxNodes"`
}

// CacheDTO represents the cache section of the settings file.
type CacheDTO struct {
	Enabled *bool  `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}
