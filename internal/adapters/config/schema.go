package config

// Predexfile represents the structure of the predex.yaml configuration file.
type Predexfile struct {
	Version     string                `yaml:"version"`
	GenDir      string                `yaml:"genDir"`
	Dx          []string              `yaml:"dx"`
	Environment map[string]string     `yaml:"environment"`
	Libraries   map[string]LibraryDTO `yaml:"libraries"`
}

// LibraryDTO represents a compiled library declaration in the configuration.
type LibraryDTO struct {
	Output string   `yaml:"output"`
	Deps   []string `yaml:"deps"`
}
