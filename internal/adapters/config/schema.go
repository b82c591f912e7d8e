package config

// SupportedVersion is the configuration schema version understood by the loader.
const SupportedVersion = "1"

// Configfile represents the structure of the repoutil.yaml configuration file.
type Configfile struct {
	Version   string             `yaml:"version"`
	Manifests ManifestsDTO       `yaml:"manifests"`
	Static    []StaticPackageDTO `yaml:"static"`
}

// ManifestsDTO selects which files are scanned. A nil list keeps the default.
type ManifestsDTO struct {
	Patterns []string `yaml:"patterns"`
	Ignore   []string `yaml:"ignore"`
}

// StaticPackageDTO declares a package whose versions are pinned to a set.
type StaticPackageDTO struct {
	Name     string   `yaml:"name"`
	Versions []string `yaml:"versions"`
}
