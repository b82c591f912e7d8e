package domain

import (
	"path"
	"slices"

	"go.trai.ch/zerr"
)

// ScanOptions controls which files are treated as manifests.
type ScanOptions struct {
	// Patterns are glob patterns matched against a file's base name.
	Patterns []string
	// Ignore are glob patterns matched against directory names. Matching
	// directories are not descended into.
	Ignore []string
	// CacheDir is the reference cache directory. Empty disables the cache.
	CacheDir string
}

// DefaultScanOptions returns the scan options used when no configuration
// overrides them.
func DefaultScanOptions() ScanOptions {
	return ScanOptions{
		Patterns: []string{DefaultManifestPattern},
		Ignore:   slices.Clone(defaultIgnores),
	}
}

// IsManifest reports whether a file with the given base name is a manifest.
func (o ScanOptions) IsManifest(name string) bool {
	return matchAny(o.Patterns, name)
}

// IsIgnoredDir reports whether a directory with the given name is skipped.
func (o ScanOptions) IsIgnoredDir(name string) bool {
	if slices.Contains(alwaysSkippedDirs, name) {
		return true
	}
	return matchAny(o.Ignore, name)
}

// Validate checks that every pattern is a well-formed glob.
func (o ScanOptions) Validate() error {
	for _, pattern := range slices.Concat(o.Patterns, o.Ignore) {
		if _, err := path.Match(pattern, ""); err != nil {
			return zerr.With(ErrInvalidPattern, "pattern", pattern)
		}
	}
	return nil
}

func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if matched, _ := path.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// Config is the loaded repository configuration.
type Config struct {
	// Path is the file the configuration was read from. Empty for the
	// default configuration.
	Path   string
	Policy *PackagePolicy
	Scan   ScanOptions
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Policy: EmptyPackagePolicy(),
		Scan:   DefaultScanOptions(),
	}
}
