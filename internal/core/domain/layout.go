package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the repository configuration file.
	ConfigFileName = "repoutil.yaml"

	// StateDirName is the name of the internal state directory.
	StateDirName = ".repoutil"

	// CacheDirName is the name of the reference cache directory.
	CacheDirName = "cache"

	// DefaultManifestPattern matches the manifests checked when no pattern is configured.
	DefaultManifestPattern = "project.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

var (
	defaultIgnores    = []string{"node_modules", "bin", "obj"}
	alwaysSkippedDirs = []string{".git", ".jj", StateDirName}
)

// DefaultCachePath returns the default path for the reference cache.
// It joins .repoutil and cache.
func DefaultCachePath() string {
	return filepath.Join(StateDirName, CacheDirName)
}
