package domain

import "go.trai.ch/zerr"

var (
	// ErrInconsistentPackages is returned when a verification run produced
	// one or more diagnostics.
	ErrInconsistentPackages = zerr.New("package references are inconsistent")

	// ErrStaticPackageUnconfigured is returned when a package is declared
	// static but the policy has no approved versions for it.
	ErrStaticPackageUnconfigured = zerr.New("static package has no allowed versions configured")

	// ErrConfigNotFound is returned when no configuration file can be found.
	ErrConfigNotFound = zerr.New("could not find " + ConfigFileName)

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrMissingPackageName is returned when a static package entry has no name.
	ErrMissingPackageName = zerr.New("static package entry is missing a name")

	// ErrDuplicateStaticPackage is returned when a static package is declared twice.
	ErrDuplicateStaticPackage = zerr.New("duplicate static package")

	// ErrRootNotFound is returned when the scan root does not exist or is not a directory.
	ErrRootNotFound = zerr.New("scan root is not a directory")

	// ErrManifestWalkFailed is returned when the manifest tree cannot be walked.
	ErrManifestWalkFailed = zerr.New("failed to walk manifest tree")

	// ErrManifestReadFailed is returned when a manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestParseFailed is returned when a manifest file cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrInvalidPattern is returned when a manifest or ignore glob is malformed.
	ErrInvalidPattern = zerr.New("invalid glob pattern")

	// ErrUnknownReportFormat is returned when an unsupported report format is requested.
	ErrUnknownReportFormat = zerr.New("unknown report format, expected 'text' or 'json'")

	// ErrReportWriteFailed is returned when the report cannot be written.
	ErrReportWriteFailed = zerr.New("failed to write report")

	// ErrCacheCreateFailed is returned when the reference cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create reference cache directory")

	// ErrCacheReadFailed is returned when a reference cache entry cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read reference cache entry")

	// ErrCacheWriteFailed is returned when a reference cache entry cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write reference cache entry")

	// ErrWatcherStartFailed is returned when the file watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")
)
