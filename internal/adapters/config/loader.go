// Package config provides the configuration loader for repoutil.
package config

import (
	"fmt"
	"path/filepath"

	"go.trai.ch/repoutil/internal/core/domain"
	"go.trai.ch/repoutil/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// DiscoverConfig walks up from dir until it finds a repoutil.yaml.
func (l *Loader) DiscoverConfig(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigNotFound.Error()), "dir", dir)
	}

	currentDir := abs
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := l.FS.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	// Callers match the bare sentinel with errors.Is to fall back to defaults.
	return "", domain.ErrConfigNotFound
}

// Load reads and validates the configuration file at path.
func (l *Loader) Load(path string) (*domain.Config, error) {
	var file Configfile
	if err := l.readAndUnmarshalYAML(path, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if file.Version != "" && file.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, expected %q", domain.ConfigFileName, file.Version, SupportedVersion))
	}

	policy, err := l.buildPolicy(file.Static)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	scan := domain.DefaultScanOptions()
	if file.Manifests.Patterns != nil {
		scan.Patterns = file.Manifests.Patterns
	}
	if file.Manifests.Ignore != nil {
		scan.Ignore = file.Manifests.Ignore
	}
	if err := scan.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return &domain.Config{
		Path:   path,
		Policy: policy,
		Scan:   scan,
	}, nil
}

func (l *Loader) buildPolicy(entries []StaticPackageDTO) (*domain.PackagePolicy, error) {
	names := make([]string, 0, len(entries))
	allowed := make(map[string][]string, len(entries))
	seen := make(map[string]int, len(entries))

	for i, entry := range entries {
		if entry.Name == "" {
			return nil, zerr.With(domain.ErrMissingPackageName, "index", i)
		}
		if first, ok := seen[entry.Name]; ok {
			err := zerr.With(domain.ErrDuplicateStaticPackage, "package", entry.Name)
			err = zerr.With(err, "first_index", first)
			return nil, zerr.With(err, "duplicate_index", i)
		}
		seen[entry.Name] = i

		if len(entry.Versions) == 0 {
			l.Logger.Warn(fmt.Sprintf("static package %s has no allowed versions; every reference to it will be reported", entry.Name))
		}

		names = append(names, entry.Name)
		allowed[entry.Name] = entry.Versions
	}

	return domain.NewPackagePolicy(names, allowed), nil
}

func (l *Loader) readAndUnmarshalYAML(path string, target *Configfile) error {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
