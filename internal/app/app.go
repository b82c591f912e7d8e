// Package app implements the application layer for repoutil.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/repoutil/internal/adapters/report" //nolint:depguard // Wired in app layer
	"go.trai.ch/repoutil/internal/core/domain"
	"go.trai.ch/repoutil/internal/core/ports"
	"go.trai.ch/repoutil/internal/engine/checker"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	source       ports.ManifestSource
	checker      *checker.Checker
	logger       ports.Logger
	watcher      ports.Watcher
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	source ports.ManifestSource,
	chk *checker.Checker,
	log ports.Logger,
	w ports.Watcher,
) *App {
	return &App{
		configLoader: loader,
		source:       source,
		checker:      chk,
		logger:       log,
		watcher:      w,
	}
}

// VerifyOptions configures a verification run.
type VerifyOptions struct {
	// Root is the directory to scan. Defaults to the working directory.
	Root string
	// ConfigPath is an explicit config file. When empty the config is
	// discovered from Root upward.
	ConfigPath string
	// Format selects the report format (text or json).
	Format string
	// Patterns and Ignore override the configured scan options when set.
	Patterns []string
	Ignore   []string
	// CacheDir enables the reference cache.
	CacheDir string
	// Output receives the report. Defaults to os.Stdout.
	Output io.Writer
}

func (o VerifyOptions) root() string {
	if o.Root == "" {
		return "."
	}
	return o.Root
}

func (o VerifyOptions) output() io.Writer {
	if o.Output == nil {
		return os.Stdout
	}
	return o.Output
}

// Verify checks every manifest under the root against the package policy
// and reports the result. It returns domain.ErrInconsistentPackages when any
// reference failed its check.
func (a *App) Verify(ctx context.Context, opts VerifyOptions) error {
	sink, err := report.New(opts.Format, opts.output())
	if err != nil {
		return err
	}

	cfg, scan, err := a.resolve(opts)
	if err != nil {
		return err
	}

	manifests, err := a.source.Load(ctx, opts.root(), scan)
	if err != nil {
		return zerr.Wrap(err, "failed to load manifests")
	}

	verdict, err := a.checker.Check(manifests, cfg.Policy)
	if err != nil {
		return err
	}

	for _, d := range verdict.Diagnostics {
		if err := sink.Report(d); err != nil {
			return err
		}
	}
	if err := sink.Finish(verdict); err != nil {
		return err
	}

	if !verdict.OK() {
		return domain.ErrInconsistentPackages
	}
	return nil
}

// resolve loads the configuration and applies the command line overrides.
func (a *App) resolve(opts VerifyOptions) (*domain.Config, domain.ScanOptions, error) {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return nil, domain.ScanOptions{}, err
	}

	scan := cfg.Scan
	if len(opts.Patterns) > 0 {
		scan.Patterns = opts.Patterns
	}
	if len(opts.Ignore) > 0 {
		scan.Ignore = opts.Ignore
	}
	scan.CacheDir = opts.CacheDir

	if err := scan.Validate(); err != nil {
		return nil, domain.ScanOptions{}, err
	}
	return cfg, scan, nil
}

func (a *App) loadConfig(opts VerifyOptions) (*domain.Config, error) {
	if opts.ConfigPath != "" {
		return a.configLoader.Load(opts.ConfigPath)
	}

	path, err := a.configLoader.DiscoverConfig(opts.root())
	if err != nil {
		if errors.Is(err, domain.ErrConfigNotFound) {
			return domain.DefaultConfig(), nil
		}
		return nil, err
	}
	return a.configLoader.Load(path)
}

// isConfigFile reports whether path names the configuration file in use.
func isConfigFile(path, configPath string) bool {
	if filepath.Base(path) == domain.ConfigFileName {
		return true
	}
	if configPath == "" {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	cfgAbs, err := filepath.Abs(configPath)
	if err != nil {
		return false
	}
	return abs == cfgAbs
}
