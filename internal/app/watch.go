package app

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"go.trai.ch/repoutil/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/repoutil/internal/core/domain"
	"go.trai.ch/repoutil/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// WatchOptions configures watch mode.
type WatchOptions struct {
	VerifyOptions
	// Debounce is the quiet period after the last change before verifying
	// again. Defaults to watcher.DefaultDebounceWindow.
	Debounce time.Duration
}

// Watch verifies once and then again after every debounced change to a
// manifest or the configuration file, until ctx is done. Failed runs are
// reported and watching continues.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	window := opts.Debounce
	if window <= 0 {
		window = watcher.DefaultDebounceWindow
	}

	var scan atomic.Pointer[domain.ScanOptions]
	scan.Store(a.scanFor(opts.VerifyOptions))

	a.verifyAndLog(ctx, opts.VerifyOptions)

	spec := ports.WatchSpec{
		Root: opts.root(),
		Skip: func(name string) bool { return scan.Load().IsIgnoredDir(name) },
	}
	configPath := a.configFile(opts.VerifyOptions)
	if configPath != "" && !isWithin(opts.root(), configPath) {
		spec.Files = []string{configPath}
	}
	if err := a.watcher.Start(ctx, spec); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	a.logger.Info("watching " + opts.root() + " for changes")

	trigger := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(window, func([]string) {
		select {
		case trigger <- struct{}{}:
		default:
		}
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for event := range a.watcher.Events() {
			if isRelevant(event.Path, opts.root(), configPath, scan.Load()) {
				debouncer.Add(event.Path)
			}
		}
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-trigger:
				a.logger.Info("change detected, verifying again")
				scan.Store(a.scanFor(opts.VerifyOptions))
				a.verifyAndLog(gctx, opts.VerifyOptions)
			}
		}
	})

	return g.Wait()
}

// verifyAndLog runs Verify and logs failures other than inconsistencies,
// which the report already shows.
func (a *App) verifyAndLog(ctx context.Context, opts VerifyOptions) {
	err := a.Verify(ctx, opts)
	if err == nil || errors.Is(err, domain.ErrInconsistentPackages) || ctx.Err() != nil {
		return
	}
	a.logger.Error(err)
}

// scanFor returns the scan options a run with opts would use, falling back
// to the defaults while the configuration is broken.
func (a *App) scanFor(opts VerifyOptions) *domain.ScanOptions {
	_, scan, err := a.resolve(opts)
	if err != nil {
		def := domain.DefaultScanOptions()
		return &def
	}
	return &scan
}

// configFile returns the config file a run with opts reads, or "" when
// the defaults are used.
func (a *App) configFile(opts VerifyOptions) string {
	if opts.ConfigPath != "" {
		return opts.ConfigPath
	}
	path, err := a.configLoader.DiscoverConfig(opts.root())
	if err != nil {
		return ""
	}
	return path
}

// isRelevant reports whether a change to path can alter the verdict: the
// config file, or a manifest below root outside every ignored directory.
func isRelevant(path, root, configPath string, scan *domain.ScanOptions) bool {
	if isConfigFile(path, configPath) {
		return true
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || !filepath.IsLocal(rel) {
		return false
	}
	dirs := strings.Split(filepath.ToSlash(rel), "/")
	for _, dir := range dirs[:len(dirs)-1] {
		if scan.IsIgnoredDir(dir) {
			return false
		}
	}
	return scan.IsManifest(filepath.Base(path))
}

// isWithin reports whether path lies below root.
func isWithin(root, path string) bool {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absRoot, absPath)
	return err == nil && filepath.IsLocal(rel)
}
