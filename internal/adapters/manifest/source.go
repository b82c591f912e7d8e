package manifest

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/repoutil/internal/core/domain"
	"go.trai.ch/repoutil/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.ManifestSource = (*Source)(nil)

// Source implements ports.ManifestSource on the local filesystem.
type Source struct {
	walker *Walker
	cache  ports.ReferenceCache
	logger ports.Logger
}

// NewSource creates a new Source.
func NewSource(walker *Walker, cache ports.ReferenceCache, logger ports.Logger) *Source {
	return &Source{
		walker: walker,
		cache:  cache,
		logger: logger,
	}
}

// Enumerate returns the manifests under root in lexical path order.
func (s *Source) Enumerate(root string, scan domain.ScanOptions) ([]domain.ManifestID, error) {
	return s.walker.Enumerate(root, scan)
}

// ExtractReferences reads and parses one manifest.
func (s *Source) ExtractReferences(root string, id domain.ManifestID) ([]domain.PackageReference, error) {
	data, err := s.read(root, id)
	if err != nil {
		return nil, err
	}
	return parseManifest(id, data)
}

// Load enumerates the manifests under root and extracts their references.
// Extraction runs concurrently; results are returned in enumeration order.
func (s *Source) Load(ctx context.Context, root string, scan domain.ScanOptions) ([]domain.Manifest, error) {
	ids, err := s.Enumerate(root, scan)
	if err != nil {
		return nil, err
	}

	manifests := make([]domain.Manifest, len(ids))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, id := range ids {
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			refs, err := s.extractCached(root, id, scan.CacheDir)
			if err != nil {
				return err
			}
			// Each goroutine owns its slot, so no locking is needed.
			manifests[i] = domain.Manifest{ID: id, References: refs}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return manifests, nil
}

func (s *Source) extractCached(root string, id domain.ManifestID, cacheDir string) ([]domain.PackageReference, error) {
	data, err := s.read(root, id)
	if err != nil {
		return nil, err
	}

	if refs, ok := s.cache.Get(cacheDir, ParserVersion, data); ok {
		return refs, nil
	}

	refs, err := parseManifest(id, data)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Put(cacheDir, ParserVersion, data, refs); err != nil {
		s.logger.Warn("reference cache not updated for " + id.String() + ": " + err.Error())
	}
	return refs, nil
}

func (s *Source) read(root string, id domain.ManifestID) ([]byte, error) {
	path := filepath.Join(root, filepath.FromSlash(id.String()))
	// #nosec G304 -- path is a manifest found under the scan root
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "manifest", id.String())
	}
	return data, nil
}

func parseManifest(id domain.ManifestID, data []byte) ([]domain.PackageReference, error) {
	refs, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "manifest", id.String())
	}
	return refs, nil
}
