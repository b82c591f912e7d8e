package ports

import "go.trai.ch/repoutil/internal/core/domain"

// ReferenceCache stores extracted references keyed by extractor version and
// manifest content. dir is provided per request; an empty dir disables the
// cache. Entries written under another version are misses.
//
//go:generate mockgen -source=reference_cache.go -destination=mocks/mock_reference_cache.go -package=mocks
type ReferenceCache interface {
	// Get returns the cached references for the given content.
	// The second result is false on a cache miss.
	Get(dir, version string, content []byte) ([]domain.PackageReference, bool)

	// Put stores the references extracted from the given content.
	Put(dir, version string, content []byte, refs []domain.PackageReference) error
}
