// Package cas implements a content addressed cache for extracted package
// references.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/repoutil/internal/core/domain"
	"go.trai.ch/repoutil/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReferenceCache = (*Store)(nil)

// entry is the on-disk form of a cached extraction.
type entry struct {
	Version    string                    `json:"version"`
	Size       int                       `json:"size"`
	References []domain.PackageReference `json:"references"`
}

// Store implements ports.ReferenceCache using a file-per-content strategy.
// Entries are keyed by the xxhash of the extractor version and the manifest
// bytes.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get returns the references cached for content. Missing, unreadable and
// corrupt entries are all reported as a miss.
func (s *Store) Get(dir, version string, content []byte) ([]domain.PackageReference, bool) {
	if dir == "" {
		return nil, false
	}

	refs, err := s.read(dir, version, content)
	if err != nil {
		return nil, false
	}
	return refs, true
}

// Put stores the references extracted from content.
func (s *Store) Put(dir, version string, content []byte, refs []domain.PackageReference) error {
	if dir == "" {
		return nil
	}

	data, err := json.MarshalIndent(entry{Version: version, Size: len(content), References: refs}, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "dir", dir)
	}

	filename := Filename(dir, version, content)
	tmp := filename + ".tmp"
	//nolint:gosec // Path is constructed from the cache directory and a content hash
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	if err := os.Rename(tmp, filename); err != nil {
		_ = os.Remove(tmp)
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	return nil
}

func (s *Store) read(dir, version string, content []byte) ([]domain.PackageReference, error) {
	//nolint:gosec // Path is constructed from the cache directory and a content hash
	data, err := os.ReadFile(Filename(dir, version, content))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
	}
	if e.Version != version {
		return nil, zerr.With(domain.ErrCacheReadFailed, "reason", "version mismatch")
	}
	// Hash collisions between contents of different length are rejected.
	if e.Size != len(content) {
		return nil, zerr.With(domain.ErrCacheReadFailed, "reason", "size mismatch")
	}
	return e.References, nil
}

// Filename returns the path of the cache entry for content extracted by
// the given version under dir.
func Filename(dir, version string, content []byte) string {
	d := xxhash.New()
	_, _ = d.WriteString(version)
	_, _ = d.Write([]byte{0})
	_, _ = d.Write(content)
	return filepath.Join(dir, strconv.FormatUint(d.Sum64(), 16)+".json")
}
