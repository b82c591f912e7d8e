// Package manifest provides the filesystem manifest source: it walks a
// source tree for manifest files and extracts their package references.
package manifest

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/repoutil/internal/core/domain"
	"go.trai.ch/zerr"
)

// Walker finds manifest files under a root directory.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Manifests yields the manifests under root as root-relative, slash-separated
// IDs. Directories matched by scan's ignore rules are skipped, the root
// itself never is. Iteration stops at the first walk error, which is yielded.
func (w *Walker) Manifests(root string, scan domain.ScanOptions) iter.Seq2[domain.ManifestID, error] {
	return func(yield func(domain.ManifestID, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && scan.IsIgnoredDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if !scan.IsManifest(d.Name()) {
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			if !yield(domain.ManifestID(filepath.ToSlash(rel)), nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", zerr.With(zerr.Wrap(err, domain.ErrManifestWalkFailed.Error()), "root", root))
		}
	}
}

// Enumerate returns every manifest under root in lexical path order.
func (w *Walker) Enumerate(root string, scan domain.ScanOptions) ([]domain.ManifestID, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, zerr.With(domain.ErrRootNotFound, "root", root)
	}

	var ids []domain.ManifestID
	for id, err := range w.Manifests(root, scan) {
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	// WalkDir orders entries per directory; sorting the full paths makes the
	// order independent of how directories and files interleave.
	slices.Sort(ids)
	return ids, nil
}
