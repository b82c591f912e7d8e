// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/repoutil/internal/core/domain"
)

// ManifestSource enumerates manifest files under a root directory and
// extracts the package references they declare.
//
//go:generate mockgen -source=manifest_source.go -destination=mocks/mock_manifest_source.go -package=mocks
type ManifestSource interface {
	// Enumerate returns the manifests under root in a deterministic order.
	Enumerate(root string, scan domain.ScanOptions) ([]domain.ManifestID, error)

	// ExtractReferences returns the references declared by one manifest, in
	// declaration order.
	ExtractReferences(root string, id domain.ManifestID) ([]domain.PackageReference, error)

	// Load enumerates and extracts every manifest under root. The result is
	// in enumeration order regardless of how extraction is scheduled.
	Load(ctx context.Context, root string, scan domain.ScanOptions) ([]domain.Manifest, error)
}
