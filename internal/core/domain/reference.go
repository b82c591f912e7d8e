package domain

// PackageReference is a dependency declaration as found in one manifest file.
type PackageReference struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ManifestID identifies a manifest file for attribution in diagnostics.
// It is the path relative to the scan root, using forward slashes.
type ManifestID string

// String returns the identifier as a string.
func (id ManifestID) String() string {
	return string(id)
}

// Manifest is one enumerated manifest file together with the references it
// declares, in declaration order.
type Manifest struct {
	ID         ManifestID
	References []PackageReference
}
