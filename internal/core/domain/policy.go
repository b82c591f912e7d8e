package domain

import (
	"maps"
	"slices"
)

// VersionSet is a set of approved version strings.
type VersionSet map[string]struct{}

// NewVersionSet creates a VersionSet from the given versions.
func NewVersionSet(versions ...string) VersionSet {
	set := make(VersionSet, len(versions))
	for _, v := range versions {
		set[v] = struct{}{}
	}
	return set
}

// Contains reports whether version is a member of the set.
func (s VersionSet) Contains(version string) bool {
	_, ok := s[version]
	return ok
}

// Sorted returns the versions in lexical order.
func (s VersionSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// PackagePolicy describes which packages are static and which versions are
// approved for each of them. A PackagePolicy is immutable once built.
type PackagePolicy struct {
	staticNames map[string]struct{}
	allowed     map[string]VersionSet
}

// NewPackagePolicy builds a policy from the set of static package names and
// the approved versions per static package.
//
// Every key of allowed is expected to be a member of staticNames. Loaders are
// responsible for that; the policy itself does not reject a static name that
// has no approved versions, so that the checker can report it as an internal
// invariant violation.
func NewPackagePolicy(staticNames []string, allowed map[string][]string) *PackagePolicy {
	p := &PackagePolicy{
		staticNames: make(map[string]struct{}, len(staticNames)),
		allowed:     make(map[string]VersionSet, len(allowed)),
	}
	for _, name := range staticNames {
		p.staticNames[name] = struct{}{}
	}
	for name, versions := range allowed {
		p.allowed[name] = NewVersionSet(versions...)
	}
	return p
}

// EmptyPackagePolicy returns a policy without static packages. Every package
// is floating under it.
func EmptyPackagePolicy() *PackagePolicy {
	return NewPackagePolicy(nil, nil)
}

// IsStatic reports whether name is whitelisted for multiple versions.
func (p *PackagePolicy) IsStatic(name string) bool {
	_, ok := p.staticNames[name]
	return ok
}

// AllowedVersions returns the approved versions for a static package.
// The second result is false when no entry exists for name.
func (p *PackagePolicy) AllowedVersions(name string) (VersionSet, bool) {
	versions, ok := p.allowed[name]
	return versions, ok
}

// StaticNames returns the static package names in lexical order.
func (p *PackagePolicy) StaticNames() []string {
	return slices.Sorted(maps.Keys(p.staticNames))
}
