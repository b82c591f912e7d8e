// Package checker implements the package version consistency check.
//
// A package is either static or floating. Static packages are whitelisted in
// the policy and every reference must name one of their approved versions.
// Floating packages must resolve to a single version across all manifests:
// the first reference seen becomes the baseline and every later reference is
// compared against it.
package checker

import (
	"go.trai.ch/repoutil/internal/core/domain"
	"go.trai.ch/zerr"
)

// Checker verifies package references against a policy.
type Checker struct{}

// New creates a new Checker.
func New() *Checker {
	return &Checker{}
}

// Check runs one verification pass over manifests in the given order.
//
// Inconsistencies are collected into the returned verdict and never stop the
// pass. An error is returned only for an internal invariant violation, in
// which case the verdict is nil.
func (c *Checker) Check(manifests []domain.Manifest, policy *domain.PackagePolicy) (*domain.Verdict, error) {
	run := NewRun(policy)
	for _, m := range manifests {
		run.BeginManifest()
		for _, ref := range m.References {
			if _, err := run.Check(m.ID, ref); err != nil {
				return nil, err
			}
		}
	}
	return run.Verdict(), nil
}

// floatingRecord is the first-seen occurrence of a floating package.
type floatingRecord struct {
	version  string
	manifest domain.ManifestID
}

// Run holds the state of a single verification pass. It is not safe for
// concurrent use; references must be fed in a deterministic order.
type Run struct {
	policy   *domain.PackagePolicy
	floating map[string]floatingRecord
	verdict  *domain.Verdict
}

// NewRun starts a verification pass against policy.
func NewRun(policy *domain.PackagePolicy) *Run {
	return &Run{
		policy:   policy,
		floating: make(map[string]floatingRecord),
		verdict:  &domain.Verdict{},
	}
}

// BeginManifest counts a manifest as processed. Manifests without
// references still count.
func (r *Run) BeginManifest() {
	r.verdict.Manifests++
}

// Check classifies ref and applies the static or floating check.
// It reports whether the reference passed.
func (r *Run) Check(id domain.ManifestID, ref domain.PackageReference) (bool, error) {
	r.verdict.References++

	if r.policy.IsStatic(ref.Name) {
		return r.checkStatic(id, ref)
	}
	return r.checkFloating(id, ref), nil
}

// Verdict returns the aggregate result so far.
func (r *Run) Verdict() *domain.Verdict {
	return r.verdict
}

func (r *Run) checkStatic(id domain.ManifestID, ref domain.PackageReference) (bool, error) {
	versions, ok := r.policy.AllowedVersions(ref.Name)
	if !ok {
		err := zerr.With(domain.ErrStaticPackageUnconfigured, "package", ref.Name)
		return false, zerr.With(err, "manifest", id.String())
	}

	if versions.Contains(ref.Version) {
		return true, nil
	}

	r.verdict.Record(domain.Diagnostic{
		Kind:     domain.KindDisallowedVersion,
		Package:  ref.Name,
		Version:  ref.Version,
		Manifest: id,
	})
	return false, nil
}

func (r *Run) checkFloating(id domain.ManifestID, ref domain.PackageReference) bool {
	baseline, seen := r.floating[ref.Name]
	if !seen {
		r.floating[ref.Name] = floatingRecord{version: ref.Version, manifest: id}
		return true
	}

	if baseline.version == ref.Version {
		return true
	}

	// The baseline stays put: later mismatches are always reported against
	// the first occurrence.
	r.verdict.Record(domain.Diagnostic{
		Kind:     domain.KindVersionMismatch,
		Package:  ref.Name,
		Version:  ref.Version,
		Manifest: id,
		Baseline: &domain.Occurrence{Version: baseline.version, Manifest: baseline.manifest},
	})
	return false
}
