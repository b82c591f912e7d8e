package domain

import "fmt"

// DiagnosticKind classifies an inconsistency.
type DiagnosticKind string

const (
	// KindVersionMismatch is reported when a floating package is referenced
	// with a version that differs from its first-seen baseline.
	KindVersionMismatch DiagnosticKind = "version_mismatch"
	// KindDisallowedVersion is reported when a static package is referenced
	// with a version outside its approved set.
	KindDisallowedVersion DiagnosticKind = "disallowed_version"
)

// Occurrence is a version observed in a specific manifest.
type Occurrence struct {
	Version  string     `json:"version"`
	Manifest ManifestID `json:"manifest"`
}

// Diagnostic describes one inconsistent package reference.
type Diagnostic struct {
	Kind     DiagnosticKind `json:"kind"`
	Package  string         `json:"package"`
	Version  string         `json:"version"`
	Manifest ManifestID     `json:"manifest"`
	// Baseline is the first-seen occurrence the reference was compared
	// against. Only set for KindVersionMismatch.
	Baseline *Occurrence `json:"baseline,omitempty"`
}

// String renders the diagnostic as a single line.
func (d Diagnostic) String() string {
	switch d.Kind {
	case KindVersionMismatch:
		return fmt.Sprintf("package %s version differs in: %s at %s, %s at %s",
			d.Package, d.Manifest, d.Version, d.Baseline.Manifest, d.Baseline.Version)
	case KindDisallowedVersion:
		return fmt.Sprintf("package %s at version %s in %s is not a valid version",
			d.Package, d.Version, d.Manifest)
	default:
		return fmt.Sprintf("package %s at version %s in %s: %s", d.Package, d.Version, d.Manifest, d.Kind)
	}
}

// Lines renders the diagnostic in its console form. Continuation lines are
// indented with a tab.
func (d Diagnostic) Lines() []string {
	if d.Kind == KindDisallowedVersion {
		return []string{fmt.Sprintf("Package %s at version %s in %s is not a valid version",
			d.Package, d.Version, d.Manifest)}
	}
	if d.Kind != KindVersionMismatch {
		return []string{d.String()}
	}
	return []string{
		fmt.Sprintf("Package %s version differs in:", d.Package),
		fmt.Sprintf("\t%s at %s", d.Manifest, d.Version),
		fmt.Sprintf("\t%s at %s", d.Baseline.Manifest, d.Baseline.Version),
	}
}
