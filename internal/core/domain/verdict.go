package domain

// Verdict is the aggregate result of one verification run.
type Verdict struct {
	// Diagnostics holds every inconsistency in the order references were
	// processed.
	Diagnostics []Diagnostic
	// Manifests is the number of manifests processed.
	Manifests int
	// References is the number of references processed.
	References int
}

// OK reports whether every reference passed its check.
func (v *Verdict) OK() bool {
	return len(v.Diagnostics) == 0
}

// Record appends a diagnostic and marks the verdict as failed.
func (v *Verdict) Record(d Diagnostic) {
	v.Diagnostics = append(v.Diagnostics, d)
}
