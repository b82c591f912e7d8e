package ports

import "go.trai.ch/repoutil/internal/core/domain"

// DiagnosticSink delivers the diagnostics of a verification run to the
// caller's destination.
//
//go:generate mockgen -source=diagnostic_sink.go -destination=mocks/mock_diagnostic_sink.go -package=mocks
type DiagnosticSink interface {
	// Report is called once per diagnostic, in processing order.
	Report(d domain.Diagnostic) error

	// Finish is called once with the final verdict after all diagnostics
	// have been reported.
	Finish(v *domain.Verdict) error
}
