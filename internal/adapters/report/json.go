package report

import (
	"encoding/json"
	"io"

	"go.trai.ch/repoutil/internal/core/domain"
	"go.trai.ch/repoutil/internal/core/ports"
)

var _ ports.DiagnosticSink = (*JSONSink)(nil)

// Document is the JSON report written by JSONSink.
type Document struct {
	OK          bool             `json:"ok"`
	Manifests   int              `json:"manifests"`
	References  int              `json:"references"`
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
}

// DiagnosticJSON is a diagnostic with its rendered message.
type DiagnosticJSON struct {
	domain.Diagnostic
	Message string `json:"message"`
}

// JSONSink buffers diagnostics and writes a single document on Finish.
type JSONSink struct {
	w           io.Writer
	diagnostics []DiagnosticJSON
}

// NewJSONSink creates a JSONSink writing to w.
func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{w: w, diagnostics: []DiagnosticJSON{}}
}

// Report buffers d.
func (s *JSONSink) Report(d domain.Diagnostic) error {
	s.diagnostics = append(s.diagnostics, DiagnosticJSON{Diagnostic: d, Message: d.String()})
	return nil
}

// Finish writes the document.
func (s *JSONSink) Finish(v *domain.Verdict) error {
	enc := json.NewEncoder(s.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	doc := Document{
		OK:          v.OK(),
		Manifests:   v.Manifests,
		References:  v.References,
		Diagnostics: s.diagnostics,
	}
	if err := enc.Encode(doc); err != nil {
		return writeFailed(err)
	}
	return nil
}
