// Package report implements diagnostic sinks that render verification
// results for people (text) and tools (json).
package report

import (
	"io"

	"go.trai.ch/repoutil/internal/core/domain"
	"go.trai.ch/repoutil/internal/core/ports"
	"go.trai.ch/zerr"
)

// Supported report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New returns the sink for format writing to w. An empty format selects text.
func New(format string, w io.Writer) (ports.DiagnosticSink, error) {
	switch format {
	case "", FormatText:
		return NewTextSink(w), nil
	case FormatJSON:
		return NewJSONSink(w), nil
	default:
		return nil, zerr.With(domain.ErrUnknownReportFormat, "format", format)
	}
}

func writeFailed(err error) error {
	return zerr.Wrap(err, domain.ErrReportWriteFailed.Error())
}
