package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/repoutil/internal/core/domain"
	"go.trai.ch/repoutil/internal/core/ports"
	"go.trai.ch/repoutil/internal/ui/output"
	"go.trai.ch/repoutil/internal/ui/style"
)

var _ ports.DiagnosticSink = (*TextSink)(nil)

// TextSink writes diagnostics as they arrive, followed by a summary line.
type TextSink struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	reported int
}

// NewTextSink creates a TextSink writing to w. Colors are used only when w
// is a terminal and NO_COLOR is unset.
func NewTextSink(w io.Writer) *TextSink {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.ProfileFor(w))
	return &TextSink{w: w, renderer: r}
}

// Report writes one diagnostic. The first line carries the failure icon,
// detail lines keep their tab indentation.
func (s *TextSink) Report(d domain.Diagnostic) error {
	lines := d.Lines()
	fail := s.renderer.NewStyle().Foreground(style.Red)
	detail := style.Detail(s.renderer)

	var b strings.Builder
	b.WriteString(fail.Render(style.Cross+" "+lines[0]) + "\n")
	for _, line := range lines[1:] {
		b.WriteString("\t" + detail.Render(strings.TrimPrefix(line, "\t")) + "\n")
	}

	if _, err := io.WriteString(s.w, b.String()); err != nil {
		return writeFailed(err)
	}
	s.reported++
	return nil
}

// Finish writes the summary line.
func (s *TextSink) Finish(v *domain.Verdict) error {
	var line string
	if v.OK() {
		verb := "are"
		if v.References == 1 {
			verb = "is"
		}
		line = s.renderer.NewStyle().Foreground(style.Green).Bold(true).Render(
			fmt.Sprintf("%s %s across %s %s consistent", style.Check,
				plural(v.References, "reference"), plural(v.Manifests, "manifest"), verb))
	} else {
		line = s.renderer.NewStyle().Foreground(style.Red).Bold(true).Render(
			fmt.Sprintf("%s %s in %s across %s", style.Cross,
				pluralWord(len(v.Diagnostics), "inconsistency", "inconsistencies"),
				plural(v.References, "reference"), plural(v.Manifests, "manifest")))
	}

	prefix := ""
	if s.reported > 0 {
		prefix = "\n"
	}
	if _, err := io.WriteString(s.w, prefix+line+"\n"); err != nil {
		return writeFailed(err)
	}
	return nil
}

func plural(n int, word string) string {
	return pluralWord(n, word, word+"s")
}

func pluralWord(n int, singular, pluralForm string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, pluralForm)
}
