package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/repoutil/internal/ui/output"
	"go.trai.ch/repoutil/internal/ui/style"
)

// CausesKey is the attribute holding the []ErrorEntry below a logged error.
// PrettyHandler renders it as a "Caused by" list instead of a key.
const CausesKey = "causes"

const (
	attrIndent  = "  "
	causeHead   = "    " + style.Arrow + " "
	causeIndent = "      "
)

// subjectKeys are the attributes naming what a message is about. Their
// values are highlighted.
var subjectKeys = map[string]bool{
	"manifest": true,
	"package":  true,
	"path":     true,
	"dir":      true,
	"pattern":  true,
	"format":   true,
}

// field is an attribute with its group-qualified key.
type field struct {
	key   string
	value string
}

// PrettyHandler is a slog.Handler for terminals. The message line carries a
// level icon; attributes follow on their own lines with aligned keys, and a
// CausesKey attribute renders the error's cause chain.
type PrettyHandler struct {
	out    *termenv.Output
	mu     *sync.Mutex
	level  slog.Leveler
	fields []field
	prefix string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		mu:    &sync.Mutex{},
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	fields := slices.Clone(h.fields)
	var causes []ErrorEntry
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key == CausesKey && h.prefix == "" {
			if entries, ok := attr.Value.Any().([]ErrorEntry); ok {
				causes = entries
				return true
			}
		}
		fields = appendField(fields, h.prefix, attr)
		return true
	})

	icon, color := decoration(r.Level)
	lines := strings.Split(r.Message, "\n")

	var b strings.Builder
	b.WriteString(h.out.String(icon+lines[0]).Foreground(color).String() + "\n")
	for _, line := range lines[1:] {
		b.WriteString(attrIndent + line + "\n")
	}
	h.writeFields(&b, attrIndent, fields)

	if len(causes) > 0 {
		b.WriteString("\n" + attrIndent + "Caused by:\n")
		for _, cause := range causes {
			msg := strings.Split(cause.Message, "\n")
			b.WriteString(causeHead + msg[0] + "\n")
			for _, line := range msg[1:] {
				b.WriteString(causeIndent + line + "\n")
			}
			h.writeFields(&b, causeIndent, metadataFields(cause.Metadata))
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.WriteString(b.String())
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	fields := slices.Clone(h.fields)
	for _, attr := range attrs {
		fields = appendField(fields, h.prefix, attr)
	}

	clone := *h
	clone.fields = fields
	return &clone
}

// WithGroup returns a new Handler qualifying later attributes with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

// writeFields writes one line per field with the values aligned.
func (h *PrettyHandler) writeFields(b *strings.Builder, indent string, fields []field) {
	width := 0
	for _, f := range fields {
		width = max(width, len(f.key))
	}

	for _, f := range fields {
		value := h.out.String(f.value)
		if subjectKeys[lastSegment(f.key)] {
			value = value.Foreground(termenv.RGBColor(string(style.Iris))).Bold()
		}
		key := h.out.String(f.key + ":").Foreground(termenv.RGBColor(string(style.Slate)))
		pad := strings.Repeat(" ", width-len(f.key))
		b.WriteString(indent + key.String() + pad + " " + value.String() + "\n")
	}
}

func decoration(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross + " ", termenv.RGBColor(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning + " ", termenv.RGBColor(string(style.Yellow))
	default:
		return "", termenv.RGBColor(string(style.Slate))
	}
}

// appendField flattens attr into fields. Groups become dotted keys and
// empty attributes are dropped.
func appendField(fields []field, prefix string, attr slog.Attr) []field {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return fields
	}

	if attr.Value.Kind() == slog.KindGroup {
		inner := prefix
		if attr.Key != "" {
			inner = prefix + attr.Key + "."
		}
		for _, a := range attr.Value.Group() {
			fields = appendField(fields, inner, a)
		}
		return fields
	}

	return append(fields, field{key: prefix + attr.Key, value: attr.Value.String()})
}

// metadataFields returns error metadata as fields sorted by key.
func metadataFields(md map[string]any) []field {
	fields := make([]field, 0, len(md))
	for _, k := range slices.Sorted(maps.Keys(md)) {
		fields = append(fields, field{key: k, value: fmt.Sprint(md[k])})
	}
	return fields
}

func lastSegment(key string) string {
	if i := strings.LastIndexByte(key, '.'); i >= 0 {
		return key[i+1:]
	}
	return key
}
