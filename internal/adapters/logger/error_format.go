package logger

import (
	"errors"
	"log/slog"
	"maps"
	"slices"
)

// messager describes an error that can report its own message without the
// chain, as zerr errors do.
type messager interface {
	Message() string
}

// metadataer describes an error carrying structured metadata.
type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one layer of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the error chain. zerr layers contribute their own
// message and metadata; the first plain error ends the walk with its full text.
// Layers without a message only carry metadata, which is merged into the
// layer above them, or the one below for the outermost error.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var carried map[string]any
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: carried})
			break
		}

		var md map[string]any
		if mder, ok := current.(metadataer); ok && len(mder.Metadata()) > 0 {
			md = mder.Metadata()
		}

		if m.Message() == "" {
			switch {
			case len(entries) > 0:
				entries[len(entries)-1].Metadata = merge(entries[len(entries)-1].Metadata, md)
			default:
				carried = merge(carried, md)
			}
			current = errors.Unwrap(current)
			continue
		}

		entries = append(entries, ErrorEntry{Message: m.Message(), Metadata: merge(carried, md)})
		carried = nil
		current = errors.Unwrap(current)
	}
	if len(entries) == 0 && err != nil {
		entries = append(entries, ErrorEntry{Message: err.Error(), Metadata: carried})
	}
	return entries
}

// errorArgs returns the slog arguments for the outermost entry's metadata,
// sorted by key, followed by the remaining chain under CausesKey.
func errorArgs(entries []ErrorEntry) []any {
	head := entries[0]
	args := make([]any, 0, len(head.Metadata)+1)
	for _, k := range slices.Sorted(maps.Keys(head.Metadata)) {
		args = append(args, slog.Any(k, head.Metadata[k]))
	}
	if len(entries) > 1 {
		args = append(args, slog.Any(CausesKey, entries[1:]))
	}
	return args
}

func merge(dst, src map[string]any) map[string]any {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	maps.Copy(dst, src)
	return dst
}
