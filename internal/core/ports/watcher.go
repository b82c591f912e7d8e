package ports

import (
	"context"
	"iter"
)

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpCreate indicates a file or directory was created.
	OpCreate WatchOp = iota
	// OpWrite indicates a file was modified.
	OpWrite
	// OpRemove indicates a file or directory was removed.
	OpRemove
	// OpRename indicates a file or directory was renamed.
	OpRename
)

// WatchEvent represents a file system event from the watcher.
type WatchEvent struct {
	// Path is the path of the file or directory that changed.
	Path string
	// Operation is the type of change that occurred.
	Operation WatchOp
}

// WatchSpec describes what a Watcher observes.
type WatchSpec struct {
	// Root is watched recursively.
	Root string
	// Skip reports whether a directory with the given name is left out.
	// Nil uses the default ignore rules. It may be called after Start
	// returns, whenever a new directory appears.
	Skip func(name string) bool
	// Files are watched through their parent directory, which is added
	// without recursion. Used for a config file outside Root.
	Files []string
}

// Watcher defines the interface for watching file system changes.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching spec.Root recursively and the parent
	// directory of every file in spec.Files.
	Start(ctx context.Context, spec WatchSpec) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of file system events.
	Events() iter.Seq[WatchEvent]
}
