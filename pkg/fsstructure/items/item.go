// Package items implements the item graph: files, symlinks and the containers
// holding them, and how each of them is created, removed and serialized.
package items

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/ozum/fs-structure/pkg/fsstructure/core"
	"github.com/ozum/fs-structure/pkg/fsstructure/filesystem"
)

// Item is one node of the tree: a file, a symlink or a container.
type Item interface {
	// Path returns the absolute path of the item.
	Path() string

	// Type returns the item's type name, e.g. "File", "Dir".
	Type() string

	// Create realizes the item on the filesystem.
	Create(ctx context.Context, fsys filesystem.FileSystem, opts core.Options) error

	// Remove deletes the item from the filesystem. opts.RmUp, when set, must be absolute.
	Remove(ctx context.Context, fsys filesystem.FileSystem, opts core.Options) error

	// ToObject serializes the item into its plain tree form.
	ToObject(opts ToObjectOptions) interface{}
}

// ToObjectOptions controls container serialization.
type ToObjectOptions struct {
	// IncludeChildren serializes descendants; otherwise containers become a type marker.
	IncludeChildren bool
}

type item struct {
	path string
}

func (i *item) Path() string {
	return i.path
}

// resolvePath joins path onto the parent path and makes it absolute.
// An empty parent means path is the root of a tree.
func resolvePath(parent, path string) (string, error) {
	if parent != "" {
		if filepath.IsAbs(path) {
			return "", &core.InvalidPathError{Parent: parent, Path: path}
		}
		path = filepath.Join(parent, path)
	}
	resolved, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %q: %w", path, err)
	}
	return resolved, nil
}

// mkdirOf creates the parent directory of path.
func mkdirOf(fsys filesystem.FileSystem, path string) error {
	if err := fsys.MkdirAll(filepath.Dir(path), DefaultDirMode); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}
	return nil
}

// removeLeaf unlinks a file or symlink and prunes empty ancestors when asked to.
func removeLeaf(fsys filesystem.FileSystem, path string, opts core.Options) error {
	if err := fsys.Unlink(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	opts.Logger.Debug().Str("path", path).Msg("removed")

	if opts.PruneEnabled() {
		return pruneEmptyDirs(fsys, filepath.Dir(path), *opts.RmUp, opts)
	}
	return nil
}
