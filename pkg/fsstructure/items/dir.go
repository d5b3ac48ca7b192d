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

// Dir is a directory that is created and removed along with its children.
//
// An implied Dir stands for the leading segments of a slash-joined key, such
// as "bin" in "bin/index.js". It is created like any other directory but is
// not an entry of its own: Flat leaves it out, and Remove deletes it only when
// it is owned, that is nested in a described directory, and then only once empty.
type Dir struct {
	Container
	implied bool
	owned   bool
}

// NewDir creates a directory at path relative to parent.
func NewDir(parent, path string) (*Dir, error) {
	resolved, err := resolvePath(parent, path)
	if err != nil {
		return nil, err
	}
	return &Dir{Container: Container{item: item{path: resolved}}}, nil
}

// NewImpliedDir creates an implied directory at path relative to parent.
// owned is set when parent is itself removed by Remove.
func NewImpliedDir(parent, path string, owned bool) (*Dir, error) {
	d, err := NewDir(parent, path)
	if err != nil {
		return nil, err
	}
	d.implied = true
	d.owned = owned
	return d, nil
}

// Type returns "Dir".
func (d *Dir) Type() string {
	return TypeDir
}

// Implied reports whether the directory was only implied by a longer path.
func (d *Dir) Implied() bool {
	return d.implied
}

// Removable reports whether Remove deletes the directory itself.
func (d *Dir) Removable() bool {
	return !d.implied || d.owned
}

// Describe turns an implied directory into a described one. Implied
// directories below it become owned.
func (d *Dir) Describe() {
	d.implied = false
	d.ownImplied()
}

func (d *Dir) ownImplied() {
	for _, child := range d.children {
		if sub, ok := child.(*Dir); ok && sub.implied && !sub.owned {
			sub.owned = true
			sub.ownImplied()
		}
	}
}

// Create makes the directory (succeeding if it exists) and then its children.
func (d *Dir) Create(ctx context.Context, fsys filesystem.FileSystem, opts core.Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fsys.MkdirAll(d.path, DefaultDirMode); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	opts.Logger.Debug().Str("path", d.path).Msg("directory created")

	return d.createChildren(ctx, fsys, opts)
}

// Remove deletes the children and then the directory itself. Entries not
// described by the tree make it fail with *core.NotEmptyError unless
// opts.IgnoreNotEmpty is set, in which case the directory is kept.
// An implied directory holding such entries is kept without error; its
// described ancestor reports them.
func (d *Dir) Remove(ctx context.Context, fsys filesystem.FileSystem, opts core.Options) error {
	if err := d.removeChildren(ctx, fsys, opts); err != nil {
		return err
	}
	if !d.Removable() {
		return nil
	}

	if err := fsys.RemoveDir(d.path); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case errors.Is(err, filesystem.ErrNotEmpty):
			if !d.implied && !opts.IgnoreNotEmpty {
				return &core.NotEmptyError{Path: d.path, Err: err}
			}
			opts.Logger.Debug().Str("path", d.path).Msg("kept non-empty directory")
		default:
			return fmt.Errorf("failed to remove directory %s: %w", d.path, err)
		}
	} else {
		opts.Logger.Debug().Str("path", d.path).Msg("directory removed")
	}

	if opts.PruneEnabled() {
		return pruneEmptyDirs(fsys, filepath.Dir(d.path), *opts.RmUp, opts)
	}
	return nil
}

// ToObject serializes the children, or returns a Dir marker.
func (d *Dir) ToObject(opts ToObjectOptions) interface{} {
	return d.toObject(opts, TypeDir, opts)
}
