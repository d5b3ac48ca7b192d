package items

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/ozum/fs-structure/pkg/fsstructure/core"
	"github.com/ozum/fs-structure/pkg/fsstructure/filesystem"
)

// Symlink is a symbolic link. LinkType ("file", "dir", "junction") is a
// platform hint that is recorded and serialized but not needed on POSIX.
type Symlink struct {
	item
	target   string
	linkType string
}

// NewSymlink creates a link at path relative to parent pointing at target.
func NewSymlink(parent, path, target, linkType string) (*Symlink, error) {
	resolved, err := resolvePath(parent, path)
	if err != nil {
		return nil, err
	}
	if target == "" {
		return nil, &core.InvalidDescriptorError{Path: resolved, Reason: "symlink target is required"}
	}
	return &Symlink{item: item{path: resolved}, target: target, linkType: linkType}, nil
}

// Type returns "Symlink".
func (s *Symlink) Type() string {
	return TypeSymlink
}

// Target returns the link target.
func (s *Symlink) Target() string {
	return s.target
}

// LinkType returns the link type hint, if any.
func (s *Symlink) LinkType() string {
	return s.linkType
}

// Create makes the link. With overwrite any existing entry at the path is
// unlinked first; without it an existing entry fails with *core.AlreadyExistsError.
func (s *Symlink) Create(ctx context.Context, fsys filesystem.FileSystem, opts core.Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if opts.Overwrite {
		if err := fsys.Unlink(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to replace %s: %w", s.path, err)
		}
	}
	if err := mkdirOf(fsys, s.path); err != nil {
		return err
	}

	if err := fsys.Symlink(s.target, s.path); err != nil {
		if !errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("failed to create symlink: %w", err)
		}
		if !opts.Overwrite {
			return &core.AlreadyExistsError{Path: s.path, Err: err}
		}
	}

	opts.Logger.Debug().Str("path", s.path).Str("target", s.target).Msg("symlink created")
	return nil
}

// Remove deletes the link itself, never its target.
func (s *Symlink) Remove(ctx context.Context, fsys filesystem.FileSystem, opts core.Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return removeLeaf(fsys, s.path, opts)
}

// ToObject returns a Symlink descriptor. An empty link type is omitted.
func (s *Symlink) ToObject(ToObjectOptions) interface{} {
	obj := map[string]interface{}{
		KeyType:   TypeSymlink,
		KeyTarget: s.target,
	}
	if s.linkType != "" {
		obj[KeyLinkType] = s.linkType
	}
	return obj
}
