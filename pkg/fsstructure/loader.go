package fsstructure

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ozum/fs-structure/pkg/fsstructure/core"
	"github.com/ozum/fs-structure/pkg/fsstructure/filesystem"
	"github.com/ozum/fs-structure/pkg/fsstructure/items"
)

// loadRoot reads the directory at root into an item graph. Links are
// captured by their target and never followed.
func loadRoot(ctx context.Context, fsys filesystem.ReadFS, root string, opts core.Options) (*items.Root, error) {
	r, err := items.NewRoot(root)
	if err != nil {
		return nil, err
	}
	if err := loadDir(ctx, fsys, r, opts); err != nil {
		return nil, err
	}
	return r, nil
}

func loadDir(ctx context.Context, fsys filesystem.ReadFS, parent container, opts core.Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := fsys.ReadDir(parent.Path())
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", parent.Path(), err)
	}

	for _, entry := range entries {
		if opts.IgnoreJunk && filesystem.IsJunk(entry.Name) {
			opts.Logger.Trace().Str("name", entry.Name).Msg("skipped junk")
			continue
		}

		path := filepath.Join(parent.Path(), entry.Name)
		var child items.Item

		switch entry.Type {
		case filesystem.EntryDir:
			dir, err := items.NewDir(parent.Path(), entry.Name)
			if err != nil {
				return err
			}
			if err := loadDir(ctx, fsys, dir, opts); err != nil {
				return err
			}
			child = dir

		case filesystem.EntrySymlink:
			target, err := fsys.Readlink(path)
			if err != nil {
				return fmt.Errorf("failed to read symlink: %w", err)
			}
			if child, err = items.NewSymlink(parent.Path(), entry.Name, target, ""); err != nil {
				return err
			}

		default:
			data, err := fsys.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			if child, err = items.NewFile(parent.Path(), entry.Name, string(data)); err != nil {
				return err
			}
		}

		parent.Add(child)
	}
	return nil
}
