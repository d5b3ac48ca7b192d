package items

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/ozum/fs-structure/pkg/fsstructure/core"
	"github.com/ozum/fs-structure/pkg/fsstructure/filesystem"
)

// File is a regular file with text or byte content.
type File struct {
	item
	content string
}

// NewFile creates a file at path relative to parent.
func NewFile(parent, path, content string) (*File, error) {
	resolved, err := resolvePath(parent, path)
	if err != nil {
		return nil, err
	}
	return &File{item: item{path: resolved}, content: content}, nil
}

// Type returns "File".
func (f *File) Type() string {
	return TypeFile
}

// Content returns the file's content.
func (f *File) Content() string {
	return f.content
}

// Create writes the file, creating its parent directory first.
// Without overwrite an existing file fails with *core.AlreadyExistsError.
func (f *File) Create(ctx context.Context, fsys filesystem.FileSystem, opts core.Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := mkdirOf(fsys, f.path); err != nil {
		return err
	}

	if err := fsys.WriteFile(f.path, []byte(f.content), DefaultFileMode, !opts.Overwrite); err != nil {
		if !opts.Overwrite && errors.Is(err, fs.ErrExist) {
			return &core.AlreadyExistsError{Path: f.path, Err: err}
		}
		return fmt.Errorf("failed to write file: %w", err)
	}

	opts.Logger.Debug().Str("path", f.path).Int("size", len(f.content)).Msg("file created")
	return nil
}

// Remove deletes the file. A missing file is not an error.
func (f *File) Remove(ctx context.Context, fsys filesystem.FileSystem, opts core.Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return removeLeaf(fsys, f.path, opts)
}

// ToObject returns the content string.
func (f *File) ToObject(ToObjectOptions) interface{} {
	return f.content
}
