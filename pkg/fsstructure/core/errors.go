package core

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrNotEmpty reports that a directory still holds entries when it is removed.
// It is shared by the filesystem layer and NotEmptyError.
var ErrNotEmpty = errors.New("directory not empty")

// InvalidPathError is returned when a child item is given an absolute path.
type InvalidPathError struct {
	Parent string
	Path   string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("children cannot have absolute paths. Parent: %q Path: %q", e.Parent, e.Path)
}

// AlreadyExistsError is returned when create finds an existing entry
// and overwriting is disabled.
type AlreadyExistsError struct {
	Path string
	Err  error
}

func (e *AlreadyExistsError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("path already exists: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("path already exists: %s", e.Path)
}

func (e *AlreadyExistsError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return fs.ErrExist
}

// NotEmptyError is returned when a directory described by the tree still has
// entries after its children were removed.
type NotEmptyError struct {
	Path string
	Err  error
}

func (e *NotEmptyError) Error() string {
	return fmt.Sprintf("directory not empty: %s", e.Path)
}

func (e *NotEmptyError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrNotEmpty
}

// UnknownTypeError is returned when a tagged descriptor names a "$type"
// that is neither File nor Symlink.
type UnknownTypeError struct {
	Path string
	Type interface{}
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown item type %v for %q", e.Type, e.Path)
}

// InvalidDescriptorError is returned when a tagged descriptor is malformed.
type InvalidDescriptorError struct {
	Path   string
	Reason string
}

func (e *InvalidDescriptorError) Error() string {
	return fmt.Sprintf("invalid descriptor for %q: %s", e.Path, e.Reason)
}

// UnsupportedContentError is returned when a file value cannot be turned into content.
type UnsupportedContentError struct {
	Path  string
	Value interface{}
}

func (e *UnsupportedContentError) Error() string {
	return fmt.Sprintf("unsupported file content of type %T for %q", e.Value, e.Path)
}
