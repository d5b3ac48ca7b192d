package fsstructure

import (
	"github.com/ozum/fs-structure/pkg/fsstructure/items"
)

// Tree is the plain description of a file tree. Keys are slash-separated
// relative paths. Values are nested Trees (directories), file contents, or
// descriptors built with File and Symlink.
type Tree = map[string]any

// SymlinkOptions describes a symbolic link.
type SymlinkOptions struct {
	// Target is the path the link points to. Required.
	Target string
	// Type is an optional link type hint: "file", "dir" or "junction".
	Type string
}

// Symlink returns a symlink descriptor for use as a Tree value.
func Symlink(opts SymlinkOptions) Tree {
	desc := Tree{
		items.KeyType:   items.TypeSymlink,
		items.KeyTarget: opts.Target,
	}
	if opts.Type != "" {
		desc[items.KeyLinkType] = opts.Type
	}
	return desc
}

// File returns a file descriptor holding data.
func File(data any) Tree {
	return Tree{
		items.KeyType: items.TypeFile,
		items.KeyData: data,
	}
}
