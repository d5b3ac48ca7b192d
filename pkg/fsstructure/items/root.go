package items

import (
	"context"
	"sort"
	"strings"

	"github.com/ozum/fs-structure/pkg/fsstructure/core"
	"github.com/ozum/fs-structure/pkg/fsstructure/filesystem"
)

// Root anchors a tree to a base directory. It never creates or removes its
// own directory; it only drives its children.
type Root struct {
	Container
	flattened bool
}

// FlatOptions controls flattening.
type FlatOptions struct {
	// IncludeDirs keeps directories in the flattened list as markers.
	IncludeDirs bool
}

// NewRoot creates a root at path. An empty path is the process working directory.
func NewRoot(path string) (*Root, error) {
	resolved, err := resolvePath("", path)
	if err != nil {
		return nil, err
	}
	return &Root{Container: Container{item: item{path: resolved}}}, nil
}

// Type returns "Root".
func (r *Root) Type() string {
	return TypeRoot
}

// Create creates every child.
func (r *Root) Create(ctx context.Context, fsys filesystem.FileSystem, opts core.Options) error {
	return r.createChildren(ctx, fsys, opts)
}

// Remove removes every child.
func (r *Root) Remove(ctx context.Context, fsys filesystem.FileSystem, opts core.Options) error {
	return r.removeChildren(ctx, fsys, opts)
}

// Flat replaces the children with every leaf of the tree (and directory
// markers if asked), sorted case-insensitively by path. A Root is flattened
// once; later calls return it unchanged.
func (r *Root) Flat(opts FlatOptions) *Root {
	if r.flattened {
		return r
	}

	flat := make([]Item, 0, len(r.children))
	for _, child := range r.children {
		flat = collect(flat, child, opts.IncludeDirs)
	}

	sort.SliceStable(flat, func(i, j int) bool {
		return lessPath(flat[i].Path(), flat[j].Path())
	})

	r.children = flat
	r.flattened = true
	return r
}

// ToObject serializes the tree. After Flat, directory markers are written
// without their children since those are already listed.
func (r *Root) ToObject(opts ToObjectOptions) interface{} {
	childOpts := opts
	if r.flattened {
		childOpts.IncludeChildren = false
	}
	return r.toObject(opts, TypeRoot, childOpts)
}

// Export serializes the tree with all children.
func (r *Root) Export() map[string]interface{} {
	obj, _ := r.ToObject(ToObjectOptions{IncludeChildren: true}).(map[string]interface{})
	return obj
}

func collect(dst []Item, it Item, includeDirs bool) []Item {
	p, ok := it.(parent)
	if !ok {
		return append(dst, it)
	}
	if includeDirs && !isImplied(it) {
		dst = append(dst, it)
	}
	for _, child := range p.Children() {
		dst = collect(dst, child, includeDirs)
	}
	return dst
}

func isImplied(it Item) bool {
	dir, ok := it.(*Dir)
	return ok && dir.implied
}

// lessPath orders paths case-insensitively, breaking ties by plain comparison.
func lessPath(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}
