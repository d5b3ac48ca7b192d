package items

import (
	"context"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/ozum/fs-structure/pkg/fsstructure/core"
	"github.com/ozum/fs-structure/pkg/fsstructure/filesystem"
)

// Container holds an ordered list of child items. It is embedded by Dir and Root.
type Container struct {
	item
	children []Item
}

// Add appends a child. Children keep the order they were added in.
func (c *Container) Add(child Item) {
	c.children = append(c.children, child)
}

// Children returns the container's children.
func (c *Container) Children() []Item {
	return c.children
}

func (c *Container) createChildren(ctx context.Context, fsys filesystem.FileSystem, opts core.Options) error {
	return fanOut(ctx, opts.Concurrency, c.children, func(ctx context.Context, child Item) error {
		return child.Create(ctx, fsys, opts)
	})
}

func (c *Container) removeChildren(ctx context.Context, fsys filesystem.FileSystem, opts core.Options) error {
	return fanOut(ctx, opts.Concurrency, c.children, func(ctx context.Context, child Item) error {
		return child.Remove(ctx, fsys, opts)
	})
}

// toObject maps each child's slash-separated relative path to its serialized form.
func (c *Container) toObject(opts ToObjectOptions, typeName string, childOpts ToObjectOptions) interface{} {
	if !opts.IncludeChildren {
		return map[string]interface{}{KeyType: typeName}
	}

	obj := make(map[string]interface{}, len(c.children))
	c.addEntries(obj, c.path, childOpts)
	return obj
}

// addEntries writes the serialized children into obj keyed relative to base.
// Implied directories are not entries, so their children are written in their place.
func (c *Container) addEntries(obj map[string]interface{}, base string, opts ToObjectOptions) {
	for _, child := range c.children {
		if isImplied(child) {
			child.(*Dir).addEntries(obj, base, opts)
			continue
		}
		obj[relative(base, child.Path())] = child.ToObject(opts)
	}
}

func relative(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// parent is implemented by items that own children.
type parent interface {
	Item
	Children() []Item
}

// fanOut runs fn for every child concurrently and waits for all of them.
// After the first failure the remaining children see a cancelled context and
// skip their work; the first error is returned once every goroutine settled.
func fanOut(ctx context.Context, limit int, children []Item, fn func(context.Context, Item) error) error {
	if len(children) == 0 {
		return ctx.Err()
	}

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, child := range children {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, child)
		})
	}
	return g.Wait()
}
