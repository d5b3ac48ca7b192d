// Package fsstructure converts between plain tree descriptions and the
// filesystem. A Tree maps slash-separated relative paths to file contents,
// nested Trees (directories) or descriptors:
//
//	tree := fsstructure.Tree{
//		"README.md": "# demo",
//		"src": fsstructure.Tree{
//			"main.go": "package main",
//			"current": fsstructure.Symlink(fsstructure.SymlinkOptions{Target: "./main.go"}),
//		},
//	}
//	root, err := fsstructure.Create(ctx, tree, fsstructure.WithCwd(dir))
//	...
//	loaded, err := fsstructure.Load(ctx, root.Path())
//
// Loaded trees are flattened, so they compare equal to Flat(tree).
package fsstructure

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ozum/fs-structure/pkg/fsstructure/core"
	"github.com/ozum/fs-structure/pkg/fsstructure/filesystem"
	"github.com/ozum/fs-structure/pkg/fsstructure/items"
)

// TempDirPrefix prefixes directories allocated by TempDir.
const TempDirPrefix = "fs-structure-"

// FSStructure runs tree operations against one filesystem.
type FSStructure struct {
	fs     filesystem.FileSystem
	logger zerolog.Logger
}

// InstanceOption configures an FSStructure.
type InstanceOption func(*FSStructure)

// WithFileSystem sets the filesystem operations run against. Default is the OS filesystem.
func WithFileSystem(fsys filesystem.FileSystem) InstanceOption {
	return func(f *FSStructure) {
		f.fs = fsys
	}
}

// WithInstanceLogger sets the logger used by every call of the instance.
func WithInstanceLogger(logger zerolog.Logger) InstanceOption {
	return func(f *FSStructure) {
		f.logger = logger
	}
}

// New creates an FSStructure. Without options it works on the OS filesystem and logs nothing.
func New(opts ...InstanceOption) *FSStructure {
	f := &FSStructure{
		fs:     filesystem.NewOSFileSystem(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FileSystem returns the filesystem the instance works on.
func (f *FSStructure) FileSystem() filesystem.FileSystem {
	return f.fs
}

func (f *FSStructure) options(opts []Option) core.Options {
	o := core.DefaultOptions()
	o.Logger = f.logger
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Create materializes tree under the cwd and returns the built graph.
// Without WithOverwrite(false) it is idempotent.
func (f *FSStructure) Create(ctx context.Context, tree Tree, opts ...Option) (*items.Root, error) {
	o := f.options(opts)
	root, err := Build(tree, o.Cwd)
	if err != nil {
		return nil, err
	}

	o.Logger.Info().Str("cwd", root.Path()).Bool("overwrite", o.Overwrite).Msg("creating tree")
	if err := root.Create(ctx, f.fs, o); err != nil {
		return nil, err
	}
	return root, nil
}

// Remove deletes the entries of tree under the cwd. Entries already gone are
// skipped. See WithRmUp and WithIgnoreNotEmpty.
func (f *FSStructure) Remove(ctx context.Context, tree Tree, opts ...Option) error {
	o := f.options(opts)
	root, err := Build(tree, o.Cwd)
	if err != nil {
		return err
	}

	if o.RmUp != nil {
		boundary := *o.RmUp
		if !filepath.IsAbs(boundary) {
			boundary = filepath.Join(root.Path(), boundary)
		}
		boundary = filepath.Clean(boundary)
		o.RmUp = &boundary
	}

	logEvent := o.Logger.Info().Str("cwd", root.Path()).Bool("ignoreNotEmpty", o.IgnoreNotEmpty)
	if o.RmUp != nil {
		logEvent = logEvent.Str("rmUp", *o.RmUp)
	}
	logEvent.Msg("removing tree")

	return root.Remove(ctx, f.fs, o)
}

// Load reads the directory at path (resolved against the cwd) into a flattened Tree.
func (f *FSStructure) Load(ctx context.Context, path string, opts ...Option) (Tree, error) {
	o := f.options(opts)
	if !filepath.IsAbs(path) {
		cwd, err := filepath.Abs(o.Cwd)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve cwd: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	o.Logger.Info().Str("path", path).Bool("ignoreJunk", o.IgnoreJunk).Msg("loading tree")
	root, err := loadRoot(ctx, f.fs, path, o)
	if err != nil {
		return nil, err
	}
	return root.Flat(items.FlatOptions{IncludeDirs: o.IncludeDirs}).Export(), nil
}

// Flat returns tree with every leaf at the top level, keyed by its full
// relative path. WithIncludeDirs adds directory markers.
func (f *FSStructure) Flat(tree Tree, opts ...Option) (Tree, error) {
	o := f.options(opts)
	root, err := Build(tree, o.Cwd)
	if err != nil {
		return nil, err
	}
	return root.Flat(items.FlatOptions{IncludeDirs: o.IncludeDirs}).Export(), nil
}

// Plan lists the steps Create, or Remove when planOpts.Remove is set, would perform.
func (f *FSStructure) Plan(tree Tree, planOpts items.PlanOptions, opts ...Option) ([]items.Step, error) {
	o := f.options(opts)
	root, err := Build(tree, o.Cwd)
	if err != nil {
		return nil, err
	}
	return root.Plan(planOpts)
}

// TempDir allocates a new, uniquely named directory under the OS temp dir.
func (f *FSStructure) TempDir() (string, error) {
	dir, err := f.fs.TempDir(os.TempDir(), TempDirPrefix)
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	f.logger.Debug().Str("path", dir).Msg("temp dir created")
	return dir, nil
}

var std = New()

// Create materializes tree on the OS filesystem. See FSStructure.Create.
func Create(ctx context.Context, tree Tree, opts ...Option) (*items.Root, error) {
	return std.Create(ctx, tree, opts...)
}

// Remove deletes tree from the OS filesystem. See FSStructure.Remove.
func Remove(ctx context.Context, tree Tree, opts ...Option) error {
	return std.Remove(ctx, tree, opts...)
}

// Load reads a directory of the OS filesystem. See FSStructure.Load.
func Load(ctx context.Context, path string, opts ...Option) (Tree, error) {
	return std.Load(ctx, path, opts...)
}

// Flat flattens tree. See FSStructure.Flat.
func Flat(tree Tree, opts ...Option) (Tree, error) {
	return std.Flat(tree, opts...)
}

// Plan lists the steps of a create or remove. See FSStructure.Plan.
func Plan(tree Tree, planOpts items.PlanOptions, opts ...Option) ([]items.Step, error) {
	return std.Plan(tree, planOpts, opts...)
}

// TempDir allocates a new directory under the OS temp dir.
func TempDir() (string, error) {
	return std.TempDir()
}
