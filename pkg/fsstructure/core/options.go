// Package core holds the types shared by the item graph, the filesystem layer
// and the public facade: error types and operation options.
package core

import (
	"github.com/rs/zerolog"
)

// Options configures create, remove, flat and load calls.
// Each call reads only the fields that apply to it.
type Options struct {
	// Overwrite replaces existing files and links on create.
	Overwrite bool

	// Cwd is the base directory of the tree. Empty means the process working directory.
	Cwd string

	// RmUp is the boundary up to which empty ancestor directories are pruned
	// after removal. Nil disables pruning; an empty string means Cwd.
	RmUp *string

	// IgnoreNotEmpty keeps non-empty directories on remove instead of failing.
	IgnoreNotEmpty bool

	// IncludeDirs keeps directory markers when flattening.
	IncludeDirs bool

	// IgnoreJunk skips OS junk files such as .DS_Store when loading.
	IgnoreJunk bool

	// Concurrency limits the goroutines started per container. Zero means no limit.
	Concurrency int

	Logger zerolog.Logger
}

// DefaultOptions returns the options used when a caller passes none.
func DefaultOptions() Options {
	return Options{
		Overwrite:  true,
		IgnoreJunk: true,
		Logger:     zerolog.Nop(),
	}
}

// PruneEnabled reports whether empty ancestors should be removed.
func (o Options) PruneEnabled() bool {
	return o.RmUp != nil
}
