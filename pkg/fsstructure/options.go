package fsstructure

import (
	"github.com/rs/zerolog"

	"github.com/ozum/fs-structure/pkg/fsstructure/core"
)

// Option configures a single call.
type Option func(*core.Options)

// WithOverwrite controls whether create replaces existing files and links. Default true.
func WithOverwrite(overwrite bool) Option {
	return func(o *core.Options) {
		o.Overwrite = overwrite
	}
}

// WithCwd sets the base directory trees are resolved against.
func WithCwd(cwd string) Option {
	return func(o *core.Options) {
		o.Cwd = cwd
	}
}

// WithRmUp enables pruning of emptied ancestor directories on remove, up to
// but excluding boundary. An empty boundary means the cwd; a relative one is
// resolved against it.
func WithRmUp(boundary string) Option {
	return func(o *core.Options) {
		o.RmUp = &boundary
	}
}

// WithIgnoreNotEmpty keeps directories that still hold entries instead of failing.
func WithIgnoreNotEmpty(ignore bool) Option {
	return func(o *core.Options) {
		o.IgnoreNotEmpty = ignore
	}
}

// WithIncludeDirs keeps directory markers in flattened output.
func WithIncludeDirs(include bool) Option {
	return func(o *core.Options) {
		o.IncludeDirs = include
	}
}

// WithIgnoreJunk controls whether load skips OS junk files. Default true.
func WithIgnoreJunk(ignore bool) Option {
	return func(o *core.Options) {
		o.IgnoreJunk = ignore
	}
}

// WithConcurrency limits the goroutines started per directory. Zero means no limit.
func WithConcurrency(n int) Option {
	return func(o *core.Options) {
		o.Concurrency = n
	}
}

// WithLogger overrides the instance logger for one call.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *core.Options) {
		o.Logger = logger
	}
}
