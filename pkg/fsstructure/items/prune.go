package items

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/ozum/fs-structure/pkg/fsstructure/core"
	"github.com/ozum/fs-structure/pkg/fsstructure/filesystem"
)

// pruneEmptyDirs walks up from start removing empty directories. It stops at
// the first non-empty directory or when it reaches boundary, which is kept.
// Directories outside boundary are never touched.
func pruneEmptyDirs(fsys filesystem.FileSystem, start, boundary string, opts core.Options) error {
	boundary = filepath.Clean(boundary)
	for dir := filepath.Clean(start); isWithin(dir, boundary); dir = filepath.Dir(dir) {
		err := fsys.RemoveDir(dir)
		switch {
		case err == nil:
			opts.Logger.Trace().Str("path", dir).Msg("pruned empty directory")
		case errors.Is(err, fs.ErrNotExist):
			// A sibling got here first.
		case errors.Is(err, filesystem.ErrNotEmpty):
			return nil
		default:
			return fmt.Errorf("failed to prune directory %s: %w", dir, err)
		}
	}
	return nil
}

// isWithin reports whether path is strictly below boundary.
func isWithin(path, boundary string) bool {
	rel, err := filepath.Rel(boundary, path)
	if err != nil || rel == "." || filepath.IsAbs(rel) {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
