// Package filesystem is the narrow filesystem surface the item graph works through.
package filesystem

import (
	"io/fs"
)

// EntryType discriminates directory listing entries.
type EntryType int

const (
	// EntryFile is a regular file (or anything that is neither a dir nor a link).
	EntryFile EntryType = iota
	// EntryDir is a directory.
	EntryDir
	// EntrySymlink is a symbolic link.
	EntrySymlink
)

// String returns the string representation of the EntryType
func (t EntryType) String() string {
	switch t {
	case EntryDir:
		return "directory"
	case EntrySymlink:
		return "symlink"
	default:
		return "file"
	}
}

// Entry is one item of a directory listing. Links are not followed.
type Entry struct {
	Name string
	Type EntryType
}

// ReadFS defines the read side used by the loader.
type ReadFS interface {
	ReadFile(name string) ([]byte, error)
	Readlink(name string) (string, error)
	ReadDir(path string) ([]Entry, error)
	Lstat(name string) (fs.FileInfo, error)
}

// WriteFS defines the mutations used by create and remove.
type WriteFS interface {
	// MkdirAll succeeds when the directory already exists.
	MkdirAll(path string, perm fs.FileMode) error
	// RemoveDir removes an empty directory. It fails with ErrNotEmpty otherwise.
	RemoveDir(path string) error
	// WriteFile truncates an existing file unless exclusive is set, in which
	// case an existing file fails with fs.ErrExist.
	WriteFile(name string, data []byte, perm fs.FileMode, exclusive bool) error
	// Unlink removes a file or link, never a directory.
	Unlink(name string) error
	Symlink(oldname, newname string) error
	// TempDir allocates a new uniquely named directory under dir.
	TempDir(dir, prefix string) (string, error)
}

// FileSystem combines read and write operations.
type FileSystem interface {
	ReadFS
	WriteFS
}
