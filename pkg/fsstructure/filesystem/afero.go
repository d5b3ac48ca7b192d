package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"syscall"

	"github.com/spf13/afero"

	"github.com/ozum/fs-structure/pkg/fsstructure/core"
)

// ErrNotEmpty is returned by RemoveDir when the directory still has entries.
var ErrNotEmpty = core.ErrNotEmpty

// AferoFileSystem implements FileSystem on top of an afero.Fs.
// Symlinks need a backend implementing afero.Linker and afero.LinkReader (OsFs does, MemMapFs does not).
type AferoFileSystem struct {
	fs afero.Fs
}

// NewAferoFileSystem wraps the given afero filesystem.
func NewAferoFileSystem(fsys afero.Fs) *AferoFileSystem {
	return &AferoFileSystem{fs: fsys}
}

// NewOSFileSystem creates a filesystem backed by the operating system.
func NewOSFileSystem() *AferoFileSystem {
	return NewAferoFileSystem(afero.NewOsFs())
}

// NewMemFileSystem creates a volatile in-memory filesystem. It has no symlink support.
func NewMemFileSystem() *AferoFileSystem {
	return NewAferoFileSystem(afero.NewMemMapFs())
}

// Afero returns the wrapped afero filesystem.
func (a *AferoFileSystem) Afero() afero.Fs {
	return a.fs
}

// MkdirAll implements WriteFS
func (a *AferoFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

// RemoveDir implements WriteFS
func (a *AferoFileSystem) RemoveDir(path string) error {
	info, err := a.Lstat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "rmdir", Path: path, Err: syscall.ENOTDIR}
	}

	// MemMapFs removes non-empty directories, so check before removing.
	entries, err := afero.ReadDir(a.fs, path)
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		return &fs.PathError{Op: "rmdir", Path: path, Err: ErrNotEmpty}
	}

	if err := a.fs.Remove(path); err != nil {
		if errors.Is(err, syscall.ENOTEMPTY) || errors.Is(err, syscall.EEXIST) {
			return &fs.PathError{Op: "rmdir", Path: path, Err: ErrNotEmpty}
		}
		return err
	}
	return nil
}

// WriteFile implements WriteFS
func (a *AferoFileSystem) WriteFile(name string, data []byte, perm fs.FileMode, exclusive bool) error {
	if !exclusive {
		return afero.WriteFile(a.fs, name, data, perm)
	}

	f, err := a.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	_, err = f.Write(data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

// Unlink implements WriteFS
func (a *AferoFileSystem) Unlink(name string) error {
	info, err := a.Lstat(name)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: "unlink", Path: name, Err: syscall.EISDIR}
	}
	return a.fs.Remove(name)
}

// Symlink implements WriteFS
func (a *AferoFileSystem) Symlink(oldname, newname string) error {
	linker, ok := a.fs.(afero.Linker)
	if !ok {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: afero.ErrNoSymlink}
	}
	return linker.SymlinkIfPossible(oldname, newname)
}

// TempDir implements WriteFS
func (a *AferoFileSystem) TempDir(dir, prefix string) (string, error) {
	return afero.TempDir(a.fs, dir, prefix)
}

// ReadFile implements ReadFS
func (a *AferoFileSystem) ReadFile(name string) ([]byte, error) {
	return afero.ReadFile(a.fs, name)
}

// Readlink implements ReadFS
func (a *AferoFileSystem) Readlink(name string) (string, error) {
	reader, ok := a.fs.(afero.LinkReader)
	if !ok {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: afero.ErrNoReadlink}
	}
	return reader.ReadlinkIfPossible(name)
}

// ReadDir implements ReadFS. Entries come back sorted by name.
func (a *AferoFileSystem) ReadDir(path string) ([]Entry, error) {
	infos, err := afero.ReadDir(a.fs, path)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, Entry{Name: info.Name(), Type: entryTypeOf(info.Mode())})
	}
	return entries, nil
}

// Lstat implements ReadFS. Backends without Lstat fall back to Stat.
func (a *AferoFileSystem) Lstat(name string) (fs.FileInfo, error) {
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(name)
		return info, err
	}
	return a.fs.Stat(name)
}

func entryTypeOf(mode fs.FileMode) EntryType {
	switch {
	case mode&fs.ModeSymlink != 0:
		return EntrySymlink
	case mode.IsDir():
		return EntryDir
	default:
		return EntryFile
	}
}
