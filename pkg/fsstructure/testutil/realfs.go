// Package testutil holds helpers shared by tests that touch the real filesystem.
package testutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ozum/fs-structure/pkg/fsstructure/filesystem"
)

// RealFSTestHelper provides utilities for testing with real filesystem operations.
// Symlink tests are Unix-only, so the helper skips on Windows.
type RealFSTestHelper struct {
	t       *testing.T
	tempDir string
	fs      *filesystem.AferoFileSystem
}

// NewRealFSTestHelper creates a helper rooted at a fresh t.TempDir().
func NewRealFSTestHelper(t *testing.T) *RealFSTestHelper {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("symlink tests need a POSIX filesystem")
	}

	// Resolve so paths compare equal on systems where the temp dir is itself a link (macOS /var).
	tempDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}

	return &RealFSTestHelper{
		t:       t,
		tempDir: tempDir,
		fs:      filesystem.NewOSFileSystem(),
	}
}

// FileSystem returns the OS-backed filesystem.
func (h *RealFSTestHelper) FileSystem() *filesystem.AferoFileSystem {
	return h.fs
}

// TempDir returns the temporary directory path
func (h *RealFSTestHelper) TempDir() string {
	return h.tempDir
}

// Path joins slash-separated elements onto the temp dir.
func (h *RealFSTestHelper) Path(elem ...string) string {
	return filepath.Join(append([]string{h.tempDir}, elem...)...)
}

// WriteFile writes content to a path relative to the temp dir, creating parents.
func (h *RealFSTestHelper) WriteFile(rel, content string) {
	h.t.Helper()
	path := h.Path(filepath.FromSlash(rel))
	if err := h.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		h.t.Fatalf("Failed to create parent of %s: %v", path, err)
	}
	if err := h.fs.WriteFile(path, []byte(content), 0644, false); err != nil {
		h.t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// CreateSymlink creates a real symlink for testing
func (h *RealFSTestHelper) CreateSymlink(target, linkPath string) {
	h.t.Helper()
	if err := h.fs.Symlink(target, linkPath); err != nil {
		h.t.Fatalf("Failed to create symlink %s -> %s: %v", linkPath, target, err)
	}
}

// ReadSymlink reads a real symlink target
func (h *RealFSTestHelper) ReadSymlink(linkPath string) string {
	h.t.Helper()
	target, err := h.fs.Readlink(linkPath)
	if err != nil {
		h.t.Fatalf("Failed to read symlink %s: %v", linkPath, err)
	}
	return target
}

// AssertSymlinkTarget verifies a symlink points to the expected target
func (h *RealFSTestHelper) AssertSymlinkTarget(linkPath, expectedTarget string) {
	h.t.Helper()
	actual := h.ReadSymlink(linkPath)
	if actual != expectedTarget {
		h.t.Errorf("Symlink %s target mismatch: expected %q, got %q", linkPath, expectedTarget, actual)
	}
}

// AssertSymlinkExists verifies a symlink exists
func (h *RealFSTestHelper) AssertSymlinkExists(linkPath string) {
	h.t.Helper()
	info, err := h.fs.Lstat(linkPath)
	if err != nil {
		h.t.Errorf("Expected symlink %s to exist, but got error: %v", linkPath, err)
		return
	}
	if info.Mode()&os.ModeSymlink == 0 {
		h.t.Errorf("Expected %s to be a symlink, got mode %v", linkPath, info.Mode())
	}
}

// AssertFileContent verifies a regular file holds the expected content.
func (h *RealFSTestHelper) AssertFileContent(path, expected string) {
	h.t.Helper()
	data, err := h.fs.ReadFile(path)
	if err != nil {
		h.t.Errorf("Failed to read %s: %v", path, err)
		return
	}
	if string(data) != expected {
		h.t.Errorf("File %s content mismatch: expected %q, got %q", path, expected, string(data))
	}
}

// AssertNotExists verifies nothing exists at path, not even a dangling link.
func (h *RealFSTestHelper) AssertNotExists(path string) {
	h.t.Helper()
	_, err := h.fs.Lstat(path)
	if !errors.Is(err, fs.ErrNotExist) {
		h.t.Errorf("Expected %s not to exist, got error: %v", path, err)
	}
}

// AssertDirExists verifies a directory exists at path.
func (h *RealFSTestHelper) AssertDirExists(path string) {
	h.t.Helper()
	info, err := h.fs.Lstat(path)
	if err != nil {
		h.t.Errorf("Expected directory %s to exist, got error: %v", path, err)
		return
	}
	if !info.IsDir() {
		h.t.Errorf("Expected %s to be a directory, got mode %v", path, info.Mode())
	}
}
