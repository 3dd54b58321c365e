// Package fsops provides the filesystem operations whatnow relies on.
//
// Every read and write of the state file goes through the FS interface so
// the state store can be exercised against a temporary directory in tests.
//
// Key features:
//   - Atomic writes using temp file + rename, through symlinks
//   - Existence checks that follow symlinks
//   - Testable via the FS interface
package fsops

import (
	"fmt"
	"os"
	"path/filepath"
)

// FS provides an abstraction for filesystem operations.
type FS interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// AtomicWrite writes data to path atomically using temp file + rename.
	// A symlink at path is followed and the file it points to is replaced.
	AtomicWrite(path string, data []byte, perm os.FileMode) error

	// Exists checks if a path exists. A dangling symlink does not.
	Exists(path string) (bool, error)
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// ReadFile reads the entire contents of a file.
func (fs *RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// AtomicWrite writes data to path atomically using temp file + rename.
// The parent directory must already exist; whatnow never creates
// WHATNOW_DOTFILE_DIR on the user's behalf.
//
// When path is a symlink the rename lands on its target, so dotfiles linked
// into a working directory keep receiving updates. An existing file keeps
// its permission bits; perm only applies to new files.
func (fs *RealFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	target, err := resolveTarget(path)
	if err != nil {
		return err
	}
	if info, err := os.Stat(target); err == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(target)

	// Create temp file in the same directory as target
	tmpFile, err := os.CreateTemp(dir, ".whatnow-tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	tmpFile = nil
	return nil
}

// resolveTarget returns the file a write to path should replace. Symlinks
// are followed; a path that does not exist yet is returned unchanged.
func resolveTarget(path string) (string, error) {
	target, err := filepath.EvalSymlinks(path)
	if err == nil {
		return target, nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	// A dangling link is written through to where it points, like a plain
	// create would.
	dest, lerr := os.Readlink(path)
	if lerr != nil {
		return path, nil
	}
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(filepath.Dir(path), dest)
	}
	return dest, nil
}

// Exists checks if a path exists, following symlinks.
func (fs *RealFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
