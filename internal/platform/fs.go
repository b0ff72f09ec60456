package platform

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// Permission bits for autostart artifacts. Autostart directories and the
// files in them must stay readable by the session manager that consumes them.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, DirPerm)
}

// WriteFile replaces path with content. The content is written to a sibling
// temp file and renamed over the target, so a reader never observes a
// half-written artifact.
func WriteFile(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := Chmod(tmpName, FilePerm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Exists reports whether path exists. Errors other than "not found" (for
// example a permission failure on the parent directory) are returned.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// RemoveIfExists deletes path, treating an already-missing file as success.
func RemoveIfExists(path string) error {
	err := os.Remove(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Chmod sets permission bits. Windows has no Unix mode bits, so it is a
// no-op there and the artifact inherits the folder's ACL.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
