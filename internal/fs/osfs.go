package fs

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Files at or above this size are read through a memory mapping.
const mmapThreshold = 1 << 20 // 1 MiB

// OSFS is a production implementation of FS using the standard library.
type OSFS struct{}

func NewOSFS() *OSFS {
	return &OSFS{}
}

func (r *OSFS) Stat(path string) (os.FileInfo, error) {
	return stat(path)
}

// ReadFile returns the whole content of path. Large regular files are
// copied out of an mmap'd view instead of going through read(2).
func (r *OSFS) ReadFile(path string) ([]byte, error) {
	fi, err := stat(path)
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() || fi.Size() < mmapThreshold {
		return readFile(path)
	}
	return readMapped(path)
}

func readMapped(path string) ([]byte, error) {
	ra, err := mmapOpen(path)
	if err != nil {
		return nil, fmt.Errorf("mmap %q: %w", path, err)
	}
	defer ra.Close()

	data := make([]byte, ra.Len())
	if _, err := ra.ReadAt(data, 0); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read mapped %q: %w", path, err)
	}
	return data, nil
}

func (r *OSFS) ReadDir(path string) ([]os.DirEntry, error) {
	return readDir(path)
}

func (r *OSFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	return writeFile(path, data, perm)
}

func (r *OSFS) MkdirAll(path string, perm os.FileMode) error {
	return mkdirAll(path, perm)
}

func (r *OSFS) MkdirTemp(dir, pattern string) (string, error) {
	return mkdirTemp(dir, pattern)
}

func (r *OSFS) Remove(path string) error {
	return remove(path)
}

func (r *OSFS) RemoveAll(path string) error {
	return removeAll(path)
}

func (r *OSFS) Rename(oldPath, newPath string) error {
	return rename(oldPath, newPath)
}

func (r *OSFS) Chmod(path string, mode os.FileMode) error {
	return chmod(path, mode)
}

func (r *OSFS) CreateTempFile(dir, pattern string) (io.WriteCloser, string, error) {
	f, err := createTemp(dir, pattern)
	if err != nil {
		return nil, "", err
	}
	return f, f.Name(), nil
}

func (r *OSFS) IsNotExist(err error) bool {
	return isNotExist(err)
}

func (r *OSFS) IsDir(path string) bool {
	return isDir(path)
}

func (r *OSFS) Exists(path string) bool {
	return exists(path)
}
