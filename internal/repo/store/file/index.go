package file

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/keshon/svcs/internal/state"
)

// LoadIndex returns the tracked paths in insertion order, duplicates
// included. An empty index is nil.
func (fc *FileContext) LoadIndex() ([]string, error) {
	paths, err := fc.State.Read(state.KeyIndex)
	if err != nil {
		return nil, fmt.Errorf("load index: %w", err)
	}
	return paths, nil
}

// Track appends path to the index and returns the form it was stored in.
// The path must name an existing regular file inside the working tree.
// A path that is already tracked is appended again.
func (fc *FileContext) Track(path string) (string, error) {
	clean, err := CleanPath(path)
	if err != nil {
		return "", err
	}
	if fc.Ignore.Match(clean) {
		return "", fmt.Errorf("%w: %q is inside the state directory", ErrInvalidPath, path)
	}

	fi, err := fc.FS.Stat(fc.WorkingPath(clean))
	if err != nil {
		if fc.FS.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q", ErrNotFound, path)
		}
		return "", fmt.Errorf("stat %q: %w", path, err)
	}
	if fi.IsDir() {
		return "", fmt.Errorf("%w: %q is a directory", ErrInvalidPath, path)
	}

	if err := fc.State.Append(state.KeyIndex, clean); err != nil {
		return "", fmt.Errorf("save index: %w", err)
	}
	return clean, nil
}

// WorkingPath resolves a tracked path against the working tree.
func (fc *FileContext) WorkingPath(rel string) string {
	return filepath.Join(fc.WorkingTreeDir, filepath.FromSlash(rel))
}

// CleanPath normalises a user-supplied path to the slash-separated form
// stored in the index. Absolute paths and paths leaving the working tree
// are rejected.
func CleanPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if strings.ContainsAny(path, "\r\n") {
		return "", fmt.Errorf("%w: %q contains a line break", ErrInvalidPath, path)
	}
	if filepath.IsAbs(path) || strings.HasPrefix(filepath.ToSlash(path), "/") {
		return "", fmt.Errorf("%w: %q is absolute", ErrInvalidPath, path)
	}
	clean := filepath.ToSlash(filepath.Clean(path))
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("%w: %q is outside the working tree", ErrInvalidPath, path)
	}
	return clean, nil
}
