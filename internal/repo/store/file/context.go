package file

import (
	"errors"
	"fmt"

	"github.com/keshon/svcs/internal/fs"
	"github.com/keshon/svcs/internal/state"
)

var (
	// ErrNotFound is returned by Track when the path does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrInvalidPath is returned for paths that cannot be tracked.
	ErrInvalidPath = errors.New("invalid path")
	// ErrFileUnavailable is returned when a tracked file cannot be read.
	ErrFileUnavailable = errors.New("tracked file unavailable")
)

// FileContext manages the index of tracked files and reads their
// working-tree contents.
type FileContext struct {
	WorkingTreeDir string
	State          state.Store
	FS             fs.FS
	Ignore         *Ignore
}

// NewFileContext creates a new FileContext.
func NewFileContext(workingTreeDir string, st state.Store, fsys fs.FS, ignore *Ignore) *FileContext {
	if ignore == nil {
		ignore = NewIgnore()
	}
	return &FileContext{WorkingTreeDir: workingTreeDir, State: st, FS: fsys, Ignore: ignore}
}

// PathError ties a tracked path to the failure it caused. Kind is one of
// the package sentinels (or a sentinel from a sibling package) and
// matches with errors.Is.
type PathError struct {
	Kind error
	Path string
	Err  error
}

func (e *PathError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %q", e.Kind, e.Path)
	}
	return fmt.Sprintf("%v: %q: %v", e.Kind, e.Path, e.Err)
}

func (e *PathError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
