package snapshot

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/keshon/svcs/internal/fs"
)

const tempPrefix = ".tmp-"

var (
	// ErrExists is returned by Create when the snapshot directory is already present.
	ErrExists = errors.New("snapshot already exists")
	// ErrFileMissing is returned when a snapshot holds no copy of a tracked path.
	ErrFileMissing = errors.New("snapshot has no copy of file")
)

// SnapshotContext stores one directory per snapshot under CommitsDir.
type SnapshotContext struct {
	CommitsDir string
	FS         fs.FS
}

// NewSnapshotContext creates a new SnapshotContext.
func NewSnapshotContext(commitsDir string, fsys fs.FS) *SnapshotContext {
	return &SnapshotContext{CommitsDir: commitsDir, FS: fsys}
}

// Path returns the directory of snapshot id.
func (sc *SnapshotContext) Path(id string) string {
	return filepath.Join(sc.CommitsDir, id)
}

// FilePath returns where snapshot id keeps its copy of a tracked path.
func (sc *SnapshotContext) FilePath(id, tracked string) string {
	return filepath.Join(sc.CommitsDir, id, filepath.FromSlash(tracked))
}

// validID rejects names that cannot be a snapshot directory.
func validID(id string) bool {
	return id != "" && id != "." && id != ".." &&
		!strings.HasPrefix(id, tempPrefix) &&
		!strings.ContainsAny(id, `/\`)
}
