package snapshot

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/keshon/svcs/internal/repo/store/file"
)

// Ensure creates the commits directory and clears temp directories left
// by an interrupted commit.
func (sc *SnapshotContext) Ensure() error {
	if err := sc.FS.MkdirAll(sc.CommitsDir, 0o755); err != nil {
		return fmt.Errorf("create commits dir: %w", err)
	}
	return sc.CleanupTemp()
}

// CleanupTemp removes orphaned temp directories from the commits directory.
func (sc *SnapshotContext) CleanupTemp() error {
	entries, err := sc.FS.ReadDir(sc.CommitsDir)
	if err != nil {
		return fmt.Errorf("read commits dir: %w", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), tempPrefix) {
			p := filepath.Join(sc.CommitsDir, e.Name())
			if err := sc.FS.RemoveAll(p); err != nil {
				return fmt.Errorf("remove stale %q: %w", p, err)
			}
			slog.Debug("removed stale snapshot temp dir", "path", p)
		}
	}
	return nil
}

// List returns the identifiers of all snapshots, sorted.
func (sc *SnapshotContext) List() ([]string, error) {
	entries, err := sc.FS.ReadDir(sc.CommitsDir)
	if err != nil {
		if sc.FS.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read commits dir: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() && validID(e.Name()) {
			ids = append(ids, e.Name())
		}
	}
	slices.Sort(ids)
	return ids, nil
}

// Exists reports whether a snapshot directory named id is present.
func (sc *SnapshotContext) Exists(id string) bool {
	return validID(id) && sc.FS.IsDir(sc.Path(id))
}

// Find scans the existing snapshots for one named exactly id.
func (sc *SnapshotContext) Find(id string) (bool, error) {
	ids, err := sc.List()
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, id), nil
}

// Create writes entries under a new snapshot directory named id. The files
// are assembled in a temp directory first and renamed into place, so the
// snapshot appears complete or not at all. A path listed more than once
// is written once.
func (sc *SnapshotContext) Create(id string, entries []file.Entry) error {
	if !validID(id) {
		return fmt.Errorf("invalid snapshot id %q", id)
	}
	if sc.Exists(id) {
		return fmt.Errorf("%w: %s", ErrExists, id)
	}
	if err := sc.FS.MkdirAll(sc.CommitsDir, 0o755); err != nil {
		return fmt.Errorf("create commits dir: %w", err)
	}

	tmp, err := sc.FS.MkdirTemp(sc.CommitsDir, tempPrefix+"*")
	if err != nil {
		return fmt.Errorf("create temp snapshot dir: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = sc.FS.RemoveAll(tmp)
		}
	}()

	written := make(map[string]bool, len(entries))
	for _, e := range entries {
		if written[e.Path] {
			continue
		}
		dst := filepath.Join(tmp, filepath.FromSlash(e.Path))
		if err := sc.FS.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("ensure dir for %q: %w", e.Path, err)
		}
		if err := sc.FS.WriteFile(dst, e.Data, 0o644); err != nil {
			return fmt.Errorf("copy %q: %w", e.Path, err)
		}
		written[e.Path] = true
	}

	if err := sc.FS.Rename(tmp, sc.Path(id)); err != nil {
		return fmt.Errorf("rename temp snapshot to %s: %w", id, err)
	}
	committed = true

	slog.Debug("snapshot written", "id", id, "files", len(written))
	return nil
}

// Remove deletes snapshot id. It only exists to roll back a commit whose
// log entry could not be written.
func (sc *SnapshotContext) Remove(id string) error {
	if !validID(id) {
		return fmt.Errorf("invalid snapshot id %q", id)
	}
	return sc.FS.RemoveAll(sc.Path(id))
}

// ReadFile returns the snapshot's copy of a tracked path.
func (sc *SnapshotContext) ReadFile(id, tracked string) ([]byte, error) {
	data, err := sc.FS.ReadFile(sc.FilePath(id, tracked))
	if err != nil {
		if sc.FS.IsNotExist(err) {
			return nil, &file.PathError{Kind: ErrFileMissing, Path: tracked}
		}
		return nil, fmt.Errorf("read %q from snapshot %s: %w", tracked, id, err)
	}
	return data, nil
}
