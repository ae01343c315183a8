package repo

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/keshon/svcs/internal/fs"
	"github.com/keshon/svcs/internal/repo/store/file"
)

var errTargetIsDir = errors.New("working path is a directory")

// Checkout overwrites every tracked file with its copy in snapshot id.
//
// The identifier must match a snapshot directory exactly. Every tracked
// path is read from the snapshot, and its working target checked, before
// any working file is touched. A snapshot lacking one of them
// (ErrFileMissing) or a target that is a directory (ErrInvalidPath) leaves
// the working tree as it was. Checkout keeps no backup of the overwritten
// contents.
func (r *Repository) Checkout(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrNoIdentifier
	}

	found, err := r.Store.Snapshots.Find(id)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrCommitNotFound, id)
	}

	paths, err := r.Store.Files.LoadIndex()
	if err != nil {
		return err
	}

	type target struct {
		path string
		data []byte
		perm os.FileMode
	}
	targets := make([]target, 0, len(paths))
	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true
		data, err := r.Store.Snapshots.ReadFile(id, p)
		if err != nil {
			return err
		}

		perm := os.FileMode(0o644)
		fi, err := r.FS.Stat(r.Store.Files.WorkingPath(p))
		switch {
		case err == nil && fi.IsDir():
			return &file.PathError{Kind: ErrInvalidPath, Path: p, Err: errTargetIsDir}
		case err == nil:
			perm = fi.Mode().Perm()
		case !r.FS.IsNotExist(err):
			return &file.PathError{Kind: ErrFileUnavailable, Path: p, Err: err}
		}
		targets = append(targets, target{path: p, data: data, perm: perm})
	}

	for _, t := range targets {
		p := t.path
		dst := r.Store.Files.WorkingPath(p)
		if err := fs.WriteFileAtomic(r.FS, dst, t.data, t.perm); err != nil {
			return fmt.Errorf("restore %q: %w", p, err)
		}
	}

	slog.Debug("checkout restored", "id", id, "files", len(targets))
	return nil
}
