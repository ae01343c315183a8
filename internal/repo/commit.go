package repo

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/keshon/svcs/internal/repo/meta"
	"github.com/keshon/svcs/internal/repo/store/file"
	"github.com/keshon/svcs/internal/repo/store/snapshot"
)

// CommitStatus tells a created snapshot from a no-op.
type CommitStatus int

const (
	Created CommitStatus = iota + 1
	NothingToCommit
)

func (s CommitStatus) String() string {
	switch s {
	case Created:
		return "created"
	case NothingToCommit:
		return "nothing to commit"
	}
	return fmt.Sprintf("CommitStatus(%d)", int(s))
}

// CommitResult is the outcome of a successful Commit call.
type CommitResult struct {
	Status CommitStatus
	ID     string
}

// Commit snapshots every tracked file under the hash of their
// concatenated contents and records it in the log.
//
// All tracked files are read before anything is written. If a snapshot
// with the same identifier already exists the call is a no-op. The
// snapshot directory and the log entry are written together: when the
// log cannot be updated the new snapshot is removed again.
func (r *Repository) Commit(message string) (CommitResult, error) {
	if !ValidMessage(message) {
		return CommitResult{}, ErrNoMessage
	}

	entries, err := r.Store.Files.Stage()
	if err != nil {
		return CommitResult{}, err
	}

	id, err := r.Hasher.SumReader(file.ContentReader(entries))
	if err != nil {
		return CommitResult{}, err
	}
	if r.Store.Snapshots.Exists(id) {
		slog.Debug("snapshot exists", "id", id)
		return CommitResult{Status: NothingToCommit, ID: id}, nil
	}

	author, err := r.Meta.Username()
	if err != nil {
		return CommitResult{}, err
	}

	if err := r.Store.Snapshots.Create(id, entries); err != nil {
		if errors.Is(err, snapshot.ErrExists) {
			return CommitResult{Status: NothingToCommit, ID: id}, nil
		}
		return CommitResult{}, fmt.Errorf("store snapshot %s: %w", id, err)
	}

	if err := r.Meta.AppendLog(meta.Entry{ID: id, Author: author, Message: message}); err != nil {
		if rmErr := r.Store.Snapshots.Remove(id); rmErr != nil {
			slog.Warn("failed to roll back snapshot", "id", id, "err", rmErr)
		}
		return CommitResult{}, fmt.Errorf("record commit %s: %w", id, err)
	}

	slog.Debug("commit created", "id", id, "files", len(entries), "author", author)
	return CommitResult{Status: Created, ID: id}, nil
}
