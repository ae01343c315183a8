package store

import (
	"fmt"

	"github.com/keshon/svcs/internal/config"
	"github.com/keshon/svcs/internal/fs"
	"github.com/keshon/svcs/internal/repo/store/file"
	"github.com/keshon/svcs/internal/repo/store/snapshot"
	"github.com/keshon/svcs/internal/state"
)

// StoreContext is the high-level store abstraction that unifies all subsystems.
type StoreContext struct {
	Config    *config.RepoConfig
	Files     *file.FileContext
	Snapshots *snapshot.SnapshotContext
}

// NewStoreOptions allows optional dependency injection (FS, contexts)
type NewStoreOptions struct {
	FS        fs.FS
	Files     *file.FileContext
	Snapshots *snapshot.SnapshotContext
}

// NewStore creates a store on top of st with optional dependencies.
func NewStore(cfg *config.RepoConfig, st state.Store, opts *NewStoreOptions) (*StoreContext, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil RepoConfig provided")
	}
	if st == nil {
		return nil, fmt.Errorf("nil state store provided")
	}

	// Resolve FS
	fsys := fs.FS(fs.NewOSFS())
	if opts != nil && opts.FS != nil {
		fsys = opts.FS
	}

	// Resolve FileContext
	var ignore *file.Ignore
	if rel := cfg.StateDirRel(); rel != "" {
		ignore = file.NewIgnore(rel)
	}
	files := file.NewFileContext(cfg.WorkingTreeDir, st, fsys, ignore)
	if opts != nil && opts.Files != nil {
		files = opts.Files
	}

	// Resolve SnapshotContext
	snapshots := snapshot.NewSnapshotContext(cfg.CommitsDir(), fsys)
	if opts != nil && opts.Snapshots != nil {
		snapshots = opts.Snapshots
	}

	// Ensure store layout
	if err := snapshots.Ensure(); err != nil {
		return nil, err
	}

	return &StoreContext{
		Config:    cfg,
		Files:     files,
		Snapshots: snapshots,
	}, nil
}
