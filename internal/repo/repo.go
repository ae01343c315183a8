package repo

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"github.com/keshon/svcs/internal/config"
	"github.com/keshon/svcs/internal/fs"
	"github.com/keshon/svcs/internal/hash"
	"github.com/keshon/svcs/internal/logging"
	"github.com/keshon/svcs/internal/repo/meta"
	"github.com/keshon/svcs/internal/repo/store"
	"github.com/keshon/svcs/internal/repo/store/file"
	"github.com/keshon/svcs/internal/repo/store/snapshot"
	"github.com/keshon/svcs/internal/state"
)

var (
	ErrNotFound        = file.ErrNotFound
	ErrInvalidPath     = file.ErrInvalidPath
	ErrFileUnavailable = file.ErrFileUnavailable
	ErrFileMissing     = snapshot.ErrFileMissing
	ErrInvalidUsername = meta.ErrInvalidUsername
	ErrNoMessage       = errors.New("commit message required")
	ErrNoIdentifier    = errors.New("commit id required")
	ErrCommitNotFound  = errors.New("commit does not exist")
)

// PathError carries the tracked path behind ErrFileUnavailable and
// ErrFileMissing.
type PathError = file.PathError

// Repository represents an opened state directory and its working tree.
type Repository struct {
	Config   *config.RepoConfig
	Settings *config.Settings
	State    state.Store
	Hasher   *hash.Hasher
	Store    *store.StoreContext
	Meta     *meta.MetaContext
	FS       fs.FS
}

// Options overrides the dependencies Open would otherwise build.
type Options struct {
	FS       fs.FS
	Settings *config.Settings
	State    state.Store
}

// Open opens the repository whose working tree is workingTree, creating
// the state directory layout on first use.
func Open(workingTree string, opts *Options) (*Repository, error) {
	if opts == nil {
		opts = &Options{}
	}
	cfg := config.NewRepoConfig(workingTree)

	fsys := opts.FS
	if fsys == nil {
		fsys = fs.NewOSFS()
	}

	settings := opts.Settings
	if settings == nil {
		var err error
		if settings, err = config.LoadSettings(fsys, cfg.SettingsFile()); err != nil {
			return nil, err
		}
		logging.SetLevel(settings.LogLevel)
	}

	hasher, err := hash.New(settings.Hash)
	if err != nil {
		return nil, err
	}

	st := opts.State
	if st == nil {
		if st, err = state.Open(cfg, settings, fsys); err != nil {
			return nil, fmt.Errorf("failed to open state: %w", err)
		}
	}

	sc, err := store.NewStore(cfg, st, &store.NewStoreOptions{FS: fsys})
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to init store: %w", err)
	}

	mc, err := meta.NewMeta(st)
	if err != nil {
		st.Close()
		return nil, err
	}

	slog.Debug("repository opened", "state_dir", cfg.StateDir, "hash", hasher.Algorithm(), "backend", settings.StateBackend)

	return &Repository{
		Config:   cfg,
		Settings: settings,
		State:    st,
		Hasher:   hasher,
		Store:    sc,
		Meta:     mc,
		FS:       fsys,
	}, nil
}

// Close releases the state store.
func (r *Repository) Close() error {
	return r.State.Close()
}

// Tracked lists the index in insertion order.
func (r *Repository) Tracked() ([]string, error) {
	return r.Store.Files.LoadIndex()
}

// Add starts tracking path and returns the path as stored in the index.
func (r *Repository) Add(path string) (string, error) {
	return r.Store.Files.Track(path)
}

// Username returns the configured author, "" when unset.
func (r *Repository) Username() (string, error) {
	return r.Meta.Username()
}

// SetUsername sets the author recorded by later commits.
func (r *Repository) SetUsername(name string) error {
	return r.Meta.SetUsername(name)
}

// Log yields the rendered history, most recent first.
func (r *Repository) Log() (iter.Seq[string], error) {
	return r.Meta.LogLines()
}

// ValidMessage reports whether message is usable as a commit message.
func ValidMessage(message string) bool {
	return strings.TrimSpace(message) != ""
}
