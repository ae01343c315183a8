package state

import (
	"fmt"

	"github.com/keshon/svcs/internal/config"
	"github.com/keshon/svcs/internal/fs"
)

// Open returns the store selected by settings for the repository in cfg.
func Open(cfg *config.RepoConfig, settings *config.Settings, fsys fs.FS) (Store, error) {
	switch settings.StateBackend {
	case config.BackendFiles, "":
		s, err := NewFileStore(cfg.StateDir, fsys)
		if err != nil {
			return nil, err
		}
		if err := s.Ensure(); err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendSQLite:
		if err := fsys.MkdirAll(cfg.StateDir, 0o755); err != nil {
			return nil, fmt.Errorf("create state dir %q: %w", cfg.StateDir, err)
		}
		return OpenSQLite(cfg.DatabaseFile())
	}
	return nil, fmt.Errorf("unknown state backend %q", settings.StateBackend)
}
