package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultStateDir = "vcs"

	ConfigFile   = "config.txt"
	IndexFile    = "index.txt"
	LogFile      = "log.txt"
	CommitsDir   = "commits"
	SettingsFile = "settings.yaml"
	DatabaseFile = "state.db"
	LockFile     = ".lock"
)

// Environment keys. Values from a .env file in the working directory are
// loaded into the environment before these are read.
const (
	EnvStateDir     = "SVCS_DIR"
	EnvHash         = "SVCS_HASH"
	EnvStateBackend = "SVCS_STATE_BACKEND"
	EnvLogLevel     = "SVCS_LOG_LEVEL"
)

// RepoConfig locates the state directory and the files inside it.
type RepoConfig struct {
	WorkingTreeDir string
	StateDir       string
}

// NewRepoConfig builds a RepoConfig rooted at workingTree. The state
// directory comes from SVCS_DIR, falling back to DefaultStateDir; a
// relative value is resolved against workingTree.
func NewRepoConfig(workingTree string) *RepoConfig {
	if workingTree == "" {
		workingTree = "."
	}
	stateDir := ResolveStateDir()
	if !filepath.IsAbs(stateDir) {
		stateDir = filepath.Join(workingTree, stateDir)
	}
	return &RepoConfig{WorkingTreeDir: workingTree, StateDir: stateDir}
}

// ResolveStateDir returns the configured state directory name.
func ResolveStateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return filepath.Clean(dir)
	}
	return DefaultStateDir
}

func (c *RepoConfig) ConfigFile() string   { return filepath.Join(c.StateDir, ConfigFile) }
func (c *RepoConfig) IndexFile() string    { return filepath.Join(c.StateDir, IndexFile) }
func (c *RepoConfig) LogFile() string      { return filepath.Join(c.StateDir, LogFile) }
func (c *RepoConfig) CommitsDir() string   { return filepath.Join(c.StateDir, CommitsDir) }
func (c *RepoConfig) SettingsFile() string { return filepath.Join(c.StateDir, SettingsFile) }
func (c *RepoConfig) DatabaseFile() string { return filepath.Join(c.StateDir, DatabaseFile) }
func (c *RepoConfig) LockFile() string     { return filepath.Join(c.StateDir, LockFile) }

// StateDirRel returns the state directory relative to the working tree,
// or "" when it lives outside it.
func (c *RepoConfig) StateDirRel() string {
	wt, err := filepath.Abs(c.WorkingTreeDir)
	if err != nil {
		return ""
	}
	sd, err := filepath.Abs(c.StateDir)
	if err != nil {
		return ""
	}
	rel, err := filepath.Rel(wt, sd)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ""
	}
	return rel
}
