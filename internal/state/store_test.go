package state_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/svcs/internal/config"
	"github.com/keshon/svcs/internal/fs"
	"github.com/keshon/svcs/internal/state"
)

func backends(t *testing.T) map[string]func(t *testing.T) state.Store {
	return map[string]func(t *testing.T) state.Store{
		"files-memory": func(t *testing.T) state.Store {
			s, err := state.NewFileStore("vcs", fs.NewMemoryFS())
			require.NoError(t, err)
			return s
		},
		"files-os": func(t *testing.T) state.Store {
			s, err := state.NewFileStore(filepath.Join(t.TempDir(), "vcs"), fs.NewOSFS())
			require.NoError(t, err)
			return s
		},
		"sqlite": func(t *testing.T) state.Store {
			s, err := state.OpenSQLite(filepath.Join(t.TempDir(), "state.db"))
			require.NoError(t, err)
			t.Cleanup(func() { s.Close() })
			return s
		},
	}
}

func TestStoreContract(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)

			got, err := s.Read(state.KeyIndex)
			require.NoError(t, err)
			assert.Empty(t, got)

			require.NoError(t, s.Append(state.KeyIndex, "a.txt"))
			require.NoError(t, s.Append(state.KeyIndex, "b.txt", "a.txt"))
			got, err = s.Read(state.KeyIndex)
			require.NoError(t, err)
			assert.Equal(t, []string{"a.txt", "b.txt", "a.txt"}, got)

			// keys are independent
			got, err = s.Read(state.KeyLog)
			require.NoError(t, err)
			assert.Empty(t, got)

			require.NoError(t, s.Overwrite(state.KeyLog, []string{"commit x", "Author: me", "", "msg"}))
			got, err = s.Read(state.KeyLog)
			require.NoError(t, err)
			assert.Equal(t, []string{"commit x", "Author: me", "", "msg"}, got)

			require.NoError(t, s.Overwrite(state.KeyConfig, []string{"alice"}))
			require.NoError(t, s.Overwrite(state.KeyConfig, []string{"bob"}))
			got, err = s.Read(state.KeyConfig)
			require.NoError(t, err)
			assert.Equal(t, []string{"bob"}, got)

			require.NoError(t, s.Overwrite(state.KeyConfig, nil))
			got, err = s.Read(state.KeyConfig)
			require.NoError(t, err)
			assert.Empty(t, got)

			// a single empty record survives a round trip
			require.NoError(t, s.Overwrite(state.KeyConfig, []string{""}))
			got, err = s.Read(state.KeyConfig)
			require.NoError(t, err)
			assert.Equal(t, []string{""}, got)
		})
	}
}

func TestStoreRejectsBadInput(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)

			assert.ErrorIs(t, s.Append(state.KeyIndex, "a\nb"), state.ErrInvalidRecord)
			assert.ErrorIs(t, s.Overwrite(state.KeyLog, []string{"x\r"}), state.ErrInvalidRecord)
			_, err := s.Read(state.Key("objects"))
			assert.ErrorIs(t, err, state.ErrUnknownKey)

			got, err := s.Read(state.KeyIndex)
			require.NoError(t, err)
			assert.Empty(t, got, "rejected writes must not persist anything")
		})
	}
}

func TestFileStoreLayout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vcs")
	s, err := state.NewFileStore(dir, fs.NewOSFS())
	require.NoError(t, err)
	require.NoError(t, s.Ensure())

	for _, name := range []string{"config.txt", "index.txt", "log.txt"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Zero(t, info.Size(), name)
	}

	require.NoError(t, s.Append(state.KeyIndex, "a.txt", "dir/b.txt"))
	data, err := os.ReadFile(filepath.Join(dir, "index.txt"))
	require.NoError(t, err)
	assert.Equal(t, "a.txt\ndir/b.txt\n", string(data))
}

func TestFileStoreReadsLegacyFiles(t *testing.T) {
	m := fs.NewMemoryFS()
	require.NoError(t, m.MkdirAll("vcs", 0o755))
	// username written without a trailing newline, index with CRLF
	require.NoError(t, m.WriteFile("vcs/config.txt", []byte("alice"), 0o644))
	require.NoError(t, m.WriteFile("vcs/index.txt", []byte("a.txt\r\nb.txt\r\n"), 0o644))

	s, err := state.NewFileStore("vcs", m)
	require.NoError(t, err)

	got, err := s.Read(state.KeyConfig)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, got)

	got, err = s.Read(state.KeyIndex)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, got)
}

func TestFileStoreFailedWriteKeepsOldContent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vcs")
	s, err := state.NewFileStore(dir, fs.NewOSFS())
	require.NoError(t, err)
	require.NoError(t, s.Append(state.KeyIndex, "a.txt"))

	orig := fs.GetRename()
	fs.SetRename(func(string, string) error { return errors.New("disk full") })
	err = s.Append(state.KeyIndex, "b.txt")
	fs.SetRename(orig)
	require.Error(t, err)

	got, err := s.Read(state.KeyIndex)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, got)
}

func TestOpenSelectsBackend(t *testing.T) {
	root := t.TempDir()
	t.Setenv(config.EnvStateDir, "")
	cfg := config.NewRepoConfig(root)

	settings := config.NewDefaultSettings()
	s, err := state.Open(cfg, settings, fs.NewOSFS())
	require.NoError(t, err)
	assert.IsType(t, &state.FileStore{}, s)
	assert.FileExists(t, cfg.IndexFile())
	require.NoError(t, s.Close())

	settings.StateBackend = config.BackendSQLite
	s, err = state.Open(cfg, settings, fs.NewOSFS())
	require.NoError(t, err)
	assert.IsType(t, &state.SQLiteStore{}, s)
	assert.FileExists(t, cfg.DatabaseFile())
	require.NoError(t, s.Close())

	settings.StateBackend = "redis"
	_, err = state.Open(cfg, settings, fs.NewOSFS())
	assert.Error(t, err)
}
