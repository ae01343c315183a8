package file_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/svcs/internal/fs"
	"github.com/keshon/svcs/internal/repo/store/file"
	"github.com/keshon/svcs/internal/state"
)

// Helper to create FileContext with in-memory FS.
func newTestFC(t *testing.T) (*file.FileContext, *fs.MemoryFS) {
	t.Helper()
	mem := fs.NewMemoryFS()
	require.NoError(t, mem.MkdirAll("work", 0o755))

	st, err := state.NewFileStore("work/vcs", mem)
	require.NoError(t, err)

	return file.NewFileContext("work", st, mem, file.NewIgnore("vcs")), mem
}

func writeFile(t *testing.T, mem *fs.MemoryFS, path, content string) {
	t.Helper()
	require.NoError(t, mem.MkdirAll(dirOf(path), 0o755))
	require.NoError(t, mem.WriteFile(path, []byte(content), 0o644))
}

func dirOf(p string) string {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == '/' {
			return p[:i]
		}
	}
	return "."
}

func TestIgnoreMatch(t *testing.T) {
	ig := file.NewIgnore("vcs")

	tests := []struct {
		path string
		want bool
	}{
		{"vcs", true},
		{"vcs/index.txt", true},
		{"vcs/commits/abc/a.txt", true},
		{"vcsx/a.txt", false},
		{"a/vcs", false},
		{"a.txt", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ig.Match(tt.path), tt.path)
	}
}

func TestCleanPath(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"a.txt", "a.txt", false},
		{"./a.txt", "a.txt", false},
		{"dir/../b.txt", "b.txt", false},
		{"dir//c.txt", "dir/c.txt", false},
		{"", "", true},
		{"   ", "", true},
		{".", "", true},
		{"..", "", true},
		{"../outside.txt", "", true},
		{"/etc/passwd", "", true},
		{"bad\nname", "", true},
	}
	for _, tt := range tests {
		got, err := file.CleanPath(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, file.ErrInvalidPath, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestContentReader(t *testing.T) {
	got, err := io.ReadAll(file.ContentReader([]file.Entry{
		{Path: "a.txt", Data: []byte("hello")},
		{Path: "b.txt", Data: nil},
		{Path: "c.txt", Data: []byte("world")},
		{Path: "a.txt", Data: []byte("hello")},
	}))
	require.NoError(t, err)
	assert.Equal(t, "helloworldhello", string(got))

	got, err = io.ReadAll(file.ContentReader(nil))
	require.NoError(t, err)
	assert.Empty(t, got)
}
