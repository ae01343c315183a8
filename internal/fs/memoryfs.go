package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// MemoryFS is a pure in-memory filesystem for tests.
type MemoryFS struct {
	files map[string][]byte
	dirs  map[string]struct{}
	seq   int
}

func NewMemoryFS() *MemoryFS {
	f := &MemoryFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]struct{}),
	}
	f.dirs["/"] = struct{}{}
	f.dirs["."] = struct{}{}
	return f
}

// normalize paths
func clean(p string) string {
	if p == "" {
		return "."
	}
	return filepath.ToSlash(filepath.Clean(p))
}

func (f *MemoryFS) ensureDirExists(p string) error {
	p = clean(p)
	if _, ok := f.dirs[p]; !ok {
		return fs.ErrNotExist
	}
	return nil
}

// under reports whether p lies strictly below dir.
func under(p, dir string) bool {
	if dir == "." {
		return p != "."
	}
	return strings.HasPrefix(p, dir+"/")
}

// tempName expands pattern the way os.CreateTemp does, with a counter
// instead of random digits.
func (f *MemoryFS) tempName(dir, pattern string) string {
	f.seq++
	n := strconv.Itoa(f.seq)
	name := pattern + n
	if i := strings.LastIndex(pattern, "*"); i >= 0 {
		name = pattern[:i] + n + pattern[i+1:]
	}
	return clean(path.Join(clean(dir), name))
}

// FS Interface Implementation

func (f *MemoryFS) ReadFile(p string) ([]byte, error) {
	p = clean(p)
	data, ok := f.files[p]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: p, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

func (f *MemoryFS) WriteFile(p string, data []byte, perm os.FileMode) error {
	p = clean(p)
	dir := path.Dir(p)
	if err := f.ensureDirExists(dir); err != nil {
		return fmt.Errorf("write: dir %q does not exist: %w", dir, err)
	}
	if _, ok := f.dirs[p]; ok {
		return fmt.Errorf("write: %q is a directory", p)
	}
	f.files[p] = append([]byte(nil), data...)
	return nil
}

func (f *MemoryFS) MkdirAll(p string, perm os.FileMode) error {
	p = clean(p)
	parts := strings.Split(p, "/")
	cur := ""
	if strings.HasPrefix(p, "/") {
		cur = "/"
	}
	for _, seg := range parts {
		if seg == "" || seg == "." {
			continue
		}
		cur = path.Join(cur, seg)
		if _, ok := f.files[cur]; ok {
			return fmt.Errorf("mkdir %q: not a directory", cur)
		}
		f.dirs[cur] = struct{}{}
	}
	return nil
}

func (f *MemoryFS) MkdirTemp(dir, pattern string) (string, error) {
	if err := f.ensureDirExists(dir); err != nil {
		return "", err
	}
	name := f.tempName(dir, pattern)
	f.dirs[name] = struct{}{}
	return name, nil
}

func (f *MemoryFS) Remove(p string) error {
	p = clean(p)
	if _, ok := f.files[p]; ok {
		delete(f.files, p)
		return nil
	}
	if _, ok := f.dirs[p]; ok {
		for k := range f.files {
			if under(k, p) {
				return fmt.Errorf("remove %q: directory not empty", p)
			}
		}
		for k := range f.dirs {
			if under(k, p) {
				return fmt.Errorf("remove %q: directory not empty", p)
			}
		}
		delete(f.dirs, p)
		return nil
	}
	return &fs.PathError{Op: "remove", Path: p, Err: fs.ErrNotExist}
}

func (f *MemoryFS) RemoveAll(p string) error {
	p = clean(p)
	delete(f.files, p)
	delete(f.dirs, p)
	for k := range f.files {
		if under(k, p) {
			delete(f.files, k)
		}
	}
	for k := range f.dirs {
		if under(k, p) {
			delete(f.dirs, k)
		}
	}
	return nil
}

func (f *MemoryFS) Rename(oldp, newp string) error {
	oldp, newp = clean(oldp), clean(newp)

	if f.ensureDirExists(path.Dir(newp)) != nil {
		return &os.LinkError{Op: "rename", Old: oldp, New: newp, Err: fs.ErrNotExist}
	}

	// file rename
	if data, ok := f.files[oldp]; ok {
		if _, ok := f.dirs[newp]; ok {
			return &os.LinkError{Op: "rename", Old: oldp, New: newp, Err: fs.ErrExist}
		}
		delete(f.files, oldp)
		f.files[newp] = data
		return nil
	}

	// dir rename moves the whole subtree
	if _, ok := f.dirs[oldp]; ok {
		if f.Exists(newp) {
			return &os.LinkError{Op: "rename", Old: oldp, New: newp, Err: fs.ErrExist}
		}
		delete(f.dirs, oldp)
		f.dirs[newp] = struct{}{}
		for k, v := range f.files {
			if under(k, oldp) {
				delete(f.files, k)
				f.files[newp+strings.TrimPrefix(k, oldp)] = v
			}
		}
		for k := range f.dirs {
			if under(k, oldp) {
				delete(f.dirs, k)
				f.dirs[newp+strings.TrimPrefix(k, oldp)] = struct{}{}
			}
		}
		return nil
	}

	return &os.LinkError{Op: "rename", Old: oldp, New: newp, Err: fs.ErrNotExist}
}

// Chmod only checks that p exists; MemoryFS does not track modes.
func (f *MemoryFS) Chmod(p string, mode os.FileMode) error {
	if !f.Exists(p) {
		return &fs.PathError{Op: "chmod", Path: clean(p), Err: fs.ErrNotExist}
	}
	return nil
}

func (f *MemoryFS) Stat(p string) (os.FileInfo, error) {
	p = clean(p)
	if data, ok := f.files[p]; ok {
		return &fakeInfo{name: filepath.Base(p), size: int64(len(data)), dir: false}, nil
	}
	if _, ok := f.dirs[p]; ok {
		return &fakeInfo{name: filepath.Base(p), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
}

func (f *MemoryFS) ReadDir(p string) ([]os.DirEntry, error) {
	p = clean(p)
	if _, ok := f.dirs[p]; !ok {
		return nil, &fs.PathError{Op: "readdir", Path: p, Err: fs.ErrNotExist}
	}

	var out []os.DirEntry
	seen := map[string]bool{}

	// dirs first
	for dp := range f.dirs {
		if under(dp, p) && dp != "/" {
			name := strings.Split(strings.TrimPrefix(strings.TrimPrefix(dp, p), "/"), "/")[0]
			if p == "." {
				name = strings.Split(dp, "/")[0]
			}
			if name != "" && name != "." && !seen[name] {
				seen[name] = true
				out = append(out, fakeDirEntry{name: name, isDir: true})
			}
		}
	}

	// then files
	for fp := range f.files {
		if under(fp, p) {
			name := strings.Split(strings.TrimPrefix(strings.TrimPrefix(fp, p), "/"), "/")[0]
			if p == "." {
				name = strings.Split(fp, "/")[0]
			}
			if name != "" && !seen[name] {
				seen[name] = true
				out = append(out, fakeDirEntry{name: name, isDir: false})
			}
		}
	}

	return out, nil
}

func (f *MemoryFS) CreateTempFile(dir, pattern string) (io.WriteCloser, string, error) {
	if err := f.ensureDirExists(dir); err != nil {
		return nil, "", err
	}

	tmpName := f.tempName(dir, pattern)
	buf := &bytes.Buffer{}
	f.files[tmpName] = nil

	wc := &memWriteCloser{
		buf: buf,
		onClose: func() {
			if _, ok := f.files[tmpName]; ok {
				f.files[tmpName] = buf.Bytes()
			}
		},
	}
	return wc, tmpName, nil
}

type memWriteCloser struct {
	buf     *bytes.Buffer
	onClose func()
}

func (m *memWriteCloser) Write(p []byte) (int, error) { return m.buf.Write(p) }
func (m *memWriteCloser) Close() error {
	if m.onClose != nil {
		m.onClose()
	}
	return nil
}

func (f *MemoryFS) IsNotExist(err error) bool { return errors.Is(err, fs.ErrNotExist) }
func (f *MemoryFS) IsDir(p string) bool       { _, ok := f.dirs[clean(p)]; return ok }
func (f *MemoryFS) Exists(p string) bool {
	p = clean(p)
	_, f1 := f.files[p]
	_, d1 := f.dirs[p]
	return f1 || d1
}

// Helpers

type fakeInfo struct {
	name string
	size int64
	dir  bool
}

func (f *fakeInfo) Name() string { return f.name }
func (f *fakeInfo) Size() int64  { return f.size }
func (f *fakeInfo) Mode() fs.FileMode {
	if f.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (f *fakeInfo) ModTime() time.Time { return time.Time{} }
func (f *fakeInfo) IsDir() bool        { return f.dir }
func (f *fakeInfo) Sys() interface{}   { return nil }

type fakeDirEntry struct {
	name  string
	isDir bool
}

func (d fakeDirEntry) Name() string { return d.name }
func (d fakeDirEntry) IsDir() bool  { return d.isDir }
func (d fakeDirEntry) Type() fs.FileMode {
	if d.isDir {
		return fs.ModeDir
	}
	return 0
}
func (d fakeDirEntry) Info() (os.FileInfo, error) { return &fakeInfo{name: d.name, dir: d.isDir}, nil }
