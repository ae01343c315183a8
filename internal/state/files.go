package state

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/keshon/svcs/internal/fs"
)

// FileStore keeps each key in <dir>/<key>.txt, one record per line.
type FileStore struct {
	Dir string
	FS  fs.FS
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates dir if needed and returns a store on top of it.
func NewFileStore(dir string, fsys fs.FS) (*FileStore, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir %q: %w", dir, err)
	}
	return &FileStore{Dir: dir, FS: fsys}, nil
}

func (s *FileStore) path(key Key) string {
	return filepath.Join(s.Dir, string(key)+".txt")
}

// Read returns the lines of the key's file. A missing or empty file has
// no records. A final line without a trailing newline still counts.
func (s *FileStore) Read(key Key) ([]string, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	data, err := s.FS.ReadFile(s.path(key))
	if err != nil {
		if s.FS.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return decode(data), nil
}

func (s *FileStore) Append(key Key, records ...string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := checkRecords(records); err != nil {
		return err
	}
	existing, err := s.Read(key)
	if err != nil {
		return err
	}
	return s.write(key, append(existing, records...))
}

func (s *FileStore) Overwrite(key Key, records []string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := checkRecords(records); err != nil {
		return err
	}
	return s.write(key, records)
}

func (s *FileStore) write(key Key, records []string) error {
	if err := fs.WriteFileAtomic(s.FS, s.path(key), encode(records), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Ensure creates empty files for every key that has none yet.
func (s *FileStore) Ensure() error {
	for _, key := range []Key{KeyConfig, KeyIndex, KeyLog} {
		if s.FS.Exists(s.path(key)) {
			continue
		}
		if err := s.FS.WriteFile(s.path(key), nil, 0o644); err != nil {
			return fmt.Errorf("create %s: %w", key, err)
		}
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

func encode(records []string) []byte {
	if len(records) == 0 {
		return nil
	}
	var b strings.Builder
	for _, r := range records {
		b.WriteString(r)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func decode(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
