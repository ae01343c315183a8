package file

import (
	"bytes"
	"io"
	"log/slog"
)

// Entry is one tracked file with the bytes read from the working tree.
type Entry struct {
	Path string
	Data []byte
}

// Stage reads every tracked file, in index order, into memory. Nothing is
// written; the first unreadable file aborts with ErrFileUnavailable.
func (fc *FileContext) Stage() ([]Entry, error) {
	paths, err := fc.LoadIndex()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(paths))
	for _, p := range paths {
		data, err := fc.FS.ReadFile(fc.WorkingPath(p))
		if err != nil {
			return nil, &PathError{Kind: ErrFileUnavailable, Path: p, Err: err}
		}
		entries = append(entries, Entry{Path: p, Data: data})
	}

	slog.Debug("staged files", "count", len(entries))
	return entries, nil
}

// ContentReader streams the entries' contents back to back, in order,
// without copying them into one buffer.
func ContentReader(entries []Entry) io.Reader {
	readers := make([]io.Reader, 0, len(entries))
	for _, e := range entries {
		readers = append(readers, bytes.NewReader(e.Data))
	}
	return io.MultiReader(readers...)
}
