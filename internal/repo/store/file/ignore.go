package file

import (
	"path/filepath"
	"strings"
)

// Ignore reports paths that must never be tracked, such as the state
// directory itself.
type Ignore struct {
	static map[string]bool
}

func NewIgnore(paths ...string) *Ignore {
	m := &Ignore{static: make(map[string]bool)}
	for _, p := range paths {
		m.static[filepath.ToSlash(filepath.Clean(p))] = true
	}
	return m
}

// Match returns true if path is an ignored entry or lies beneath one.
func (m *Ignore) Match(path string) bool {
	clean := filepath.ToSlash(filepath.Clean(path))
	for {
		if m.static[clean] {
			return true
		}
		i := strings.LastIndex(clean, "/")
		if i < 0 {
			return false
		}
		clean = clean[:i]
	}
}
