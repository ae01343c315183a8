package meta

import (
	"fmt"
	"iter"
	"strings"

	"github.com/keshon/svcs/internal/state"
)

// NoCommits is the only line rendered for an empty log.
const NoCommits = "No commits yet."

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Entry is one commit in the history.
type Entry struct {
	ID      string
	Author  string
	Message string
}

// Lines renders the entry: identifier, author, then the message lines.
func (e Entry) Lines() []string {
	lines := []string{
		"commit " + e.ID,
		"Author: " + e.Author,
	}
	msg := newlines.Replace(e.Message)
	return append(lines, strings.Split(msg, "\n")...)
}

// AppendLog records entry so that it renders before every earlier one.
// Entries are separated by a single blank line.
func (mc *MetaContext) AppendLog(e Entry) error {
	if strings.ContainsAny(e.ID, "\r\n") || strings.ContainsAny(e.Author, "\r\n") {
		return fmt.Errorf("invalid log entry for %q", e.ID)
	}
	existing, err := mc.State.Read(state.KeyLog)
	if err != nil {
		return fmt.Errorf("read log: %w", err)
	}

	lines := e.Lines()
	if len(existing) > 0 {
		lines = append(lines, "")
		lines = append(lines, existing...)
	}
	if err := mc.State.Overwrite(state.KeyLog, lines); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}

// LogLines yields the rendered history, most recent first. An empty log
// yields NoCommits.
func (mc *MetaContext) LogLines() (iter.Seq[string], error) {
	lines, err := mc.State.Read(state.KeyLog)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	if len(lines) == 0 {
		lines = []string{NoCommits}
	}
	return func(yield func(string) bool) {
		for _, l := range lines {
			if !yield(l) {
				return
			}
		}
	}, nil
}
