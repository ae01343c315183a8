// Package state persists the ordered record lists (index, log, username)
// that make up the repository's mutable state.
package state

import (
	"errors"
	"fmt"
	"strings"
)

// Key names one record list.
type Key string

const (
	KeyConfig Key = "config"
	KeyIndex  Key = "index"
	KeyLog    Key = "log"
)

var (
	ErrUnknownKey    = errors.New("unknown state key")
	ErrInvalidRecord = errors.New("record contains a line break")
)

// Store keeps ordered sequences of single-line records.
//
// Read returns the records of key in order (nil when none). Append adds
// records to the end. Overwrite replaces the whole sequence. Both writes
// are atomic: after a failure the previous sequence is still intact.
type Store interface {
	Read(key Key) ([]string, error)
	Append(key Key, records ...string) error
	Overwrite(key Key, records []string) error
	Close() error
}

func checkKey(key Key) error {
	switch key {
	case KeyConfig, KeyIndex, KeyLog:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

func checkRecords(records []string) error {
	for _, r := range records {
		if strings.ContainsAny(r, "\r\n") {
			return fmt.Errorf("%w: %q", ErrInvalidRecord, r)
		}
	}
	return nil
}
