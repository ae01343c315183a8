package meta

import (
	"errors"
	"fmt"
	"strings"

	"github.com/keshon/svcs/internal/state"
)

var ErrInvalidUsername = errors.New("invalid username")

// Username returns the configured username, or "" when unset.
func (mc *MetaContext) Username() (string, error) {
	lines, err := mc.State.Read(state.KeyConfig)
	if err != nil {
		return "", fmt.Errorf("read username: %w", err)
	}
	if len(lines) == 0 {
		return "", nil
	}
	return lines[0], nil
}

// SetUsername stores name verbatim, surrounding whitespace included. An
// empty name unsets it.
func (mc *MetaContext) SetUsername(name string) error {
	if strings.ContainsAny(name, "\r\n") {
		return fmt.Errorf("%w: %q contains a line break", ErrInvalidUsername, name)
	}

	var records []string
	if name != "" {
		records = []string{name}
	}
	if err := mc.State.Overwrite(state.KeyConfig, records); err != nil {
		return fmt.Errorf("write username: %w", err)
	}
	return nil
}
