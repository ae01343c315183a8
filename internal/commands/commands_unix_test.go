//go:build unix

package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/svcs/internal/command"
	"github.com/keshon/svcs/internal/config"
	"github.com/keshon/svcs/internal/lock"
)

func TestMutatingCommandsRespectLock(t *testing.T) {
	c := newCLI(t)
	c.write("a.txt", "hello")
	c.ok("add", "a.txt")

	l, err := lock.Acquire(config.NewRepoConfig(c.root).LockFile())
	require.NoError(t, err)
	defer l.Release()

	code, _, errOut := c.run("commit", "init")
	assert.Equal(t, command.ExitError, code)
	assert.Contains(t, errOut, lock.ErrLocked.Error())

	// read-only forms do not take the lock
	assert.Equal(t, "Tracked files:\na.txt\n", c.ok("add"))
	assert.Equal(t, "No commits yet.\n", c.ok("log"))
}
