package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/svcs/internal/command"
	_ "github.com/keshon/svcs/internal/commands"
	"github.com/keshon/svcs/internal/config"
	"github.com/keshon/svcs/internal/hash"
	"github.com/keshon/svcs/internal/repo"
)

const summary = `These are SVCS commands:
config     Get and set a username.
add        Add a file to the index.
log        Show commit logs.
commit     Save changes.
checkout   Restore a file.
`

type cli struct {
	t    *testing.T
	root string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	t.Setenv(config.EnvStateDir, "")
	return &cli{t: t, root: t.TempDir()}
}

// run invokes the CLI and returns the exit code, stdout and stderr.
func (c *cli) run(args ...string) (int, string, string) {
	c.t.Helper()
	var stdout, stderr bytes.Buffer
	code := command.RunCLI(args, command.RunOptions{
		Stdout:      &stdout,
		Stderr:      &stderr,
		WorkingTree: c.root,
		Repo:        &repo.Options{Settings: config.NewDefaultSettings()},
	})
	return code, stdout.String(), stderr.String()
}

// ok runs args, requires exit code 0 and returns stdout.
func (c *cli) ok(args ...string) string {
	c.t.Helper()
	code, out, errOut := c.run(args...)
	require.Equal(c.t, command.ExitOK, code, "stderr: %s", errOut)
	return out
}

func (c *cli) write(name, content string) {
	c.t.Helper()
	p := filepath.Join(c.root, name)
	require.NoError(c.t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(c.t, os.WriteFile(p, []byte(content), 0o644))
}

func (c *cli) read(name string) string {
	c.t.Helper()
	data, err := os.ReadFile(filepath.Join(c.root, name))
	require.NoError(c.t, err)
	return string(data)
}

func TestSummary(t *testing.T) {
	c := newCLI(t)

	for _, args := range [][]string{nil, {"--help"}} {
		code, out, _ := c.run(args...)
		assert.Equal(t, command.ExitUsage, code)
		assert.Equal(t, summary, out)
	}

	assert.Equal(t, summary, c.ok("help"))
}

func TestUnknownCommand(t *testing.T) {
	c := newCLI(t)
	code, out, _ := c.run("wrong")
	assert.Equal(t, command.ExitUnknownCommand, code)
	assert.Equal(t, "'wrong' is not a SVCS command.\n", out)
}

func TestBrokenSettingsOnlyFailRepoCommands(t *testing.T) {
	c := newCLI(t)
	for _, k := range []string{config.EnvHash, config.EnvStateBackend, config.EnvLogLevel} {
		t.Setenv(k, "")
	}
	c.write("vcs/settings.yaml", "hash: md5\n")

	run := func(args ...string) (int, string, string) {
		var stdout, stderr bytes.Buffer
		code := command.RunCLI(args, command.RunOptions{
			Stdout:      &stdout,
			Stderr:      &stderr,
			WorkingTree: c.root,
			Repo:        &repo.Options{},
		})
		return code, stdout.String(), stderr.String()
	}

	code, out, _ := run()
	assert.Equal(t, command.ExitUsage, code)
	assert.Equal(t, summary, out)

	code, _, _ = run("wrong")
	assert.Equal(t, command.ExitUnknownCommand, code)

	code, _, errOut := run("log")
	assert.Equal(t, command.ExitError, code)
	assert.Contains(t, errOut, "Error:")
}

func TestHelpForCommand(t *testing.T) {
	c := newCLI(t)
	out := c.ok("help", "checkout")
	assert.True(t, strings.HasPrefix(out, "Usage: checkout <commit-id>\n\n"))

	assert.Equal(t, "'nope' is not a SVCS command.\n", c.ok("help", "nope"))
}

func TestConfig(t *testing.T) {
	c := newCLI(t)
	assert.Equal(t, "Please, tell me who you are.\n", c.ok("config"))
	assert.Equal(t, "The username is max.\n", c.ok("config", "max"))
	assert.Equal(t, "The username is max.\n", c.ok("config"))
	assert.Equal(t, "The username is John Doe.\n", c.ok("config", "John", "Doe"))
	assert.Equal(t, "The username must fit on one line.\n", c.ok("config", "a\nb"))
	assert.Equal(t, "The username is John Doe.\n", c.ok("config"))

	data, err := os.ReadFile(filepath.Join(c.root, "vcs", "config.txt"))
	require.NoError(t, err)
	assert.Equal(t, "John Doe\n", string(data))
}

func TestAdd(t *testing.T) {
	c := newCLI(t)
	assert.Equal(t, "Add a file to the index.\n", c.ok("add"))

	c.write("file1.txt", "one")
	c.write("dir/file2.txt", "two")

	assert.Equal(t, "The file 'file1.txt' is tracked.\n", c.ok("add", "file1.txt"))
	assert.Equal(t, "Can't find 'notexists.txt'.\n", c.ok("add", "notexists.txt"))
	assert.Equal(t, "The file 'dir/file2.txt' is tracked.\n", c.ok("add", "dir/file2.txt"))
	assert.Equal(t, "Can't track 'dir'.\n", c.ok("add", "dir"))
	assert.Equal(t, "Can't track 'vcs/index.txt'.\n", c.ok("add", "vcs/index.txt"))

	assert.Equal(t, "Tracked files:\nfile1.txt\ndir/file2.txt\n", c.ok("add"))
}

func TestLogEmpty(t *testing.T) {
	c := newCLI(t)
	assert.Equal(t, "No commits yet.\n", c.ok("log"))
}

func TestCommitAndCheckout(t *testing.T) {
	c := newCLI(t)
	c.ok("config", "alice")
	c.write("a.txt", "hello")
	c.write("b.txt", "world")
	c.ok("add", "a.txt")
	c.ok("add", "b.txt")

	assert.Equal(t, "Message was not passed.\n", c.ok("commit"))
	assert.Equal(t, "Changes are committed.\n", c.ok("commit", "init"))
	assert.Equal(t, "Nothing to commit.\n", c.ok("commit", "again"))

	h1 := hash.Must(hash.SHA256).Sum([]byte("helloworld"))
	assert.Equal(t, "commit "+h1+"\nAuthor: alice\ninit\n", c.ok("log"))

	c.write("a.txt", "HELLO")
	assert.Equal(t, "Changes are committed.\n", c.ok("commit", "second", "change"))
	h2 := hash.Must(hash.SHA256).Sum([]byte("HELLOworld"))
	assert.Equal(t,
		"commit "+h2+"\nAuthor: alice\nsecond change\n\ncommit "+h1+"\nAuthor: alice\ninit\n",
		c.ok("log"))

	assert.Equal(t, "Commit id was not passed.\n", c.ok("checkout"))
	assert.Equal(t, "Commit does not exist.\n", c.ok("checkout", "123"))
	assert.Equal(t, "Commit does not exist.\n", c.ok("checkout", h1[:10]))

	assert.Equal(t, "Switched to commit "+h1+".\n", c.ok("checkout", h1))
	assert.Equal(t, "hello", c.read("a.txt"))
	assert.Equal(t, "world", c.read("b.txt"))

	assert.Equal(t, "Switched to commit "+h2+".\n", c.ok("checkout", h2))
	assert.Equal(t, "HELLO", c.read("a.txt"))
}

func TestCommitUnreadableFile(t *testing.T) {
	c := newCLI(t)
	c.write("a.txt", "hello")
	c.ok("add", "a.txt")
	require.NoError(t, os.Remove(filepath.Join(c.root, "a.txt")))

	assert.Equal(t, "Can't read tracked file 'a.txt'.\n", c.ok("commit", "init"))
	assert.Equal(t, "No commits yet.\n", c.ok("log"))
}

func TestCheckoutMissingFile(t *testing.T) {
	c := newCLI(t)
	c.write("a.txt", "hello")
	c.ok("add", "a.txt")
	c.ok("commit", "init")
	h1 := hash.Must(hash.SHA256).Sum([]byte("hello"))

	c.write("b.txt", "later")
	c.ok("add", "b.txt")
	c.write("a.txt", "edited")

	assert.Equal(t, "Commit "+h1+" has no copy of 'b.txt'.\n", c.ok("checkout", h1))
	assert.Equal(t, "edited", c.read("a.txt"))
}

func TestCheckoutOverDirectory(t *testing.T) {
	c := newCLI(t)
	c.write("a.txt", "hello")
	c.write("b.txt", "world")
	c.ok("add", "a.txt")
	c.ok("add", "b.txt")
	c.ok("commit", "init")
	h1 := hash.Must(hash.SHA256).Sum([]byte("helloworld"))

	c.write("a.txt", "edited")
	require.NoError(t, os.Remove(filepath.Join(c.root, "b.txt")))
	require.NoError(t, os.Mkdir(filepath.Join(c.root, "b.txt"), 0o755))

	assert.Equal(t, "Can't restore 'b.txt'.\n", c.ok("checkout", h1))
	assert.Equal(t, "edited", c.read("a.txt"))
}

func TestInternalErrorExitCode(t *testing.T) {
	c := newCLI(t)
	// A regular file where the state directory should be makes opening fail.
	c.write("vcs", "not a directory")

	code, out, errOut := c.run("log")
	assert.Equal(t, command.ExitError, code)
	assert.Empty(t, out)
	assert.True(t, strings.HasPrefix(errOut, "Error: "), errOut)
}
