package commands

import (
	"errors"
	"strings"

	"github.com/keshon/svcs/internal/command"
	"github.com/keshon/svcs/internal/repo"
)

type CommitCommand struct{}

func (c *CommitCommand) Name() string      { return "commit" }
func (c *CommitCommand) Aliases() []string { return nil }
func (c *CommitCommand) Usage() string     { return `commit "<message>"` }
func (c *CommitCommand) Brief() string     { return "Save changes." }
func (c *CommitCommand) Help() string {
	return `Snapshot every tracked file.

The snapshot is named by a hash of the tracked contents. If nothing has
changed since a snapshot with the same contents was taken, no new commit is
recorded.

Usage:
  commit "<message>"`
}

func (c *CommitCommand) Run(ctx *command.Context) error {
	message := strings.Join(ctx.Args, " ")
	if !repo.ValidMessage(message) {
		ctx.Println("Message was not passed.")
		return nil
	}

	r, err := ctx.Repository()
	if err != nil {
		return err
	}

	res, err := r.Commit(message)
	var pe *repo.PathError
	switch {
	case err == nil:
	case errors.Is(err, repo.ErrNoMessage):
		ctx.Println("Message was not passed.")
		return nil
	case errors.Is(err, repo.ErrFileUnavailable) && errors.As(err, &pe):
		ctx.Printf("Can't read tracked file '%s'.\n", pe.Path)
		return nil
	default:
		return err
	}

	if res.Status == repo.NothingToCommit {
		ctx.Println("Nothing to commit.")
		return nil
	}
	ctx.Println("Changes are committed.")
	return nil
}
