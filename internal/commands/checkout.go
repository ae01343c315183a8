package commands

import (
	"errors"

	"github.com/keshon/svcs/internal/command"
	"github.com/keshon/svcs/internal/repo"
)

type CheckoutCommand struct{}

func (c *CheckoutCommand) Name() string      { return "checkout" }
func (c *CheckoutCommand) Aliases() []string { return nil }
func (c *CheckoutCommand) Usage() string     { return "checkout <commit-id>" }
func (c *CheckoutCommand) Brief() string     { return "Restore a file." }
func (c *CheckoutCommand) Help() string {
	return `Overwrite every tracked file with its copy in a commit.

The commit id must be given in full. Current contents of tracked files are
lost; untracked files are left alone.

Usage:
  checkout <commit-id>`
}

func (c *CheckoutCommand) Run(ctx *command.Context) error {
	if len(ctx.Args) == 0 {
		ctx.Println("Commit id was not passed.")
		return nil
	}
	id := ctx.Args[0]

	r, err := ctx.Repository()
	if err != nil {
		return err
	}

	err = r.Checkout(id)
	var pe *repo.PathError
	switch {
	case err == nil:
		ctx.Printf("Switched to commit %s.\n", id)
	case errors.Is(err, repo.ErrNoIdentifier):
		ctx.Println("Commit id was not passed.")
	case errors.Is(err, repo.ErrCommitNotFound):
		ctx.Println("Commit does not exist.")
	case errors.Is(err, repo.ErrFileMissing) && errors.As(err, &pe):
		ctx.Printf("Commit %s has no copy of '%s'.\n", id, pe.Path)
	case errors.Is(err, repo.ErrInvalidPath) && errors.As(err, &pe):
		ctx.Printf("Can't restore '%s'.\n", pe.Path)
	default:
		return err
	}
	return nil
}
