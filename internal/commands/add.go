package commands

import (
	"errors"

	"github.com/keshon/svcs/internal/command"
	"github.com/keshon/svcs/internal/repo"
)

type AddCommand struct{}

func (c *AddCommand) Name() string      { return "add" }
func (c *AddCommand) Aliases() []string { return nil }
func (c *AddCommand) Usage() string     { return "add [path...]" }
func (c *AddCommand) Brief() string     { return "Add a file to the index." }
func (c *AddCommand) Help() string {
	return `Track files for the next commit.

Usage:
  add           - list tracked files
  add <path>    - start tracking a file (relative to the working tree)`
}

func (c *AddCommand) Run(ctx *command.Context) error {
	r, err := ctx.Repository()
	if err != nil {
		return err
	}

	if len(ctx.Args) == 0 {
		tracked, err := r.Tracked()
		if err != nil {
			return err
		}
		if len(tracked) == 0 {
			ctx.Println("Add a file to the index.")
			return nil
		}
		ctx.Println("Tracked files:")
		for _, p := range tracked {
			ctx.Println(p)
		}
		return nil
	}

	for _, arg := range ctx.Args {
		_, err := r.Add(arg)
		switch {
		case err == nil:
			ctx.Printf("The file '%s' is tracked.\n", arg)
		case errors.Is(err, repo.ErrNotFound):
			ctx.Printf("Can't find '%s'.\n", arg)
		case errors.Is(err, repo.ErrInvalidPath):
			ctx.Printf("Can't track '%s'.\n", arg)
		default:
			return err
		}
	}
	return nil
}
