package commands

import (
	"errors"
	"strings"

	"github.com/keshon/svcs/internal/command"
	"github.com/keshon/svcs/internal/repo"
)

type ConfigCommand struct{}

func (c *ConfigCommand) Name() string      { return "config" }
func (c *ConfigCommand) Aliases() []string { return nil }
func (c *ConfigCommand) Usage() string     { return "config [name]" }
func (c *ConfigCommand) Brief() string     { return "Get and set a username." }
func (c *ConfigCommand) Help() string {
	return `Get or set the author recorded in new commits.

Usage:
  config          - show the current username
  config <name>   - set the username`
}

func (c *ConfigCommand) Run(ctx *command.Context) error {
	r, err := ctx.Repository()
	if err != nil {
		return err
	}

	if len(ctx.Args) > 0 {
		err := r.SetUsername(strings.Join(ctx.Args, " "))
		if errors.Is(err, repo.ErrInvalidUsername) {
			ctx.Println("The username must fit on one line.")
			return nil
		}
		if err != nil {
			return err
		}
	}

	name, err := r.Username()
	if err != nil {
		return err
	}
	if name == "" {
		ctx.Println("Please, tell me who you are.")
		return nil
	}
	ctx.Printf("The username is %s.\n", name)
	return nil
}
