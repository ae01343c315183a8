package commands

import (
	"strings"

	"github.com/keshon/svcs/internal/command"
)

type HelpCommand struct{}

func (c *HelpCommand) Name() string      { return "help" }
func (c *HelpCommand) Aliases() []string { return nil }
func (c *HelpCommand) Usage() string     { return "help [command]" }
func (c *HelpCommand) Brief() string     { return "Show help for commands." }
func (c *HelpCommand) Help() string {
	return `Display help information for commands.

Usage:
  help          - list all commands
  help <name>   - show detailed help for a specific command`
}

func (c *HelpCommand) Run(ctx *command.Context) error {
	if len(ctx.Args) == 0 {
		ctx.Println(command.Summary())
		return nil
	}

	name := strings.ToLower(ctx.Args[0])
	cmd, ok := command.GetCommand(name)
	if !ok {
		ctx.Printf("'%s' is not a SVCS command.\n", name)
		return nil
	}
	ctx.Printf("Usage: %s\n\n%s\n", cmd.Usage(), cmd.Help())
	return nil
}
