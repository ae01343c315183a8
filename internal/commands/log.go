package commands

import (
	"github.com/keshon/svcs/internal/command"
)

type LogCommand struct{}

func (c *LogCommand) Name() string      { return "log" }
func (c *LogCommand) Aliases() []string { return nil }
func (c *LogCommand) Usage() string     { return "log" }
func (c *LogCommand) Brief() string     { return "Show commit logs." }
func (c *LogCommand) Help() string {
	return `Show the commit history, most recent first.

Usage:
  log`
}

func (c *LogCommand) Run(ctx *command.Context) error {
	r, err := ctx.Repository()
	if err != nil {
		return err
	}
	lines, err := r.Log()
	if err != nil {
		return err
	}
	for line := range lines {
		ctx.Println(line)
	}
	return nil
}
