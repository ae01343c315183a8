// Package commands implements the svcs subcommands and registers them, in
// display order, with the global command registry. help is dispatched but
// kept out of the --help summary.
package commands

import (
	"github.com/keshon/svcs/internal/command"
	"github.com/keshon/svcs/internal/middleware"
)

func init() {
	command.RegisterCommand(command.ApplyMiddlewares(
		&ConfigCommand{},
		middleware.WithStateLock(middleware.HasArgs),
		middleware.WithDebugArgsPrint(),
	))
	command.RegisterCommand(command.ApplyMiddlewares(
		&AddCommand{},
		middleware.WithStateLock(middleware.HasArgs),
		middleware.WithDebugArgsPrint(),
	))
	command.RegisterCommand(command.ApplyMiddlewares(
		&LogCommand{},
		middleware.WithDebugArgsPrint(),
	))
	command.RegisterCommand(command.ApplyMiddlewares(
		&CommitCommand{},
		middleware.WithStateLock(nil),
		middleware.WithDebugArgsPrint(),
	))
	command.RegisterCommand(command.ApplyMiddlewares(
		&CheckoutCommand{},
		middleware.WithStateLock(nil),
		middleware.WithDebugArgsPrint(),
	))
	command.RegisterHiddenCommand(command.ApplyMiddlewares(
		&HelpCommand{},
		middleware.WithDebugArgsPrint(),
	))
}
