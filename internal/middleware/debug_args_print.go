package middleware

import (
	"log/slog"

	"github.com/keshon/svcs/internal/command"
)

// WithDebugArgsPrint logs the command arguments at debug level.
func WithDebugArgsPrint() command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *command.Context) error {
				slog.Debug("command args", "cmd", cmd.Name(), "args", ctx.Args)
				return cmd.Run(ctx)
			},
		}
	}
}
