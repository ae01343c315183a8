package middleware

import (
	"log/slog"

	"github.com/keshon/svcs/internal/command"
	"github.com/keshon/svcs/internal/config"
	"github.com/keshon/svcs/internal/lock"
)

// WithStateLock holds the state directory lock while the command runs.
// When when is non-nil the lock is only taken if it reports true, so
// read-only forms of a command stay lock-free.
func WithStateLock(when func(ctx *command.Context) bool) command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *command.Context) error {
				if when != nil && !when(ctx) {
					return cmd.Run(ctx)
				}
				path := config.NewRepoConfig(ctx.WorkingTree).LockFile()
				l, err := lock.Acquire(path)
				if err != nil {
					slog.Warn("state lock unavailable", "path", path, "err", err)
					return err
				}
				defer func() {
					if err := l.Release(); err != nil {
						slog.Warn("failed to release state lock", "path", path, "err", err)
					}
				}()
				return cmd.Run(ctx)
			},
		}
	}
}

// HasArgs reports whether the command was given any arguments.
func HasArgs(ctx *command.Context) bool {
	return len(ctx.Args) > 0
}
