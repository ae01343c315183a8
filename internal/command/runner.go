package command

import (
	"fmt"
	"io"
	"os"

	"github.com/keshon/svcs/internal/repo"
)

// Process exit codes.
const (
	ExitOK             = 0
	ExitUsage          = 1
	ExitUnknownCommand = 2
	ExitError          = 3
)

// RunOptions configures a single CLI invocation.
type RunOptions struct {
	Stdout      io.Writer
	Stderr      io.Writer
	WorkingTree string
	Repo        *repo.Options
	Registry    *Registry
}

// RunCLI dispatches args to the registered command and returns the exit
// code. Outcomes a command reports to the user are not errors; only an
// error returned from Run maps to ExitError.
func RunCLI(args []string, opts RunOptions) int {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Registry == nil {
		opts.Registry = registry
	}

	if len(args) == 0 || args[0] == "--help" {
		fmt.Fprintln(opts.Stdout, opts.Registry.Summary())
		return ExitUsage
	}

	cmd, ok := opts.Registry.Get(args[0])
	if !ok {
		fmt.Fprintf(opts.Stdout, "'%s' is not a SVCS command.\n", args[0])
		return ExitUnknownCommand
	}

	ctx := &Context{
		Args:        args[1:],
		Stdout:      opts.Stdout,
		WorkingTree: opts.WorkingTree,
		Options:     opts.Repo,
	}
	err := cmd.Run(ctx)
	if cerr := ctx.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(opts.Stderr, "Error:", err)
		return ExitError
	}
	return ExitOK
}
