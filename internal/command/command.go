package command

import (
	"fmt"
	"io"

	"github.com/keshon/svcs/internal/repo"
)

// Command represents a cli command
type Command interface {
	Name() string
	Aliases() []string
	Usage() string
	Brief() string
	Help() string
	Run(ctx *Context) error
}

// Context represents a cli context
type Context struct {
	Args        []string
	Stdout      io.Writer
	WorkingTree string
	Options     *repo.Options

	repo *repo.Repository
}

// Repository opens the repository on first use and reuses it afterwards.
func (c *Context) Repository() (*repo.Repository, error) {
	if c.repo != nil {
		return c.repo, nil
	}
	r, err := repo.Open(c.WorkingTree, c.Options)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	c.repo = r
	return r, nil
}

// Close releases the repository if one was opened.
func (c *Context) Close() error {
	if c.repo == nil {
		return nil
	}
	err := c.repo.Close()
	c.repo = nil
	return err
}

// Println writes a line to the command's standard output.
func (c *Context) Println(a ...any) {
	fmt.Fprintln(c.Stdout, a...)
}

// Printf writes formatted output to the command's standard output.
func (c *Context) Printf(format string, a ...any) {
	fmt.Fprintf(c.Stdout, format, a...)
}
