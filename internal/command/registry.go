package command

import (
	"fmt"
	"strings"
)

// Registry maps command names and aliases to commands and remembers the
// order they were registered in.
type Registry struct {
	byName map[string]Command
	order  []Command
	hidden map[string]bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Command), hidden: make(map[string]bool)}
}

// Register adds cmd under its name and aliases. A later registration of
// the same name replaces the earlier one.
func (r *Registry) Register(cmd Command) {
	if prev, ok := r.byName[cmd.Name()]; ok {
		for i, c := range r.order {
			if c == prev {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
	}
	r.order = append(r.order, cmd)
	for _, n := range append([]string{cmd.Name()}, cmd.Aliases()...) {
		r.byName[n] = cmd
	}
	delete(r.hidden, cmd.Name())
}

// RegisterHidden adds cmd like Register but leaves it out of Summary.
func (r *Registry) RegisterHidden(cmd Command) {
	r.Register(cmd)
	r.hidden[cmd.Name()] = true
}

// Get returns a command by name or alias.
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.byName[name]
	return cmd, ok
}

// All returns the commands in registration order.
func (r *Registry) All() []Command {
	return append([]Command(nil), r.order...)
}

// Summary renders the command overview printed for --help. Hidden
// commands are not listed.
func (r *Registry) Summary() string {
	var b strings.Builder
	b.WriteString("These are SVCS commands:")
	for _, cmd := range r.order {
		if r.hidden[cmd.Name()] {
			continue
		}
		fmt.Fprintf(&b, "\n%-11s%s", cmd.Name(), cmd.Brief())
	}
	return b.String()
}

var registry = NewRegistry()

// RegisterCommand adds a command to the global registry
func RegisterCommand(cmd Command) {
	registry.Register(cmd)
}

// RegisterHiddenCommand adds a command that Summary does not list.
func RegisterHiddenCommand(cmd Command) {
	registry.RegisterHidden(cmd)
}

// GetCommand returns a command by name
func GetCommand(name string) (Command, bool) {
	return registry.Get(name)
}

// AllCommands returns all commands registered in the global registry.
func AllCommands() []Command {
	return registry.All()
}

// Summary renders the global command overview.
func Summary() string {
	return registry.Summary()
}
