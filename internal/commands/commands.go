package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

const prefix = "cmd "

// ErrUnknown is returned by Execute for a name that was never registered.
var ErrUnknown = errors.New("unknown command")

// Setup defines a command's flags on fs and returns the function to run once they are parsed.
// It is called on every Execute with a fresh FlagSet, so flags never leak between runs
// and fs.Visit reports exactly the flags given on this line.
type Setup func(fs *flag.FlagSet) func() error

// Command is a named subcommand.
type Command struct {
	Name  string
	Usage string
	setup Setup
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds or replaces a subcommand. name is the first token after "cmd" (e.g. "light").
func (r *Registry) Register(name, usage string, setup Setup) {
	r.cmds[name] = &Command{Name: name, Usage: usage, setup: setup}
}

// Names returns registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Usage returns one "name: usage" line per command.
func (r *Registry) Usage() []string {
	var out []string
	for _, n := range r.Names() {
		out = append(out, n+": "+r.cmds[n].Usage)
	}
	return out
}

// Parse interprets line as a console line. If line starts with "cmd " (case-sensitive),
// the rest is tokenized by spaces and returned with ok true. Otherwise nil, false.
func Parse(line string) (args []string, ok bool) {
	if !strings.HasPrefix(line, prefix) {
		return nil, false
	}
	rest := strings.TrimSpace(line[len(prefix):])
	if rest == "" {
		return nil, true
	}
	return strings.Fields(rest), true
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Returns an error for unknown command, parse error, or from the command itself.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand (have: %s)", strings.Join(r.Names(), ", "))
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	run := cmd.setup(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return run()
}
