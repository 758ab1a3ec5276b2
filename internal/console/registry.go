package console

import (
	"fmt"
	"sort"
	"strings"
)

// Command defines a console command with its handler.
type Command struct {
	Name        string
	ShortName   string
	Description string
	Usage       string
	Handler     func(c *Console, args []string) error
}

// Registry maps command names and short names to commands.
type Registry struct {
	commands map[string]*Command
	ordered  []*Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]*Command)}
}

// Register adds cmd under its name and short name.
func (r *Registry) Register(cmd *Command) {
	r.commands[cmd.Name] = cmd
	if cmd.ShortName != "" {
		r.commands[cmd.ShortName] = cmd
	}
	r.ordered = append(r.ordered, cmd)
}

// Lookup finds a command by name or short name.
func (r *Registry) Lookup(name string) (*Command, bool) {
	cmd, ok := r.commands[strings.ToLower(name)]
	return cmd, ok
}

// Help lists every command, or describes one.
func (r *Registry) Help(name string) (string, error) {
	var sb strings.Builder
	if name != "" {
		cmd, ok := r.Lookup(name)
		if !ok {
			return "", fmt.Errorf("unknown command: %s", name)
		}
		fmt.Fprintf(&sb, "%s - %s\nusage: %s\n", cmd.Name, cmd.Description, cmd.Usage)
		return sb.String(), nil
	}

	cmds := append([]*Command(nil), r.ordered...)
	sort.SliceStable(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
	for _, cmd := range cmds {
		fmt.Fprintf(&sb, "  %-22s %s\n", cmd.Usage, cmd.Description)
	}
	sb.WriteString("  <from> <to> or <from><to> is short for move\n")
	return sb.String(), nil
}
