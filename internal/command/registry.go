package command

import "strconv"

// Registry maps command names to commands, remembering registration order.
type Registry struct {
	order    []string
	commands map[string]*Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]*Command),
	}
}

// Register adds c under c.Name. Registering a name again replaces the
// command but keeps its original position.
func (r *Registry) Register(c *Command) {
	if _, exists := r.commands[c.Name]; !exists {
		r.order = append(r.order, c.Name)
	}
	r.commands[c.Name] = c
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Commands returns the registered commands in registration order.
func (r *Registry) Commands() []*Command {
	cmds := make([]*Command, 0, len(r.order))
	for _, name := range r.order {
		cmds = append(cmds, r.commands[name])
	}
	return cmds
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.order)
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (*Command, bool) {
	c, ok := r.commands[name]
	return c, ok
}

// Resolve finds the command for token. An all-digit token within range
// selects the command at that 1-based position; anything else is looked up
// as a literal name.
func (r *Registry) Resolve(token string) (*Command, error) {
	name := token
	if i, ok := r.index(token); ok {
		name = r.order[i]
	}

	c, ok := r.commands[name]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

// Canonical returns the command name token refers to, or token unchanged if
// it resolves to nothing.
func (r *Registry) Canonical(token string) string {
	if c, err := r.Resolve(token); err == nil {
		return c.Name
	}
	return token
}

// index converts an all-digit token to a 0-based position in r.order.
func (r *Registry) index(token string) (int, bool) {
	if !IsNumber(token) {
		return 0, false
	}
	n, err := strconv.Atoi(token)
	if err != nil || n < 1 || n > len(r.order) {
		return 0, false
	}
	return n - 1, true
}

// IsNumber reports whether s is non-empty and made only of ASCII digits.
func IsNumber(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
