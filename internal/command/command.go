package command

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ArgKind is the expected type of a positional argument.
type ArgKind int

const (
	String ArgKind = iota
	Int
)

func (k ArgKind) String() string {
	switch k {
	case Int:
		return "integer"
	default:
		return "string"
	}
}

// Arg describes one positional argument.
type Arg struct {
	Name string
	Kind ArgKind
}

// Label is the upper-case form used in usage lines and prompts.
func (a Arg) Label() string {
	return strings.ToUpper(a.Name)
}

// Handler runs a command. It returns a *Error for failures the user should
// see as a message, and any other error for unexpected failures.
type Handler func(ctx context.Context, inv *Invocation) error

// Command is a named handler plus its argument descriptors.
type Command struct {
	Name  string
	Short string
	Args  []Arg
	Run   Handler
}

// Usage returns the name followed by the argument labels.
func (c *Command) Usage() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, a := range c.Args {
		parts = append(parts, a.Label())
	}
	return strings.Join(parts, " ")
}

// Invocation carries the collected arguments and the output writer for one
// handler call.
type Invocation struct {
	Command *Command
	Args    []string
	Out     io.Writer
}

// String returns the raw value of the named argument.
func (inv *Invocation) String(name string) string {
	i := inv.index(name)
	if i < 0 || i >= len(inv.Args) {
		return ""
	}
	return inv.Args[i]
}

// Int parses the named argument as a base-10 integer. A malformed value
// yields an InputFormat *Error.
func (inv *Invocation) Int(name string) (int64, error) {
	raw := inv.String(name)
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, InputFormat(fmt.Sprintf("Invalid %s: %q is not a whole number.", strings.ToUpper(name), raw))
	}
	return n, nil
}

// Printf writes one formatted line to the invocation output.
func (inv *Invocation) Printf(format string, args ...any) {
	fmt.Fprintf(inv.Out, format+"\n", args...)
}

func (inv *Invocation) index(name string) int {
	if inv.Command == nil {
		return -1
	}
	for i, a := range inv.Command.Args {
		if a.Name == name {
			return i
		}
	}
	return -1
}
