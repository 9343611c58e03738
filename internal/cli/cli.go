// Package cli exposes the command registry as a cobra command tree. Each
// registered command becomes a subcommand; running the binary without a
// command starts the interactive shell.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/daap14/tracker/internal/command"
	"github.com/daap14/tracker/internal/shell"
)

const (
	appName  = "tracker"
	appShort = "Project Tracker CLI - Manage users, teams, and projects."
)

// CLI wires a registry and dispatcher to a cobra root command.
type CLI struct {
	reg  *command.Registry
	root *cobra.Command
}

// New builds the command tree from the commands currently in reg.
func New(reg *command.Registry, disp *command.Dispatcher, log logrus.FieldLogger) *CLI {
	root := &cobra.Command{
		Use:           appName,
		Short:         appShort,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return shell.New(reg, disp, cmd.InOrStdin(), cmd.OutOrStdout(), log).Run(cmd.Context())
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	for _, c := range reg.Commands() {
		root.AddCommand(subcommand(c, disp))
	}

	defaultHelp := root.HelpFunc()
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != root {
			defaultHelp(cmd, args)
			return
		}
		writeHelp(cmd.OutOrStdout(), reg)
	})

	return &CLI{reg: reg, root: root}
}

// Root returns the underlying cobra command, mainly so callers can redirect
// its input and output.
func (c *CLI) Root() *cobra.Command {
	return c.root
}

// Execute runs the command line args. A leading all-digit token naming a
// registered position is replaced by that command's name first.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 && command.IsNumber(args[0]) {
		rewritten := make([]string, len(args))
		copy(rewritten, args)
		rewritten[0] = c.reg.Canonical(args[0])
		args = rewritten
	}
	c.root.SetArgs(args)
	return c.root.ExecuteContext(ctx)
}

func subcommand(c *command.Command, disp *command.Dispatcher) *cobra.Command {
	return &cobra.Command{
		Use:   c.Usage(),
		Short: c.Short,
		Args:  cobra.ExactArgs(len(c.Args)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, err := disp.Dispatch(cmd.Context(), c, args, cmd.OutOrStdout())
			return err
		},
	}
}

func writeHelp(w io.Writer, reg *command.Registry) {
	width := 0
	for _, name := range reg.Names() {
		width = max(width, len(name))
	}

	fmt.Fprintf(w, "%s\n\n", appShort)
	fmt.Fprintf(w, "Usage:\n  %s                  start the interactive menu\n", appName)
	fmt.Fprintf(w, "  %s COMMAND [ARGS]   run a command by name or number\n\n", appName)
	fmt.Fprintln(w, "Commands:")
	for i, c := range reg.Commands() {
		fmt.Fprintf(w, "  %d) %-*s  %s\n", i+1, width, c.Name, c.Short)
	}
	fmt.Fprintf(w, "\nUse \"%s COMMAND --help\" for a command's arguments.\n", appName)
}
