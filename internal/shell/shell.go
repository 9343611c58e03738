// Package shell implements the numbered-menu interactive mode. It is a
// single-threaded loop over the command registry:
//
//	Start -> ShowMenu -> AwaitInput -> {Dispatch -> ShowMenu | Exit}
//
// The shell only collects argument strings; parsing and validation belong
// to the handlers.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/daap14/tracker/internal/command"
)

const banner = `
+-----------------------------------------------+
|                                               |
|   P R O J E C T   T R A C K E R               |
|                                               |
|   users . teams . projects                    |
|                                               |
+-----------------------------------------------+
`

const (
	msgSelect      = "\nSelect an option:"
	msgPrompt      = "\nEnter number (or q to quit): "
	msgNotANumber  = "Please enter a number."
	msgInvalid     = "Invalid choice."
	msgGoodbye     = "Goodbye!"
	msgErrorPrefix = "Error: "
)

type state int

const (
	stateShowMenu state = iota
	stateAwaitInput
	stateDispatch
	stateExit
)

func (s state) String() string {
	switch s {
	case stateShowMenu:
		return "show_menu"
	case stateAwaitInput:
		return "await_input"
	case stateDispatch:
		return "dispatch"
	case stateExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Shell is an interactive menu over a command registry.
type Shell struct {
	reg  *command.Registry
	disp *command.Dispatcher
	in   *bufio.Scanner
	out  io.Writer
	log  logrus.FieldLogger

	selected *command.Command
	readErr  error
}

// New creates a Shell reading selections from in and writing to out.
func New(reg *command.Registry, disp *command.Dispatcher, in io.Reader, out io.Writer, log logrus.FieldLogger) *Shell {
	return &Shell{
		reg:  reg,
		disp: disp,
		in:   bufio.NewScanner(in),
		out:  out,
		log:  log,
	}
}

// Run prints the banner and loops until the user quits or input ends. It
// returns an error only if reading input fails.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprint(s.out, banner)

	st := stateShowMenu
	for {
		s.log.WithField("state", st.String()).Trace("shell transition")

		switch st {
		case stateShowMenu:
			s.showMenu()
			st = stateAwaitInput
		case stateAwaitInput:
			st = s.awaitInput(ctx)
		case stateDispatch:
			st = s.dispatch(ctx)
		case stateExit:
			fmt.Fprintln(s.out, msgGoodbye)
			return s.readErr
		}
	}
}

func (s *Shell) showMenu() {
	fmt.Fprintln(s.out, msgSelect)
	for i, name := range s.reg.Names() {
		fmt.Fprintf(s.out, "%d) %s\n", i+1, name)
	}
}

func (s *Shell) awaitInput(ctx context.Context) state {
	if ctx.Err() != nil {
		return stateExit
	}

	fmt.Fprint(s.out, msgPrompt)
	line, ok := s.readLine()
	if !ok {
		return stateExit
	}

	token := strings.TrimSpace(line)
	if isExit(token) {
		return stateExit
	}
	if !command.IsNumber(token) {
		fmt.Fprintln(s.out, msgNotANumber)
		return stateAwaitInput
	}
	if n, err := strconv.Atoi(token); err != nil || n < 1 || n > s.reg.Len() {
		fmt.Fprintln(s.out, msgInvalid)
		return stateAwaitInput
	}

	c, err := s.reg.Resolve(token)
	if err != nil {
		fmt.Fprintln(s.out, msgInvalid)
		return stateAwaitInput
	}

	s.selected = c
	return stateDispatch
}

func (s *Shell) dispatch(ctx context.Context) state {
	c := s.selected
	s.selected = nil

	args := make([]string, 0, len(c.Args))
	for _, a := range c.Args {
		fmt.Fprintf(s.out, "Enter %s: ", a.Label())
		line, ok := s.readLine()
		if !ok {
			return stateExit
		}
		args = append(args, line)
	}

	if _, err := s.disp.Dispatch(ctx, c, args, s.out); err != nil {
		fmt.Fprintln(s.out, msgErrorPrefix+err.Error())
	}
	return stateShowMenu
}

// readLine returns the next input line without its line terminator. At end
// of input it terminates the pending prompt line and reports false.
func (s *Shell) readLine() (string, bool) {
	if s.in.Scan() {
		return strings.TrimSuffix(s.in.Text(), "\r"), true
	}
	if err := s.in.Err(); err != nil && !errors.Is(err, io.EOF) {
		s.readErr = fmt.Errorf("reading input: %w", err)
	}
	fmt.Fprintln(s.out)
	return "", false
}

func isExit(token string) bool {
	switch strings.ToLower(token) {
	case "q", "quit", "exit":
		return true
	}
	return false
}
