package command

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrUsage is returned when a command receives the wrong number of arguments.
var ErrUsage = errors.New("wrong number of arguments")

// ErrPanic wraps a value recovered from a panicking handler.
var ErrPanic = errors.New("command panicked")

type contextKey string

const invocationIDKey contextKey = "invocationID"

// WithInvocationID returns a copy of ctx carrying id.
func WithInvocationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, invocationIDKey, id)
}

// InvocationID retrieves the invocation ID from the context.
func InvocationID(ctx context.Context) string {
	if id, ok := ctx.Value(invocationIDKey).(string); ok {
		return id
	}
	return ""
}

// Result reports how a dispatched command ended.
type Result struct {
	Command string
	Failure *Error // nil when the command completed normally
}

// OK reports whether the command completed without a user-facing failure.
func (r Result) OK() bool { return r.Failure == nil }

// Dispatcher runs commands and turns handler failures into results.
type Dispatcher struct {
	log logrus.FieldLogger
}

// NewDispatcher creates a Dispatcher that logs through log.
func NewDispatcher(log logrus.FieldLogger) *Dispatcher {
	return &Dispatcher{log: log}
}

// Dispatch runs c with args, writing output to out. A *Error from the
// handler is printed to out and reported in the Result; any other error is
// returned.
func (d *Dispatcher) Dispatch(ctx context.Context, c *Command, args []string, out io.Writer) (Result, error) {
	res := Result{Command: c.Name}
	if len(args) != len(c.Args) {
		return res, fmt.Errorf("%s: %w: expected %d, got %d", c.Usage(), ErrUsage, len(c.Args), len(args))
	}

	id := uuid.New().String()
	ctx = WithInvocationID(ctx, id)
	log := d.log.WithFields(logrus.Fields{"invocation_id": id, "command": c.Name})
	log.Debug("dispatching command")

	err := run(ctx, c, &Invocation{Command: c, Args: args, Out: out})

	var cmdErr *Error
	switch {
	case err == nil:
		log.Debug("command completed")
	case errors.As(err, &cmdErr):
		fmt.Fprintln(out, cmdErr.Message)
		log.WithField("kind", cmdErr.Kind.String()).Info("command failed")
		res.Failure = cmdErr
	default:
		log.WithError(err).Error("command error")
		return res, fmt.Errorf("%s: %w", c.Name, err)
	}

	return res, nil
}

// run calls the handler, turning a panic into an error.
func run(ctx context.Context, c *Command, inv *Invocation) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	return c.Run(ctx, inv)
}
