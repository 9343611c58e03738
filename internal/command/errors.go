package command

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a token resolves to no registered command.
var ErrNotFound = errors.New("command not found")

// Kind classifies user-facing command failures.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindValidation
	KindInputFormat
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindInputFormat:
		return "input_format"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a failure reported to the user as a single message. The process
// or shell carries on afterwards.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// NotFound reports a reference to a record that does not exist.
func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }

// Validation reports a value outside its allowed set.
func Validation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }

// InputFormat reports an argument that could not be parsed.
func InputFormat(msg string) *Error { return &Error{Kind: KindInputFormat, Message: msg} }
