// Package command holds the command registry shared by the CLI and the
// interactive shell. Commands are kept in registration order, which is also
// the numbering shown to users, and can be resolved either by name or by
// their 1-based position. Each command declares its positional arguments so
// callers can prompt for them without knowing the handler.
package command
