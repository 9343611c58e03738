// Package storage defines the storage-context contract shared by the
// backends. A Store lives for the whole process; a Session is a scoped
// connection used by a single command.
package storage

import (
	"context"

	"github.com/daap14/tracker/internal/project"
	"github.com/daap14/tracker/internal/team"
	"github.com/daap14/tracker/internal/user"
)

// Session exposes the repositories bound to one dedicated connection.
type Session struct {
	Users    user.Repository
	Teams    team.Repository
	Projects project.Repository
}

// Store hands out sessions.
type Store interface {
	// WithSession acquires a connection, calls fn with repositories bound to
	// it and releases the connection when fn returns, whatever the outcome.
	// The error from fn is returned unchanged.
	WithSession(ctx context.Context, fn func(Session) error) error

	// Close releases every resource held by the store.
	Close() error
}
