package project

import (
	"context"
	"errors"
)

// ErrProjectNotFound is returned when a project record is not found.
var ErrProjectNotFound = errors.New("project not found")

// Repository provides operations on the projects table.
type Repository interface {
	// Create inserts p. An empty Status is stored as StatusNotStarted.
	Create(ctx context.Context, p *Project) error
	GetByID(ctx context.Context, id int64) (*Project, error)
	List(ctx context.Context) ([]Project, error)
	// Assign points the project at userID, replacing any previous assignee.
	Assign(ctx context.Context, projectID, userID int64) error
	UpdateStatus(ctx context.Context, id int64, status Status) error
}
