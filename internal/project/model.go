package project

import (
	"errors"
	"strings"
)

// ErrInvalidStatus is returned when a status is outside the enumeration.
var ErrInvalidStatus = errors.New("invalid project status")

// Status is the lifecycle state of a project.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

var statuses = []Status{StatusNotStarted, StatusInProgress, StatusCompleted}

// Statuses returns the valid statuses in their canonical order.
func Statuses() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}

// StatusNames returns Statuses joined for display.
func StatusNames() string {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// ParseStatus returns the Status named s. Matching is exact.
func ParseStatus(s string) (Status, error) {
	for _, st := range statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", ErrInvalidStatus
}

// Valid reports whether s is one of the enumerated statuses.
func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

// Project represents a row in the projects table.
type Project struct {
	ID          int64
	Title       string
	Description string
	Status      Status
	UserID      *int64 // assigned user, nil when unassigned

	// AssigneeName is filled from a join on users by List.
	AssigneeName *string
}
