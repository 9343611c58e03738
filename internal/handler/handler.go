// Package handler implements the tracker commands on top of a storage.Store.
// Each handler call acquires exactly one session.
package handler

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/daap14/tracker/internal/command"
	"github.com/daap14/tracker/internal/storage"
	"github.com/daap14/tracker/internal/validation"
)

// Register adds every tracker command to reg, in menu order.
func Register(reg *command.Registry, store storage.Store, log logrus.FieldLogger) {
	users := NewUserHandler(store, log)
	teams := NewTeamHandler(store, log)
	projects := NewProjectHandler(store, log)

	for _, c := range []*command.Command{
		{
			Name:  "create-user",
			Short: "Create a new user.",
			Args:  []command.Arg{{Name: "name"}, {Name: "role"}},
			Run:   users.Create,
		},
		{
			Name:  "list-users",
			Short: "List all users.",
			Run:   users.List,
		},
		{
			Name:  "create-team",
			Short: "Create a team.",
			Args:  []command.Arg{{Name: "team_name"}},
			Run:   teams.Create,
		},
		{
			Name:  "list-teams",
			Short: "List all teams.",
			Run:   teams.List,
		},
		{
			Name:  "add-user-to-team",
			Short: "Assign a user to a team.",
			Args:  []command.Arg{{Name: "user_id", Kind: command.Int}, {Name: "team_id", Kind: command.Int}},
			Run:   teams.AddUser,
		},
		{
			Name:  "create-project",
			Short: "Create a new project.",
			Args:  []command.Arg{{Name: "title"}, {Name: "description"}},
			Run:   projects.Create,
		},
		{
			Name:  "list-projects",
			Short: "List all projects.",
			Run:   projects.List,
		},
		{
			Name:  "assign-project",
			Short: "Assign a user to a project.",
			Args:  []command.Arg{{Name: "project_id", Kind: command.Int}, {Name: "user_id", Kind: command.Int}},
			Run:   projects.Assign,
		},
		{
			Name:  "update-status",
			Short: "Update project status.",
			Args:  []command.Arg{{Name: "project_id", Kind: command.Int}, {Name: "status"}},
			Run:   projects.UpdateStatus,
		},
	} {
		reg.Register(c)
	}
}

func logger(ctx context.Context, log logrus.FieldLogger) logrus.FieldLogger {
	return log.WithField("invocation_id", command.InvocationID(ctx))
}

func validationError(errs []validation.FieldError) error {
	return command.Validation(validation.Join(errs) + ".")
}
