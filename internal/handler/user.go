package handler

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/daap14/tracker/internal/command"
	"github.com/daap14/tracker/internal/storage"
	"github.com/daap14/tracker/internal/user"
	"github.com/daap14/tracker/internal/validation"
)

// UserHandler handles the user commands.
type UserHandler struct {
	store storage.Store
	log   logrus.FieldLogger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(store storage.Store, log logrus.FieldLogger) *UserHandler {
	return &UserHandler{store: store, log: log}
}

// Create handles create-user NAME ROLE.
func (h *UserHandler) Create(ctx context.Context, inv *command.Invocation) error {
	req := validation.CreateUserRequest{
		Name: inv.String("name"),
		Role: inv.String("role"),
	}
	if errs := validation.ValidateCreateUserRequest(&req); len(errs) > 0 {
		return validationError(errs)
	}

	u := &user.User{Name: req.Name, Role: req.Role}
	err := h.store.WithSession(ctx, func(s storage.Session) error {
		return s.Users.Create(ctx, u)
	})
	if err != nil {
		return fmt.Errorf("creating user: %w", err)
	}

	logger(ctx, h.log).WithField("user_id", u.ID).Info("user created")
	inv.Printf("User '%s' created successfully!", u.Name)
	return nil
}

// List handles list-users.
func (h *UserHandler) List(ctx context.Context, inv *command.Invocation) error {
	var users []user.User
	err := h.store.WithSession(ctx, func(s storage.Session) error {
		var err error
		users, err = s.Users.List(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("listing users: %w", err)
	}

	if len(users) == 0 {
		inv.Printf("No users found.")
		return nil
	}

	for _, u := range users {
		teamName := "No Team"
		if u.TeamName != nil {
			teamName = *u.TeamName
		}
		inv.Printf("[%d] %s - %s | Team: %s", u.ID, u.Name, u.Role, teamName)
	}
	return nil
}
