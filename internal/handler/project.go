package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/daap14/tracker/internal/command"
	"github.com/daap14/tracker/internal/project"
	"github.com/daap14/tracker/internal/storage"
	"github.com/daap14/tracker/internal/user"
	"github.com/daap14/tracker/internal/validation"
)

// ProjectHandler handles the project commands.
type ProjectHandler struct {
	store storage.Store
	log   logrus.FieldLogger
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(store storage.Store, log logrus.FieldLogger) *ProjectHandler {
	return &ProjectHandler{store: store, log: log}
}

// Create handles create-project TITLE DESCRIPTION.
func (h *ProjectHandler) Create(ctx context.Context, inv *command.Invocation) error {
	req := validation.CreateProjectRequest{
		Title:       inv.String("title"),
		Description: inv.String("description"),
	}
	if errs := validation.ValidateCreateProjectRequest(&req); len(errs) > 0 {
		return validationError(errs)
	}

	p := &project.Project{
		Title:       req.Title,
		Description: req.Description,
		Status:      project.StatusNotStarted,
	}
	err := h.store.WithSession(ctx, func(s storage.Session) error {
		return s.Projects.Create(ctx, p)
	})
	if err != nil {
		return fmt.Errorf("creating project: %w", err)
	}

	logger(ctx, h.log).WithField("project_id", p.ID).Info("project created")
	inv.Printf("Project '%s' created.", p.Title)
	return nil
}

// List handles list-projects.
func (h *ProjectHandler) List(ctx context.Context, inv *command.Invocation) error {
	var projects []project.Project
	err := h.store.WithSession(ctx, func(s storage.Session) error {
		var err error
		projects, err = s.Projects.List(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("listing projects: %w", err)
	}

	if len(projects) == 0 {
		inv.Printf("No projects found.")
		return nil
	}

	for _, p := range projects {
		assignee := "Unassigned"
		if p.AssigneeName != nil {
			assignee = *p.AssigneeName
		}
		inv.Printf("[%d] %s | %s | Assigned: %s", p.ID, p.Title, p.Status, assignee)
	}
	return nil
}

// Assign handles assign-project PROJECT_ID USER_ID. Both records must exist;
// otherwise nothing is written.
func (h *ProjectHandler) Assign(ctx context.Context, inv *command.Invocation) error {
	projectID, err := inv.Int("project_id")
	if err != nil {
		return err
	}
	userID, err := inv.Int("user_id")
	if err != nil {
		return err
	}

	var (
		p *project.Project
		u *user.User
	)
	err = h.store.WithSession(ctx, func(s storage.Session) error {
		var err error
		if p, err = s.Projects.GetByID(ctx, projectID); err != nil {
			return err
		}
		if u, err = s.Users.GetByID(ctx, userID); err != nil {
			return err
		}
		return s.Projects.Assign(ctx, p.ID, u.ID)
	})
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) || errors.Is(err, user.ErrUserNotFound) {
			return command.NotFound("Invalid project or user ID.")
		}
		return fmt.Errorf("assigning project: %w", err)
	}

	logger(ctx, h.log).WithFields(logrus.Fields{"project_id": p.ID, "user_id": u.ID}).Info("project assigned")
	inv.Printf("Project '%s' assigned to '%s'.", p.Title, u.Name)
	return nil
}

// UpdateStatus handles update-status PROJECT_ID STATUS. The status is checked
// before any storage access.
func (h *ProjectHandler) UpdateStatus(ctx context.Context, inv *command.Invocation) error {
	status, err := project.ParseStatus(inv.String("status"))
	if err != nil {
		return command.Validation("Invalid status. Choose from: " + project.StatusNames())
	}
	projectID, err := inv.Int("project_id")
	if err != nil {
		return err
	}

	var p *project.Project
	err = h.store.WithSession(ctx, func(s storage.Session) error {
		var err error
		if p, err = s.Projects.GetByID(ctx, projectID); err != nil {
			return err
		}
		return s.Projects.UpdateStatus(ctx, p.ID, status)
	})
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			return command.NotFound("Project not found.")
		}
		return fmt.Errorf("updating project status: %w", err)
	}

	logger(ctx, h.log).WithFields(logrus.Fields{"project_id": p.ID, "status": status}).Info("project status updated")
	inv.Printf("Project '%s' updated to %s.", p.Title, status)
	return nil
}
