package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/daap14/tracker/internal/command"
	"github.com/daap14/tracker/internal/storage"
	"github.com/daap14/tracker/internal/team"
	"github.com/daap14/tracker/internal/user"
	"github.com/daap14/tracker/internal/validation"
)

// TeamHandler handles the team commands.
type TeamHandler struct {
	store storage.Store
	log   logrus.FieldLogger
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(store storage.Store, log logrus.FieldLogger) *TeamHandler {
	return &TeamHandler{store: store, log: log}
}

// Create handles create-team TEAM_NAME.
func (h *TeamHandler) Create(ctx context.Context, inv *command.Invocation) error {
	req := validation.CreateTeamRequest{Name: inv.String("team_name")}
	if errs := validation.ValidateCreateTeamRequest(&req); len(errs) > 0 {
		return validationError(errs)
	}

	t := &team.Team{Name: req.Name}
	err := h.store.WithSession(ctx, func(s storage.Session) error {
		return s.Teams.Create(ctx, t)
	})
	if err != nil {
		return fmt.Errorf("creating team: %w", err)
	}

	logger(ctx, h.log).WithField("team_id", t.ID).Info("team created")
	inv.Printf("Team '%s' created!", t.Name)
	return nil
}

// List handles list-teams.
func (h *TeamHandler) List(ctx context.Context, inv *command.Invocation) error {
	var teams []team.Team
	err := h.store.WithSession(ctx, func(s storage.Session) error {
		var err error
		teams, err = s.Teams.List(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("listing teams: %w", err)
	}

	if len(teams) == 0 {
		inv.Printf("No teams found.")
		return nil
	}

	for _, t := range teams {
		inv.Printf("[%d] %s | Members: [%s]", t.ID, t.Name, strings.Join(t.Members, ", "))
	}
	return nil
}

// AddUser handles add-user-to-team USER_ID TEAM_ID. Both records must exist;
// otherwise nothing is written.
func (h *TeamHandler) AddUser(ctx context.Context, inv *command.Invocation) error {
	userID, err := inv.Int("user_id")
	if err != nil {
		return err
	}
	teamID, err := inv.Int("team_id")
	if err != nil {
		return err
	}

	var (
		u *user.User
		t *team.Team
	)
	err = h.store.WithSession(ctx, func(s storage.Session) error {
		var err error
		if u, err = s.Users.GetByID(ctx, userID); err != nil {
			return err
		}
		if t, err = s.Teams.GetByID(ctx, teamID); err != nil {
			return err
		}
		return s.Users.SetTeam(ctx, u.ID, t.ID)
	})
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) || errors.Is(err, team.ErrTeamNotFound) {
			return command.NotFound("Invalid user or team ID.")
		}
		return fmt.Errorf("adding user to team: %w", err)
	}

	logger(ctx, h.log).WithFields(logrus.Fields{"user_id": u.ID, "team_id": t.ID}).Info("user added to team")
	inv.Printf("User '%s' added to team '%s'!", u.Name, t.Name)
	return nil
}
