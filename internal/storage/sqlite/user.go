package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/daap14/tracker/internal/user"
)

// UserRepository implements user.Repository.
type UserRepository struct {
	db *gorm.DB
}

var _ user.Repository = (*UserRepository)(nil)

// Create inserts a new user record.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	row := userRow{Name: u.Name, Role: u.Role, TeamID: u.TeamID}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	u.ID = row.ID
	return nil
}

// GetByID retrieves a single user, with its team, by id.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	var row userRow
	err := r.db.WithContext(ctx).Preload("Team").First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("querying user: %w", err)
	}

	u := row.toUser()
	return &u, nil
}

// List retrieves all users with their team, ordered by id.
func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	var rows []userRow
	if err := r.db.WithContext(ctx).Preload("Team").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	users := make([]user.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toUser())
	}
	return users, nil
}

// SetTeam sets team_id on a user. Returns user.ErrUserNotFound if no row
// matched.
func (r *UserRepository) SetTeam(ctx context.Context, userID, teamID int64) error {
	result := r.db.WithContext(ctx).Model(&userRow{}).Where("id = ?", userID).Update("team_id", teamID)
	if result.Error != nil {
		return fmt.Errorf("setting user team: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
