package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/daap14/tracker/internal/user"
)

// UserRepository implements user.Repository.
type UserRepository struct {
	q querier
}

var _ user.Repository = (*UserRepository)(nil)

// Create inserts a new user record.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (name, role, team_id)
		VALUES ($1, $2, $3)
		RETURNING id`

	if err := r.q.QueryRow(ctx, query, u.Name, u.Role, u.TeamID).Scan(&u.ID); err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}

	return nil
}

// GetByID retrieves a single user by id.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	query := `
		SELECT u.id, u.name, u.role, u.team_id, t.name
		FROM users u
		LEFT JOIN teams t ON u.team_id = t.id
		WHERE u.id = $1`

	var u user.User
	err := r.q.QueryRow(ctx, query, id).Scan(&u.ID, &u.Name, &u.Role, &u.TeamID, &u.TeamName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("querying user: %w", err)
	}

	return &u, nil
}

// List retrieves all users with their team name, ordered by id.
func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	query := `
		SELECT u.id, u.name, u.role, u.team_id, t.name
		FROM users u
		LEFT JOIN teams t ON u.team_id = t.id
		ORDER BY u.id ASC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	users := []user.User{}
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Role, &u.TeamID, &u.TeamName); err != nil {
			return nil, fmt.Errorf("scanning user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating user rows: %w", err)
	}

	return users, nil
}

// SetTeam sets team_id on a user. Returns user.ErrUserNotFound if no row
// matched.
func (r *UserRepository) SetTeam(ctx context.Context, userID, teamID int64) error {
	query := `
		UPDATE users
		SET team_id = $2
		WHERE id = $1`

	result, err := r.q.Exec(ctx, query, userID, teamID)
	if err != nil {
		return fmt.Errorf("setting user team: %w", err)
	}

	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
