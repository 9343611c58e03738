package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/daap14/tracker/internal/team"
)

// TeamRepository implements team.Repository.
type TeamRepository struct {
	q querier
}

var _ team.Repository = (*TeamRepository)(nil)

// Create inserts a new team record.
func (r *TeamRepository) Create(ctx context.Context, t *team.Team) error {
	query := `
		INSERT INTO teams (name)
		VALUES ($1)
		RETURNING id`

	if err := r.q.QueryRow(ctx, query, t.Name).Scan(&t.ID); err != nil {
		return fmt.Errorf("inserting team: %w", err)
	}

	return nil
}

// GetByID retrieves a single team by id.
func (r *TeamRepository) GetByID(ctx context.Context, id int64) (*team.Team, error) {
	query := `
		SELECT id, name
		FROM teams
		WHERE id = $1`

	var t team.Team
	err := r.q.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, team.ErrTeamNotFound
		}
		return nil, fmt.Errorf("querying team: %w", err)
	}

	return &t, nil
}

// List retrieves all teams with their member names, ordered by id.
func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query := `
		SELECT t.id, t.name, u.name
		FROM teams t
		LEFT JOIN users u ON u.team_id = t.id
		ORDER BY t.id ASC, u.id ASC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	defer rows.Close()

	teams := []team.Team{}
	for rows.Next() {
		var (
			id     int64
			name   string
			member *string
		)
		if err := rows.Scan(&id, &name, &member); err != nil {
			return nil, fmt.Errorf("scanning team row: %w", err)
		}

		// Rows arrive grouped by team; start a new entry on each id change.
		if n := len(teams); n == 0 || teams[n-1].ID != id {
			teams = append(teams, team.Team{ID: id, Name: name, Members: []string{}})
		}
		if member != nil {
			last := &teams[len(teams)-1]
			last.Members = append(last.Members, *member)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating team rows: %w", err)
	}

	return teams, nil
}
