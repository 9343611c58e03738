package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/daap14/tracker/internal/team"
)

// TeamRepository implements team.Repository.
type TeamRepository struct {
	db *gorm.DB
}

var _ team.Repository = (*TeamRepository)(nil)

// Create inserts a new team record.
func (r *TeamRepository) Create(ctx context.Context, t *team.Team) error {
	row := teamRow{Name: t.Name}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("inserting team: %w", err)
	}
	t.ID = row.ID
	return nil
}

// GetByID retrieves a single team by id. Members are not loaded.
func (r *TeamRepository) GetByID(ctx context.Context, id int64) (*team.Team, error) {
	var row teamRow
	err := r.db.WithContext(ctx).First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, team.ErrTeamNotFound
		}
		return nil, fmt.Errorf("querying team: %w", err)
	}

	return &team.Team{ID: row.ID, Name: row.Name}, nil
}

// List retrieves all teams with their members, ordered by id.
func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	var rows []teamRow
	err := r.db.WithContext(ctx).
		Preload("Users", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}

	teams := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		teams = append(teams, row.toTeam())
	}
	return teams, nil
}
