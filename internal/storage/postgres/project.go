package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/daap14/tracker/internal/project"
)

// ProjectRepository implements project.Repository.
type ProjectRepository struct {
	q querier
}

var _ project.Repository = (*ProjectRepository)(nil)

const selectProject = `
		SELECT p.id, p.title, COALESCE(p.description, ''), p.status, p.user_id, u.name
		FROM projects p
		LEFT JOIN users u ON p.user_id = u.id`

// Create inserts a new project record.
func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	if p.Status == "" {
		p.Status = project.StatusNotStarted
	}
	if !p.Status.Valid() {
		return project.ErrInvalidStatus
	}

	query := `
		INSERT INTO projects (title, description, status, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.q.QueryRow(ctx, query, p.Title, p.Description, string(p.Status), p.UserID).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}

	return nil
}

// GetByID retrieves a single project by id.
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*project.Project, error) {
	p, err := scanProject(r.q.QueryRow(ctx, selectProject+`
		WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, project.ErrProjectNotFound
		}
		return nil, fmt.Errorf("querying project: %w", err)
	}

	return p, nil
}

// List retrieves all projects with their assignee name, ordered by id.
func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	rows, err := r.q.Query(ctx, selectProject+`
		ORDER BY p.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	projects := []project.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project rows: %w", err)
	}

	return projects, nil
}

// Assign sets user_id on a project. Returns project.ErrProjectNotFound if
// no row matched.
func (r *ProjectRepository) Assign(ctx context.Context, projectID, userID int64) error {
	query := `
		UPDATE projects
		SET user_id = $2
		WHERE id = $1`

	result, err := r.q.Exec(ctx, query, projectID, userID)
	if err != nil {
		return fmt.Errorf("assigning project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}

// UpdateStatus sets the status of a project.
func (r *ProjectRepository) UpdateStatus(ctx context.Context, id int64, status project.Status) error {
	if !status.Valid() {
		return project.ErrInvalidStatus
	}

	query := `
		UPDATE projects
		SET status = $2
		WHERE id = $1`

	result, err := r.q.Exec(ctx, query, id, string(status))
	if err != nil {
		return fmt.Errorf("updating project status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}

func scanProject(row pgx.Row) (*project.Project, error) {
	var (
		p      project.Project
		status string
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &status, &p.UserID, &p.AssigneeName); err != nil {
		return nil, err
	}
	p.Status = project.Status(status)
	return &p, nil
}
