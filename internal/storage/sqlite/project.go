package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/daap14/tracker/internal/project"
)

// ProjectRepository implements project.Repository.
type ProjectRepository struct {
	db *gorm.DB
}

var _ project.Repository = (*ProjectRepository)(nil)

// Create inserts a new project record.
func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	if p.Status == "" {
		p.Status = project.StatusNotStarted
	}
	if !p.Status.Valid() {
		return project.ErrInvalidStatus
	}

	row := projectRow{
		Title:       p.Title,
		Description: p.Description,
		Status:      string(p.Status),
		UserID:      p.UserID,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	p.ID = row.ID
	return nil
}

// GetByID retrieves a single project, with its assignee, by id.
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*project.Project, error) {
	var row projectRow
	err := r.db.WithContext(ctx).Preload("AssignedUser").First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, project.ErrProjectNotFound
		}
		return nil, fmt.Errorf("querying project: %w", err)
	}

	p := row.toProject()
	return &p, nil
}

// List retrieves all projects with their assignee, ordered by id.
func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	var rows []projectRow
	if err := r.db.WithContext(ctx).Preload("AssignedUser").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	projects := make([]project.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, row.toProject())
	}
	return projects, nil
}

// Assign sets user_id on a project. Returns project.ErrProjectNotFound if
// no row matched.
func (r *ProjectRepository) Assign(ctx context.Context, projectID, userID int64) error {
	result := r.db.WithContext(ctx).Model(&projectRow{}).Where("id = ?", projectID).Update("user_id", userID)
	if result.Error != nil {
		return fmt.Errorf("assigning project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}

// UpdateStatus sets the status of a project.
func (r *ProjectRepository) UpdateStatus(ctx context.Context, id int64, status project.Status) error {
	if !status.Valid() {
		return project.ErrInvalidStatus
	}

	result := r.db.WithContext(ctx).Model(&projectRow{}).Where("id = ?", id).Update("status", string(status))
	if result.Error != nil {
		return fmt.Errorf("updating project status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}
