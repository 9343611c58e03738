package sqlite

import (
	"github.com/daap14/tracker/internal/project"
	"github.com/daap14/tracker/internal/team"
	"github.com/daap14/tracker/internal/user"
)

type teamRow struct {
	ID    int64     `gorm:"primaryKey"`
	Name  string    `gorm:"not null"`
	Users []userRow `gorm:"foreignKey:TeamID"`
}

func (teamRow) TableName() string { return "teams" }

type userRow struct {
	ID     int64    `gorm:"primaryKey"`
	Name   string   `gorm:"not null"`
	Role   string   `gorm:"not null"`
	TeamID *int64   `gorm:"index"`
	Team   *teamRow `gorm:"foreignKey:TeamID"`
}

func (userRow) TableName() string { return "users" }

type projectRow struct {
	ID           int64  `gorm:"primaryKey"`
	Title        string `gorm:"not null"`
	Description  string
	Status       string   `gorm:"not null;default:'not_started'"`
	UserID       *int64   `gorm:"index"`
	AssignedUser *userRow `gorm:"foreignKey:UserID"`
}

func (projectRow) TableName() string { return "projects" }

func (r userRow) toUser() user.User {
	u := user.User{ID: r.ID, Name: r.Name, Role: r.Role, TeamID: r.TeamID}
	if r.Team != nil {
		name := r.Team.Name
		u.TeamName = &name
	}
	return u
}

func (r teamRow) toTeam() team.Team {
	t := team.Team{ID: r.ID, Name: r.Name, Members: make([]string, 0, len(r.Users))}
	for _, u := range r.Users {
		t.Members = append(t.Members, u.Name)
	}
	return t
}

func (r projectRow) toProject() project.Project {
	p := project.Project{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Status:      project.Status(r.Status),
		UserID:      r.UserID,
	}
	if r.AssignedUser != nil {
		name := r.AssignedUser.Name
		p.AssigneeName = &name
	}
	return p
}
