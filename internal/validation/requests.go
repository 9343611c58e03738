package validation

import "strings"

// CreateUserRequest mirrors the arguments of create-user.
type CreateUserRequest struct {
	Name string `arg:"name" validate:"required,max=255"`
	Role string `arg:"role" validate:"required,max=255"`
}

// Normalize trims surrounding whitespace.
func (r *CreateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Role = strings.TrimSpace(r.Role)
}

// CreateTeamRequest mirrors the arguments of create-team.
type CreateTeamRequest struct {
	Name string `arg:"team_name" validate:"required,max=255"`
}

// Normalize trims surrounding whitespace.
func (r *CreateTeamRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

// CreateProjectRequest mirrors the arguments of create-project. The
// description is free text and may be empty.
type CreateProjectRequest struct {
	Title       string `arg:"title" validate:"required,max=255"`
	Description string `arg:"description"`
}

// Normalize trims surrounding whitespace from the title.
func (r *CreateProjectRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
}

// ValidateCreateUserRequest normalizes and validates req.
func ValidateCreateUserRequest(req *CreateUserRequest) []FieldError {
	req.Normalize()
	return Struct(req)
}

// ValidateCreateTeamRequest normalizes and validates req.
func ValidateCreateTeamRequest(req *CreateTeamRequest) []FieldError {
	req.Normalize()
	return Struct(req)
}

// ValidateCreateProjectRequest normalizes and validates req.
func ValidateCreateProjectRequest(req *CreateProjectRequest) []FieldError {
	req.Normalize()
	return Struct(req)
}
