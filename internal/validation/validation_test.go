package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daap14/tracker/internal/validation"
)

func TestValidateCreateUserRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		req      validation.CreateUserRequest
		wantMsgs []string
		wantName string
	}{
		{
			name:     "valid",
			req:      validation.CreateUserRequest{Name: "Alice", Role: "Dev"},
			wantName: "Alice",
		},
		{
			name:     "trims whitespace",
			req:      validation.CreateUserRequest{Name: "  Alice ", Role: "Dev"},
			wantName: "Alice",
		},
		{
			name:     "missing name",
			req:      validation.CreateUserRequest{Name: "", Role: "Dev"},
			wantMsgs: []string{"name is required"},
		},
		{
			name:     "blank name and role",
			req:      validation.CreateUserRequest{Name: "   ", Role: "\t"},
			wantMsgs: []string{"name is required", "role is required"},
		},
		{
			name:     "name too long",
			req:      validation.CreateUserRequest{Name: strings.Repeat("a", 256), Role: "Dev"},
			wantMsgs: []string{"name must be at most 255 characters"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := tt.req
			errs := validation.ValidateCreateUserRequest(&req)
			if len(tt.wantMsgs) == 0 {
				assert.Empty(t, errs)
				assert.Equal(t, tt.wantName, req.Name)
				return
			}
			msgs := make([]string, len(errs))
			for i, e := range errs {
				msgs[i] = e.Message
			}
			assert.Equal(t, tt.wantMsgs, msgs)
		})
	}
}

func TestValidateCreateTeamRequest_UsesArgumentName(t *testing.T) {
	t.Parallel()

	errs := validation.ValidateCreateTeamRequest(&validation.CreateTeamRequest{Name: " "})

	assert.Len(t, errs, 1)
	assert.Equal(t, "team_name", errs[0].Field)
	assert.Equal(t, "team_name is required", validation.Join(errs))
}

func TestValidateCreateProjectRequest_EmptyDescriptionAllowed(t *testing.T) {
	t.Parallel()

	assert.Empty(t, validation.ValidateCreateProjectRequest(&validation.CreateProjectRequest{Title: "Site Redesign"}))

	errs := validation.ValidateCreateProjectRequest(&validation.CreateProjectRequest{Description: "no title"})
	assert.Equal(t, "title is required", validation.Join(errs))
}
