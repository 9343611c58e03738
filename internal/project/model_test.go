package project_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daap14/tracker/internal/project"
)

func TestParseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    project.Status
		wantErr bool
	}{
		{in: "not_started", want: project.StatusNotStarted},
		{in: "in_progress", want: project.StatusInProgress},
		{in: "completed", want: project.StatusCompleted},
		{in: "bogus", wantErr: true},
		{in: "", wantErr: true},
		{in: "Completed", wantErr: true},
		{in: " completed", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := project.ParseStatus(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, project.ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestStatuses_Order(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []project.Status{
		project.StatusNotStarted,
		project.StatusInProgress,
		project.StatusCompleted,
	}, project.Statuses())
	assert.Equal(t, "not_started, in_progress, completed", project.StatusNames())
}

func TestStatuses_ReturnsCopy(t *testing.T) {
	t.Parallel()

	s := project.Statuses()
	s[0] = "mutated"

	assert.Equal(t, project.StatusNotStarted, project.Statuses()[0])
}
