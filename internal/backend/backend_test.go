package backend_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daap14/tracker/internal/backend"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		url      string
		wantKind backend.Kind
		wantAddr string
	}{
		{name: "bare path", url: "project_tracker.db", wantKind: backend.KindSQLite, wantAddr: "project_tracker.db"},
		{name: "sqlite scheme", url: "sqlite:///tmp/t.db", wantKind: backend.KindSQLite, wantAddr: "/tmp/t.db"},
		{name: "postgres scheme", url: "postgres://u:p@h:5432/db", wantKind: backend.KindPostgres, wantAddr: "postgres://u:p@h:5432/db"},
		{name: "postgresql scheme", url: "postgresql://h/db", wantKind: backend.KindPostgres, wantAddr: "postgresql://h/db"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			kind, addr := backend.Parse(tt.url)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantAddr, addr)
		})
	}
}

func TestOpen_SQLiteCreatesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tracker.db")
	logger, _ := test.NewNullLogger()

	store, err := backend.Open(context.Background(), "sqlite://"+path, logger)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestOpen_PostgresUnreachable(t *testing.T) {
	t.Parallel()

	logger, _ := test.NewNullLogger()

	_, err := backend.Open(context.Background(), "postgres://nobody@127.0.0.1:1/none?connect_timeout=1", logger)
	assert.Error(t, err)
}
