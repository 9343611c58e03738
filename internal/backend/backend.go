// Package backend opens the storage.Store named by a database URL.
package backend

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/daap14/tracker/internal/storage"
	"github.com/daap14/tracker/internal/storage/postgres"
	"github.com/daap14/tracker/internal/storage/sqlite"
)

// Kind identifies a storage backend.
type Kind string

const (
	KindSQLite   Kind = "sqlite"
	KindPostgres Kind = "postgres"
)

// Parse reports which backend databaseURL selects and the address to hand
// to it. postgres:// and postgresql:// URLs go to Postgres unchanged;
// sqlite:// URLs and bare paths are SQLite files.
func Parse(databaseURL string) (Kind, string) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return KindPostgres, databaseURL
	case strings.HasPrefix(databaseURL, "sqlite://"):
		return KindSQLite, strings.TrimPrefix(databaseURL, "sqlite://")
	default:
		return KindSQLite, databaseURL
	}
}

// Open opens the backend selected by databaseURL.
func Open(ctx context.Context, databaseURL string, log logrus.FieldLogger) (storage.Store, error) {
	kind, addr := Parse(databaseURL)
	log.WithField("backend", kind).Debug("opening store")

	if kind == KindPostgres {
		store, err := postgres.Open(ctx, addr, log)
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	store, err := sqlite.Open(ctx, addr, log)
	if err != nil {
		return nil, err
	}
	return store, nil
}
