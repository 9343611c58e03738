// Package postgres implements storage.Store on a pgx connection pool.
package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/daap14/tracker/internal/storage"
)

//go:embed schema.sql
var schema string

// querier is the subset of the pgx API the repositories need. Both
// *pgxpool.Pool and *pgxpool.Conn satisfy it.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store wraps a pgxpool.Pool.
type Store struct {
	pool *pgxpool.Pool
	log  logrus.FieldLogger
}

var _ storage.Store = (*Store)(nil)

// Open parses databaseURL, establishes a connection pool and creates the
// tables if they do not exist yet.
func Open(ctx context.Context, databaseURL string, log logrus.FieldLogger) (*Store, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// Without arguments pgx uses the simple protocol, which accepts several
	// statements in one call.
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	log.WithField("host", poolCfg.ConnConfig.Host).Debug("postgres store ready")
	return &Store{pool: pool, log: log}, nil
}

// WithSession acquires one pooled connection for the duration of fn.
func (s *Store) WithSession(ctx context.Context, fn func(storage.Session) error) error {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquiring connection: %w", err)
	}
	defer conn.Release()

	return fn(newSession(conn))
}

// Close closes the connection pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// Pool returns the underlying pgxpool.Pool.
func (s *Store) Pool() *pgxpool.Pool {
	return s.pool
}

func newSession(q querier) storage.Session {
	return storage.Session{
		Users:    &UserRepository{q: q},
		Teams:    &TeamRepository{q: q},
		Projects: &ProjectRepository{q: q},
	}
}
