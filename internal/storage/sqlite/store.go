// Package sqlite implements storage.Store on a single SQLite file through
// gorm. Tables are created on first open.
package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	driver "github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/daap14/tracker/internal/storage"
)

// Store wraps a *gorm.DB opened on a SQLite file.
type Store struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

var _ storage.Store = (*Store)(nil)

// Open opens (creating if needed) the SQLite database at path and migrates
// the teams, users and projects tables.
func Open(ctx context.Context, path string, log logrus.FieldLogger) (*Store, error) {
	db, err := gorm.Open(driver.Open(dsn(path)), &gorm.Config{
		Logger: gormlogger.New(log, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	if err := db.WithContext(ctx).AutoMigrate(&teamRow{}, &userRow{}, &projectRow{}); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	log.WithField("path", path).Debug("sqlite store ready")
	return &Store{db: db, log: log}, nil
}

// WithSession runs fn on one dedicated connection which is handed back to
// the pool when fn returns.
func (s *Store) WithSession(ctx context.Context, fn func(storage.Session) error) error {
	return s.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		// NewDB gives every repository call a fresh statement bound to conn.
		return fn(newSession(conn.Session(&gorm.Session{NewDB: true})))
	})
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("getting sql.DB: %w", err)
	}
	return sqlDB.Close()
}

func newSession(db *gorm.DB) storage.Session {
	return storage.Session{
		Users:    &UserRepository{db: db},
		Teams:    &TeamRepository{db: db},
		Projects: &ProjectRepository{db: db},
	}
}

// dsn enables foreign keys and a busy timeout on every connection.
func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
