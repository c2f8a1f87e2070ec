// Package sqlite owns the durable state of the application: a single
// database file holding the users, patients and modules tables.
package sqlite

import (
	"database/sql"
	"fmt"

	"clinikit/internal/infrastructure/migration"

	// SQLite driver registration.
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"
)

type Storage struct {
	db  *sql.DB
	log *slog.Logger
}

// New opens (or creates) the database file, applies schema migrations
// and seeds default data. Safe to call on every startup: both steps are
// idempotent and never overwrite existing rows.
func New(path string, log *slog.Logger) (*Storage, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := migration.Up(db); err != nil {
		db.Close()
		return nil, err
	}

	s := &Storage{db: db, log: log}
	if err := s.seedDefaults(); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}

	return s, nil
}

func (s *Storage) DB() *sql.DB {
	return s.db
}

func (s *Storage) Close() error {
	return s.db.Close()
}
