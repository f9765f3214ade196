package store

import (
	"context"
	"database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the SQL driver and provides access to repositories.
//
// The game keeps nothing between runs, so the database lives in memory and
// disappears when the Store is closed.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates the schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// An in-memory database disappears with its last connection; keep a
	// single long-lived one so every query sees the same tables.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := createSchema(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db, drv: entsql.OpenDB(dialect.SQLite, db)}, nil
}

// OpenMemory opens a fresh, uniquely named in-memory database.
func OpenMemory() (*Store, error) {
	return Open(MemoryDSN())
}

// MemoryDSN returns a DSN for an in-memory database. The name is unique so
// two stores in one process never share tables.
func MemoryDSN() string {
	return fmt.Sprintf("file:cipherplay-%s?mode=memory&cache=shared", uuid.NewString())
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection, discarding all data.
func (s *Store) Close() error {
	return s.drv.Close()
}

// RoundRepo returns a RoundRepo backed by this store.
func (s *Store) RoundRepo() RoundRepo {
	return &roundRepo{drv: s.drv}
}

// applyPragmas configures SQLite for a single-user, throwaway database.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = OFF",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// createSchema creates the round log table. Raw SQL is used because the
// table is owned by this package alone and needs no generated client.
func createSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS round_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			level INTEGER NOT NULL,
			correct INTEGER NOT NULL,
			selected INTEGER NOT NULL,
			correct_index INTEGER NOT NULL,
			options INTEGER NOT NULL,
			streak INTEGER NOT NULL,
			degraded INTEGER NOT NULL DEFAULT 0,
			timestamp INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS round_events_session ON round_events (session_id, level)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
