// Package sqlite provides the SQLite-backed durable result cache.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fwojciec/docfind"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db     *sql.DB
	path   string
	closed bool
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
// Returns EUNAVAILABLE if the store cannot be opened.
func (db *DB) Open() error {
	if err := db.open(); err != nil {
		return docfind.Errorf(docfind.EUNAVAILABLE, "cannot open cache store at %q: %v", db.path, err)
	}
	return nil
}

func (db *DB) open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return err
	}

	// One connection serializes every read and write in this process.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return err
	}

	pragmas := []string{"PRAGMA busy_timeout = 5000"}
	// In-memory databases cannot use WAL.
	if db.path != ":memory:" {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL", "PRAGMA synchronous = NORMAL")
	}
	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			conn.Close()
			return fmt.Errorf("%s: %w", p, err)
		}
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		db.db = nil
		return fmt.Errorf("create schema: %w", err)
	}

	return nil
}

// Close flushes and closes the database connection.
// It is safe to call Close more than once.
func (db *DB) Close() error {
	if db.db == nil || db.closed {
		return nil
	}
	db.closed = true
	return db.db.Close()
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// Path returns the database path.
func (db *DB) Path() string {
	return db.path
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			key TEXT PRIMARY KEY,
			matches TEXT NOT NULL,
			match_count INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);
	`

	_, err := db.db.Exec(schema)
	return err
}
