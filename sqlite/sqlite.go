// Package sqlite stores manual builds in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Wait up to 5 seconds on lock contention.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// WAL mode is not supported for in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	// Enable foreign key constraints
	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	db.db = conn

	// Create schema
	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
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

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, nil)
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS builds (
			id TEXT PRIMARY KEY,
			digest TEXT NOT NULL,
			functions INTEGER NOT NULL DEFAULT 0,
			variables INTEGER NOT NULL DEFAULT 0,
			constants INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS functions (
			build_id TEXT NOT NULL REFERENCES builds(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			required_parameters INTEGER NOT NULL DEFAULT 0,
			is_variadic INTEGER NOT NULL DEFAULT 0,
			example TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			returns TEXT NOT NULL DEFAULT '',
			link TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (build_id, name)
		);

		CREATE TABLE IF NOT EXISTS parameters (
			build_id TEXT NOT NULL,
			function_name TEXT NOT NULL,
			position INTEGER NOT NULL,
			parameter TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (build_id, function_name, position),
			FOREIGN KEY (build_id, function_name) REFERENCES functions(build_id, name) ON DELETE CASCADE
		);

		CREATE TABLE IF NOT EXISTS variables (
			build_id TEXT NOT NULL REFERENCES builds(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			example TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			returns TEXT NOT NULL DEFAULT '',
			link TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (build_id, name)
		);

		CREATE TABLE IF NOT EXISTS constants (
			build_id TEXT NOT NULL REFERENCES builds(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			link TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (build_id, name)
		);

		CREATE TABLE IF NOT EXISTS constant_descriptors (
			build_id TEXT NOT NULL,
			constant_name TEXT NOT NULL,
			header TEXT NOT NULL,
			value TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (build_id, constant_name, header),
			FOREIGN KEY (build_id, constant_name) REFERENCES constants(build_id, name) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_builds_created_at ON builds(created_at);
	`

	_, err := db.db.Exec(schema)
	return err
}
