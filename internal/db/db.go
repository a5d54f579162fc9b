// Package db owns the sqlite database holding the visit log and terminal
// preferences.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"
)

// DB wraps the sqlite handle.
type DB struct {
	sql *sql.DB
}

// Open opens (creating if needed) the sqlite file at path and applies
// pending migrations.
func Open(ctx context.Context, path string, logger *slog.Logger) (*DB, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	// sqlite serialises writers anyway; one connection avoids SQLITE_BUSY.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging %s: %w", path, err)
	}
	if err := RunMigrations(ctx, sqlDB, logger); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return &DB{sql: sqlDB}, nil
}

// SQL returns the underlying handle.
func (d *DB) SQL() *sql.DB {
	return d.sql
}

// Close closes the database.
func (d *DB) Close() error {
	return d.sql.Close()
}
