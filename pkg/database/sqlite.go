package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/url"

	// registers the sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDSN builds a DSN for path with foreign keys on and write-locking transactions.
// BEGIN IMMEDIATE takes the database write lock up front, which serializes units of work.
func SQLiteDSN(path string) string {
	params := url.Values{}
	params.Set("_foreign_keys", "on")
	params.Set("_busy_timeout", "5000")
	params.Set("_txlock", "immediate")
	params.Set("_journal_mode", "WAL")
	return fmt.Sprintf("file:%s?%s", path, params.Encode())
}

// NewSQLiteDB opens the database at path and checks it is reachable.
// A single connection is kept so writers never contend inside the process.
func NewSQLiteDB(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path cannot be empty")
	}

	db, err := sql.Open("sqlite3", SQLiteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	log.Printf("Successfully opened SQLite database at %s.\n", path)
	return db, nil
}

// CloseSQLiteDB closes the SQLite handle.
func CloseSQLiteDB(db *sql.DB) {
	if db != nil {
		db.Close()
		log.Println("SQLite database closed.")
	}
}
