// Package migrations embeds the schema for every SQL backend and applies it with golang-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Up applies every pending migration for driver on db and reports whether anything changed.
// The migrate driver takes ownership of db and closes it.
func Up(db *sql.DB, driver string) (bool, error) {
	var (
		dir      string
		instance database.Driver
		err      error
	)
	switch driver {
	case DriverPostgres:
		dir = "postgres"
		instance, err = postgres.WithInstance(db, &postgres.Config{})
	case DriverSQLite:
		dir = "sqlite"
		instance, err = sqlite3.WithInstance(db, &sqlite3.Config{})
	default:
		return false, fmt.Errorf("no migrations for driver %q", driver)
	}
	if err != nil {
		return false, fmt.Errorf("could not create %s migration driver: %w", driver, err)
	}

	source, err := iofs.New(files, dir)
	if err != nil {
		return false, fmt.Errorf("could not open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driver, instance)
	if err != nil {
		return false, fmt.Errorf("could not create migrate instance: %w", err)
	}

	upErr := m.Up()
	sourceErr, dbErr := m.Close()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return false, fmt.Errorf("failed to apply migrations: %w", upErr)
	}
	if sourceErr != nil {
		return false, fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return false, fmt.Errorf("migration database error: %w", dbErr)
	}
	return upErr == nil, nil
}
