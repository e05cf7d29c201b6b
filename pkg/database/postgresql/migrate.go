package postgresql

import (
	"database/sql"
	"fmt"

	"clinic-registry/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func openForMigrations(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open migration connection: %w", err)
	}
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// MigrateUp applies all pending migrations.
func MigrateUp(dsn string) error {
	db, err := openForMigrations(dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	return goose.Up(db, ".")
}

// MigrateStatus prints the migration status.
func MigrateStatus(dsn string) error {
	db, err := openForMigrations(dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	return goose.Status(db, ".")
}

// ResetSchema drops every registry table and recreates them empty. This is
// the destructive maintenance action behind `cmd/import -reset`; a normal
// import run never calls it.
func ResetSchema(dsn string) error {
	db, err := openForMigrations(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := goose.Reset(db, "."); err != nil {
		return fmt.Errorf("failed to roll schema back: %w", err)
	}
	return goose.Up(db, ".")
}
