// Package storage opens the bank database, applies schema migrations and
// selects the key-value repository flavour matching the driver.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophbank/internal/filex"
	"github.com/dmitrijs2005/gophbank/internal/repositories/kv"
	"github.com/dmitrijs2005/gophbank/internal/storage/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// driverSpec describes how a configured driver maps onto database/sql,
// goose and the kv repository.
type driverSpec struct {
	sqlDriver    string
	gooseDialect string
	dir          string
	factory      func() kv.Factory
}

var drivers = map[string]driverSpec{
	DriverSQLite:   {sqlDriver: "sqlite", gooseDialect: "sqlite3", dir: "sqlite", factory: kv.NewSQLiteFactory},
	DriverPostgres: {sqlDriver: "pgx", gooseDialect: "postgres", dir: "postgres", factory: kv.NewPostgresFactory},
}

// Database is an open, migrated database plus the repository factory for it.
type Database struct {
	DB     *sql.DB
	KV     kv.Factory
	Driver string
}

// Close releases the underlying connection pool.
func (d *Database) Close() error {
	return d.DB.Close()
}

// gooseUp is a seam for tests.
var gooseUp = func(ctx context.Context, db *sql.DB, dir string) error {
	return goose.UpContext(ctx, db, dir)
}

// RunMigrations applies the embedded migrations for driver.
func RunMigrations(ctx context.Context, db *sql.DB, driver string) error {
	spec, ok := drivers[driver]
	if !ok {
		return fmt.Errorf("unsupported database driver %q", driver)
	}

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(spec.gooseDialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return gooseUp(ctx, db, spec.dir)
}

// Open connects using driver ("sqlite" or "postgres") and dsn, then migrates.
func Open(ctx context.Context, driver, dsn string) (*Database, error) {
	spec, ok := drivers[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	if driver == DriverSQLite {
		if err := filex.EnsureParentDir(dsn); err != nil {
			return nil, fmt.Errorf("db open error: %w", err)
		}
	}

	db, err := sql.Open(spec.sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if driver == DriverSQLite {
		// A single connection keeps in-memory databases alive and
		// serializes writers, which SQLite requires anyway.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := RunMigrations(ctx, db, driver); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &Database{DB: db, KV: spec.factory(), Driver: driver}, nil
}
